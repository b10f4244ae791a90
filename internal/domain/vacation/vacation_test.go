package vacation

import (
	"testing"
	"time"

	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSeniority_AnniversaryBoundaries(t *testing.T) {
	hire := date(2020, time.June, 15)

	tests := []struct {
		name  string
		asOf  time.Time
		years int
	}{
		{"day before anniversary", date(2023, time.June, 14), 2},
		{"on anniversary", date(2023, time.June, 15), 3},
		{"day after anniversary", date(2023, time.June, 16), 3},
		{"same day as hire", hire, 0},
		{"earlier month same year difference", date(2023, time.May, 20), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.years, Seniority(hire, tt.asOf))
		})
	}
}

func TestSeniority_LeapDayHire(t *testing.T) {
	hire := date(2020, time.February, 29)

	// In non-leap years the anniversary is considered reached on March 1.
	assert.Equal(t, 0, Seniority(hire, date(2021, time.February, 28)))
	assert.Equal(t, 1, Seniority(hire, date(2021, time.March, 1)))
	assert.Equal(t, 4, Seniority(hire, date(2024, time.February, 29)))
}

func TestDays_TierTable(t *testing.T) {
	asOf := date(2026, time.August, 1)

	tests := []struct {
		years int
		days  int
	}{
		{0, 0},
		{1, 12},
		{2, 14},
		{3, 16},
		{4, 18},
		{5, 20},
		{6, 22},
		{10, 22},
		{11, 24},
		{15, 24},
		{16, 26},
		{20, 26},
		{21, 28},
		{25, 28},
		{26, 30},
		{30, 30},
		{31, 32},
		{35, 32},
	}

	for _, tt := range tests {
		hire := asOf.AddDate(-tt.years, 0, 0)

		days, err := Days(hire, asOf)
		require.NoError(t, err)
		assert.Equal(t, tt.days, days, "years=%d", tt.years)
	}
}

func TestDays_Monotonic(t *testing.T) {
	asOf := date(2026, time.August, 1)

	previous := 0
	for years := 0; years <= 40; years++ {
		days, err := Days(asOf.AddDate(-years, 0, 0), asOf)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, days, previous, "allotment must never shrink with seniority (years=%d)", years)
		previous = days
	}
}

func TestDays_RejectsZeroAndFutureHireDate(t *testing.T) {
	asOf := date(2026, time.August, 1)

	_, err := Days(time.Time{}, asOf)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = Days(asOf.AddDate(0, 0, 1), asOf)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func testEmployee(hireDate time.Time, monthlySalary float64) *entity.Employee {
	return &entity.Employee{
		FirstName:     "Laura",
		LastName:      "Mendoza",
		HireDate:      hireDate,
		BirthDate:     date(1990, time.March, 12),
		NSS:           "12345678901",
		CURP:          "MELA900312MDFNRR08",
		Department:    "Accounting",
		MonthlySalary: monthlySalary,
	}
}

func TestCalculate_FiveYearsReferenceValues(t *testing.T) {
	asOf := date(2026, time.August, 1)
	emp := testEmployee(asOf.AddDate(-5, 0, 0), 15000)

	ent, err := Calculate(emp, 25, asOf)
	require.NoError(t, err)

	assert.Equal(t, 5, ent.YearsWorked)
	assert.Equal(t, 20, ent.VacationDays)
	assert.InDelta(t, 500.0, ent.DailySalary, 1e-9)
	assert.InDelta(t, 10000.0, ent.VacationAmount, 1e-9)
	assert.InDelta(t, 2500.0, ent.VacationPremium, 1e-9)
	assert.InDelta(t, 12500.0, ent.Total, 1e-9)
}

func TestCalculate_PremiumScalesLinearly(t *testing.T) {
	asOf := date(2026, time.August, 1)
	emp := testEmployee(asOf.AddDate(-3, 0, 0), 12000)

	// 3 years -> 16 days, daily salary 400, vacation amount 6400.
	tests := []struct {
		premium float64
		amount  float64
	}{
		{25, 1600},
		{50, 3200},
		{100, 6400},
	}

	for _, tt := range tests {
		ent, err := Calculate(emp, tt.premium, asOf)
		require.NoError(t, err)

		assert.InDelta(t, 6400.0, ent.VacationAmount, 1e-9)
		assert.InDelta(t, tt.amount, ent.VacationPremium, 1e-9, "premium=%v", tt.premium)
		assert.InDelta(t, 6400.0+tt.amount, ent.Total, 1e-9)
	}
}

func TestCalculate_PremiumBoundsInclusive(t *testing.T) {
	asOf := date(2026, time.August, 1)
	emp := testEmployee(asOf.AddDate(-2, 0, 0), 9000)

	_, err := Calculate(emp, 24.9, asOf)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = Calculate(emp, 100.1, asOf)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = Calculate(emp, MinPremiumPercent, asOf)
	assert.NoError(t, err)

	_, err = Calculate(emp, MaxPremiumPercent, asOf)
	assert.NoError(t, err)
}

func TestCalculate_UnderOneYearGetsNothing(t *testing.T) {
	asOf := date(2026, time.August, 1)
	emp := testEmployee(asOf.AddDate(0, -6, 0), 15000)

	ent, err := Calculate(emp, 25, asOf)
	require.NoError(t, err)

	assert.Equal(t, 0, ent.YearsWorked)
	assert.Equal(t, 0, ent.VacationDays)
	assert.Zero(t, ent.VacationAmount)
	assert.Zero(t, ent.VacationPremium)
	assert.Zero(t, ent.Total)
}

func TestCalculate_RejectsInvalidInputs(t *testing.T) {
	asOf := date(2026, time.August, 1)

	_, err := Calculate(nil, 25, asOf)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = Calculate(testEmployee(asOf.AddDate(-1, 0, 0), 0), 25, asOf)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = Calculate(testEmployee(asOf.AddDate(0, 0, 1), 15000), 25, asOf)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
