// Package vacation implements the statutory vacation entitlement calculation
// defined by the Mexican Federal Labor Law. Everything here is a pure
// function of its arguments: the reference date is always explicit, so the
// calculation is deterministic and needs no synchronization.
package vacation

import (
	"time"

	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
)

// Premium percentage bounds, inclusive at both ends.
const (
	MinPremiumPercent = 25.0
	MaxPremiumPercent = 100.0
)

// daysPerMonth is the statutory divisor for deriving a daily salary.
const daysPerMonth = 30.0

// Entitlement is the computed outcome of one vacation calculation for one
// employee and premium percentage. It is constructed in a single step and
// never mutated afterwards.
type Entitlement struct {
	EmployeeName    string    // Full name of the employee, echoed unmodified.
	NSS             string    // Social security number, echoed unmodified.
	Department      string    // Department, echoed unmodified.
	HireDate        time.Time // Hire date the calculation was based on.
	YearsWorked     int       // Completed years of seniority at the reference date.
	VacationDays    int       // Statutory vacation days for that seniority.
	DailySalary     float64   // Monthly salary divided by 30.
	VacationAmount  float64   // Daily salary times vacation days.
	VacationPremium float64   // Vacation amount times the premium percentage.
	PremiumPercent  float64   // Premium percentage the caller requested.
	Total           float64   // Vacation amount plus vacation premium.
}

// Seniority returns the number of completed years between hireDate and asOf,
// counting calendar anniversaries rather than dividing by 365.
func Seniority(hireDate, asOf time.Time) int {
	years := asOf.Year() - hireDate.Year()
	if asOf.Month() < hireDate.Month() ||
		(asOf.Month() == hireDate.Month() && asOf.Day() < hireDate.Day()) {
		years--
	}

	return years
}

// Days maps a hire date to the statutory vacation day allotment at the given
// reference date. The tier table is fixed by law; the boundaries below are
// exact and must not be interpolated.
func Days(hireDate, asOf time.Time) (int, error) {
	if hireDate.IsZero() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("hire date is required")
	}
	if hireDate.After(asOf) {
		return 0, domainerrors.ErrValidationFailed.WithDetails("hire date must not be after the reference date")
	}

	return daysForSeniority(Seniority(hireDate, asOf)), nil
}

// daysForSeniority is the literal seniority tier table.
func daysForSeniority(years int) int {
	switch {
	case years < 1:
		return 0
	case years == 1:
		return 12
	case years == 2:
		return 14
	case years == 3:
		return 16
	case years == 4:
		return 18
	case years == 5:
		return 20
	case years <= 10:
		return 22
	case years <= 15:
		return 24
	case years <= 20:
		return 26
	case years <= 25:
		return 28
	case years <= 30:
		return 30
	default:
		return 32
	}
}

// Calculate derives the full vacation entitlement for an employee at the
// given premium percentage and reference date. All monetary values use float
// arithmetic with no rounding; presentation rounding is the caller's concern.
func Calculate(employee *entity.Employee, premiumPercent float64, asOf time.Time) (*Entitlement, error) {
	if employee == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("employee is required")
	}
	if employee.MonthlySalary <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("monthly salary must be greater than zero")
	}
	if premiumPercent < MinPremiumPercent || premiumPercent > MaxPremiumPercent {
		return nil, domainerrors.ErrValidationFailed.WithDetails("premium percentage must be between 25 and 100")
	}

	days, err := Days(employee.HireDate, asOf)
	if err != nil {
		return nil, err
	}

	dailySalary := employee.MonthlySalary / daysPerMonth
	vacationAmount := dailySalary * float64(days)
	vacationPremium := vacationAmount * (premiumPercent / 100.0)

	return &Entitlement{
		EmployeeName:    employee.FullName(),
		NSS:             employee.NSS,
		Department:      employee.Department,
		HireDate:        employee.HireDate,
		YearsWorked:     Seniority(employee.HireDate, asOf),
		VacationDays:    days,
		DailySalary:     dailySalary,
		VacationAmount:  vacationAmount,
		VacationPremium: vacationPremium,
		PremiumPercent:  premiumPercent,
		Total:           vacationAmount + vacationPremium,
	}, nil
}
