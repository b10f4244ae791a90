package entity

import (
	"testing"
	"time"

	domainerrors "hrcore/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployee() *Employee {
	return &Employee{
		FirstName:     "Laura",
		LastName:      "Mendoza",
		HireDate:      time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
		BirthDate:     time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC),
		NSS:           "12345678901",
		CURP:          "MELA900312MDFNRR08",
		Department:    "Accounting",
		MonthlySalary: 15000,
	}
}

func TestEmployee_FullName(t *testing.T) {
	emp := validEmployee()
	assert.Equal(t, "Laura Mendoza", emp.FullName())

	emp.MothersLastName = "Lara"
	assert.Equal(t, "Laura Mendoza Lara", emp.FullName())
}

func TestEmployee_Validate(t *testing.T) {
	asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("valid record passes", func(t *testing.T) {
		require.NoError(t, validEmployee().Validate(asOf))
	})

	tests := []struct {
		name   string
		mutate func(*Employee)
	}{
		{name: "missing first name", mutate: func(e *Employee) { e.FirstName = "" }},
		{name: "missing last name", mutate: func(e *Employee) { e.LastName = "" }},
		{name: "missing department", mutate: func(e *Employee) { e.Department = "" }},
		{name: "zero hire date", mutate: func(e *Employee) { e.HireDate = time.Time{} }},
		{name: "future hire date", mutate: func(e *Employee) { e.HireDate = asOf.AddDate(0, 0, 1) }},
		{name: "zero birth date", mutate: func(e *Employee) { e.BirthDate = time.Time{} }},
		{name: "under minimum working age", mutate: func(e *Employee) { e.BirthDate = asOf.AddDate(-13, 0, 0) }},
		{name: "NSS too short", mutate: func(e *Employee) { e.NSS = "1234567890" }},
		{name: "NSS with letters", mutate: func(e *Employee) { e.NSS = "12345ABC901" }},
		{name: "CURP too short", mutate: func(e *Employee) { e.CURP = "MELA900312MDFNRR0" }},
		{name: "CURP lowercase", mutate: func(e *Employee) { e.CURP = "mela900312mdfnrr08" }},
		{name: "zero salary", mutate: func(e *Employee) { e.MonthlySalary = 0 }},
		{name: "negative salary", mutate: func(e *Employee) { e.MonthlySalary = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := validEmployee()
			tt.mutate(emp)

			err := emp.Validate(asOf)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEmployee_ValidateExactMinimumAge(t *testing.T) {
	asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	emp := validEmployee()
	emp.BirthDate = asOf.AddDate(-14, 0, 0)
	emp.HireDate = asOf

	assert.NoError(t, emp.Validate(asOf))
}
