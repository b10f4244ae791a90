package entity

import (
	"regexp"
	"time"

	domainerrors "hrcore/internal/domain/errors"

	"github.com/google/uuid"
)

// minimumHiringAge is the statutory minimum working age.
const minimumHiringAge = 14

var (
	nssPattern  = regexp.MustCompile(`^\d{11}$`)
	curpPattern = regexp.MustCompile(`^[A-Z0-9]{18}$`)
)

// Employee represents one employee of the company with the personal and labor
// data the statutory vacation calculation needs. The NSS (social security
// number) and CURP (population registry code) are unique per employee.
type Employee struct {
	ID              uuid.UUID // The unique identifier for this employee record.
	FirstName       string    // Given name, required.
	LastName        string    // Paternal surname, required.
	MothersLastName string    // Maternal surname, optional.
	HireDate        time.Time // Date the employee was hired; never in the future.
	BirthDate       time.Time // Date of birth; the employee must be of working age.
	NSS             string    // Social security number, exactly 11 digits, unique.
	CURP            string    // Population registry code, 18 uppercase alphanumerics, unique.
	Department      string    // Department the employee belongs to, required.
	MonthlySalary   float64   // Monthly salary, strictly positive.
	CreatedAt       time.Time // Timestamp of when this record was created.
	UpdatedAt       time.Time // Timestamp of the last modification to this record.
}

// FullName joins the given name with the paternal and, when present, the
// maternal surname.
func (e *Employee) FullName() string {
	name := e.FirstName + " " + e.LastName
	if e.MothersLastName != "" {
		name += " " + e.MothersLastName
	}

	return name
}

// Validate checks the record's field-level invariants against a reference
// date. It returns a validation rejection describing the first violated rule.
func (e *Employee) Validate(asOf time.Time) error {
	switch {
	case e.FirstName == "":
		return domainerrors.ErrValidationFailed.WithDetails("first name must not be empty")
	case e.LastName == "":
		return domainerrors.ErrValidationFailed.WithDetails("last name must not be empty")
	case e.Department == "":
		return domainerrors.ErrValidationFailed.WithDetails("department must not be empty")
	case e.HireDate.IsZero():
		return domainerrors.ErrValidationFailed.WithDetails("hire date is required")
	case e.HireDate.After(asOf):
		return domainerrors.ErrValidationFailed.WithDetails("hire date must not be in the future")
	case e.BirthDate.IsZero():
		return domainerrors.ErrValidationFailed.WithDetails("birth date is required")
	case e.BirthDate.After(asOf.AddDate(-minimumHiringAge, 0, 0)):
		return domainerrors.ErrValidationFailed.WithDetails("employee must be at least 14 years old")
	case !nssPattern.MatchString(e.NSS):
		return domainerrors.ErrValidationFailed.WithDetails("NSS must be exactly 11 digits")
	case !curpPattern.MatchString(e.CURP):
		return domainerrors.ErrValidationFailed.WithDetails("CURP must be 18 uppercase alphanumeric characters")
	case e.MonthlySalary <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("monthly salary must be greater than zero")
	}

	return nil
}
