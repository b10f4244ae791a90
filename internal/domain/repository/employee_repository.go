package repository

import (
	"context"
	"errors"

	"hrcore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound is a domain-specific error returned when an employee record is not found.
var ErrEmployeeNotFound = errors.New("employee record not found")

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	// FindByID retrieves a single employee record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// List retrieves all employee records ordered by surname, then given name.
	List(ctx context.Context) ([]*entity.Employee, error)

	// Create persists a new employee record and returns it with its
	// store-assigned fields populated.
	Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)

	// Update modifies an existing employee record.
	Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)

	// Delete removes an employee record by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// NSSExists reports whether a different record (any record when excludeID
	// is uuid.Nil) already holds the given NSS.
	NSSExists(ctx context.Context, nss string, excludeID uuid.UUID) (bool, error)

	// CURPExists reports whether a different record (any record when excludeID
	// is uuid.Nil) already holds the given CURP.
	CURPExists(ctx context.Context, curp string, excludeID uuid.UUID) (bool, error)
}
