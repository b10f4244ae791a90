package usecase

import (
	"context"
	"time"

	"hrcore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEmployeeInput defines the data required to register a new employee.
type CreateEmployeeInput struct {
	FirstName       string
	LastName        string
	MothersLastName string
	HireDate        time.Time
	BirthDate       time.Time
	NSS             string
	CURP            string
	Department      string
	MonthlySalary   float64
}

// UpdateEmployeeInput defines the data required to update an employee record.
type UpdateEmployeeInput struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	MothersLastName string
	HireDate        time.Time
	BirthDate       time.Time
	NSS             string
	CURP            string
	Department      string
	MonthlySalary   float64
}

// EmployeeUsecase defines the interface for employee-related business operations.
type EmployeeUsecase interface {
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, input UpdateEmployeeInput) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	ListEmployees(ctx context.Context) ([]*entity.Employee, error)
}
