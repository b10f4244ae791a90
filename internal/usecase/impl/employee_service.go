package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	txManager    repository.TransactionManager
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
}

// EmployeeServiceParams holds dependencies for employeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EmployeeRepo repository.EmployeeRepository
	Logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	return &employeeService{
		txManager:    params.TxManager,
		employeeRepo: params.EmployeeRepo,
		logger:       params.Logger,
	}
}

func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func buildEmployeeEntity(input usecase.CreateEmployeeInput) *entity.Employee {
	return &entity.Employee{
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		MothersLastName: strings.TrimSpace(input.MothersLastName),
		HireDate:        input.HireDate,
		BirthDate:       input.BirthDate,
		NSS:             strings.TrimSpace(input.NSS),
		CURP:            strings.ToUpper(strings.TrimSpace(input.CURP)),
		Department:      strings.TrimSpace(input.Department),
		MonthlySalary:   input.MonthlySalary,
	}
}

// CreateEmployee validates and registers a new employee record. The NSS and
// CURP uniqueness checks run in the same transaction as the insert.
func (srv *employeeService) CreateEmployee(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error) {
	emp := buildEmployeeEntity(input)
	if err := emp.Validate(time.Now()); err != nil {
		srv.log(ctx).Warn("Employee validation failed", slog.Any("error", err))

		return nil, err
	}

	var created *entity.Employee
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		empRepo := repoFactory.EmployeeRepo()

		if err := srv.checkUniqueIdentifiers(ctx, empRepo, emp.NSS, emp.CURP, uuid.Nil); err != nil {
			return err
		}

		var err error
		created, err = empRepo.Create(ctx, emp)
		if err != nil {
			return errors.Wrap(err, "failed to create employee")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create employee", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Employee created", slog.Any("employeeID", created.ID), slog.String("nss", created.NSS))

	return created, nil
}

// UpdateEmployee validates and persists changes to an existing employee record.
func (srv *employeeService) UpdateEmployee(ctx context.Context, input usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	emp := buildEmployeeEntity(usecase.CreateEmployeeInput{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		MothersLastName: input.MothersLastName,
		HireDate:        input.HireDate,
		BirthDate:       input.BirthDate,
		NSS:             input.NSS,
		CURP:            input.CURP,
		Department:      input.Department,
		MonthlySalary:   input.MonthlySalary,
	})
	emp.ID = input.ID

	if err := emp.Validate(time.Now()); err != nil {
		srv.log(ctx).Warn("Employee validation failed", slog.Any("employeeID", input.ID), slog.Any("error", err))

		return nil, err
	}

	var updated *entity.Employee
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		empRepo := repoFactory.EmployeeRepo()

		if _, err := empRepo.FindByID(ctx, input.ID); err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
			}

			return errors.Wrap(err, "failed to find employee")
		}

		if err := srv.checkUniqueIdentifiers(ctx, empRepo, emp.NSS, emp.CURP, input.ID); err != nil {
			return err
		}

		var err error
		updated, err = empRepo.Update(ctx, emp)
		if err != nil {
			return errors.Wrap(err, "failed to update employee")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update employee", slog.Any("employeeID", input.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Employee updated", slog.Any("employeeID", updated.ID))

	return updated, nil
}

// checkUniqueIdentifiers rejects an NSS or CURP already held by another record.
func (srv *employeeService) checkUniqueIdentifiers(ctx context.Context, empRepo repository.EmployeeRepository, nss, curp string, excludeID uuid.UUID) error {
	nssTaken, err := empRepo.NSSExists(ctx, nss, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check NSS existence")
	}
	if nssTaken {
		return errors.Wrap(domainerrors.ErrDuplicateNSS, "NSS already registered")
	}

	curpTaken, err := empRepo.CURPExists(ctx, curp, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check CURP existence")
	}
	if curpTaken {
		return errors.Wrap(domainerrors.ErrDuplicateCURP, "CURP already registered")
	}

	return nil
}

// DeleteEmployee removes an employee record.
func (srv *employeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if err := srv.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		}

		srv.log(ctx).Error("Failed to delete employee", slog.Any("employeeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete employee")
	}

	srv.log(ctx).Info("Employee deleted", slog.Any("employeeID", id))

	return nil
}

// GetEmployee retrieves a single employee record.
func (srv *employeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	emp, err := srv.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	return emp, nil
}

// ListEmployees retrieves all employee records ordered by surname.
func (srv *employeeService) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	employees, err := srv.employeeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, nil
}
