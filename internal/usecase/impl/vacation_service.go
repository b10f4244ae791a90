package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hrcore/internal/delivery/context"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/domain/vacation"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vacationService implements the VacationUsecase interface.
type vacationService struct {
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
}

// VacationServiceParams holds dependencies for vacationService, injected by Fx.
type VacationServiceParams struct {
	fx.In

	EmployeeRepo repository.EmployeeRepository
	Logger       *slog.Logger
}

// NewVacationService is the constructor for vacationService.
func NewVacationService(params VacationServiceParams) usecase.VacationUsecase {
	return &vacationService{
		employeeRepo: params.EmployeeRepo,
		logger:       params.Logger,
	}
}

func (srv *vacationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CalculateForEmployee loads the employee and computes their statutory
// vacation entitlement as of today.
func (srv *vacationService) CalculateForEmployee(ctx context.Context, employeeID uuid.UUID, premiumPercent float64) (*vacation.Entitlement, error) {
	emp, err := srv.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee not found")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	entitlement, err := vacation.Calculate(emp, premiumPercent, time.Now())
	if err != nil {
		srv.log(ctx).Warn("Vacation calculation rejected", slog.Any("employeeID", employeeID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Vacation entitlement calculated",
		slog.Any("employeeID", employeeID),
		slog.Int("yearsWorked", entitlement.YearsWorked),
		slog.Int("vacationDays", entitlement.VacationDays))

	return entitlement, nil
}
