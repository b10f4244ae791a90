package usecase

import (
	"context"

	"hrcore/internal/domain/vacation"

	"github.com/google/uuid"
)

// VacationUsecase defines the interface for vacation entitlement queries.
type VacationUsecase interface {
	// CalculateForEmployee computes the statutory vacation entitlement of the
	// employee as of today, using the given vacation premium percentage.
	CalculateForEmployee(ctx context.Context, employeeID uuid.UUID, premiumPercent float64) (*vacation.Entitlement, error)
}
