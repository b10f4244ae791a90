package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hrcore/internal/delivery/http/response"
	"hrcore/internal/domain/vacation"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// vacationView is the JSON representation of a vacation entitlement.
type vacationView struct {
	EmployeeName    string  `json:"employeeName"`
	NSS             string  `json:"nss"`
	Department      string  `json:"department"`
	HireDate        string  `json:"hireDate"`
	YearsWorked     int     `json:"yearsWorked"`
	VacationDays    int     `json:"vacationDays"`
	DailySalary     float64 `json:"dailySalary"`
	VacationAmount  float64 `json:"vacationAmount"`
	PremiumPercent  float64 `json:"premiumPercent"`
	VacationPremium float64 `json:"vacationPremium"`
	Total           float64 `json:"total"`
}

func toVacationView(ent *vacation.Entitlement) vacationView {
	return vacationView{
		EmployeeName:    ent.EmployeeName,
		NSS:             ent.NSS,
		Department:      ent.Department,
		HireDate:        ent.HireDate.Format(dateLayout),
		YearsWorked:     ent.YearsWorked,
		VacationDays:    ent.VacationDays,
		DailySalary:     ent.DailySalary,
		VacationAmount:  ent.VacationAmount,
		PremiumPercent:  ent.PremiumPercent,
		VacationPremium: ent.VacationPremium,
		Total:           ent.Total,
	}
}

// VacationHandler holds dependencies for vacation entitlement handlers.
type VacationHandler struct {
	uc     usecase.VacationUsecase
	logger *slog.Logger
}

// NewVacationHandler is the constructor for VacationHandler, injected by Fx.
func NewVacationHandler(uc usecase.VacationUsecase, logger *slog.Logger) *VacationHandler {
	return &VacationHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetVacation handles the vacation entitlement query for one employee.
// The premium query parameter is a percentage between 25 and 100.
func (h *VacationHandler) GetVacation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee ID")
	}

	premiumParam := c.QueryParam("premium")
	if premiumParam == "" {
		premiumParam = strconv.FormatFloat(vacation.MinPremiumPercent, 'f', -1, 64)
	}

	premium, err := strconv.ParseFloat(premiumParam, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid premium percentage")
	}

	entitlement, err := h.uc.CalculateForEmployee(c.Request().Context(), id, premium)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVacationView(entitlement), "")
}
