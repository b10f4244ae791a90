package handler

import (
	"log/slog"
	"net/http"
	"time"

	"hrcore/internal/delivery/http/response"
	"hrcore/internal/domain/entity"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for hire and birth dates.
const dateLayout = "2006-01-02"

// employeeRequest is the payload for creating or updating an employee.
type employeeRequest struct {
	FirstName       string  `json:"firstName" validate:"required"`
	LastName        string  `json:"lastName" validate:"required"`
	MothersLastName string  `json:"mothersLastName"`
	HireDate        string  `json:"hireDate" validate:"required"`
	BirthDate       string  `json:"birthDate" validate:"required"`
	NSS             string  `json:"nss" validate:"required,len=11,numeric"`
	CURP            string  `json:"curp" validate:"required,len=18"`
	Department      string  `json:"department" validate:"required"`
	MonthlySalary   float64 `json:"monthlySalary" validate:"required,gt=0"`
}

// employeeView is the JSON representation of an employee record.
type employeeView struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	MothersLastName string    `json:"mothersLastName,omitempty"`
	FullName        string    `json:"fullName"`
	HireDate        string    `json:"hireDate"`
	BirthDate       string    `json:"birthDate"`
	NSS             string    `json:"nss"`
	CURP            string    `json:"curp"`
	Department      string    `json:"department"`
	MonthlySalary   float64   `json:"monthlySalary"`
}

func toEmployeeView(emp *entity.Employee) employeeView {
	return employeeView{
		ID:              emp.ID,
		FirstName:       emp.FirstName,
		LastName:        emp.LastName,
		MothersLastName: emp.MothersLastName,
		FullName:        emp.FullName(),
		HireDate:        emp.HireDate.Format(dateLayout),
		BirthDate:       emp.BirthDate.Format(dateLayout),
		NSS:             emp.NSS,
		CURP:            emp.CURP,
		Department:      emp.Department,
		MonthlySalary:   emp.MonthlySalary,
	}
}

// EmployeeHandler holds dependencies for employee-related handlers.
type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	logger *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:     uc,
		logger: logger,
	}
}

func (h *EmployeeHandler) bindEmployeeRequest(c echo.Context) (*employeeRequest, time.Time, time.Time, error) {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return nil, time.Time{}, time.Time{}, response.BadRequest(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, time.Time{}, time.Time{}, response.BadRequest(c, "INVALID_INPUT", "Invalid employee input")
	}

	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, response.BadRequest(c, "INVALID_INPUT", "Invalid hire date, expected YYYY-MM-DD")
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, response.BadRequest(c, "INVALID_INPUT", "Invalid birth date, expected YYYY-MM-DD")
	}

	return &req, hireDate, birthDate, nil
}

// CreateEmployee handles the employee registration request.
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	req, hireDate, birthDate, err := h.bindEmployeeRequest(c)
	if req == nil {
		return err
	}

	created, err := h.uc.CreateEmployee(c.Request().Context(), usecase.CreateEmployeeInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MothersLastName: req.MothersLastName,
		HireDate:        hireDate,
		BirthDate:       birthDate,
		NSS:             req.NSS,
		CURP:            req.CURP,
		Department:      req.Department,
		MonthlySalary:   req.MonthlySalary,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toEmployeeView(created), "Employee created successfully")
}

// UpdateEmployee handles the employee update request.
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee ID")
	}

	req, hireDate, birthDate, err := h.bindEmployeeRequest(c)
	if req == nil {
		return err
	}

	updated, err := h.uc.UpdateEmployee(c.Request().Context(), usecase.UpdateEmployeeInput{
		ID:              id,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MothersLastName: req.MothersLastName,
		HireDate:        hireDate,
		BirthDate:       birthDate,
		NSS:             req.NSS,
		CURP:            req.CURP,
		Department:      req.Department,
		MonthlySalary:   req.MonthlySalary,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEmployeeView(updated), "Employee updated successfully")
}

// DeleteEmployee handles the employee deletion request.
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee ID")
	}

	if err := h.uc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Employee deleted"}, "Employee deleted successfully")
}

// GetEmployee handles the single employee lookup request.
func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee ID")
	}

	emp, err := h.uc.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEmployeeView(emp), "")
}

// ListEmployees handles the employee listing request.
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.uc.ListEmployees(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]employeeView, 0, len(employees))
	for _, emp := range employees {
		views = append(views, toEmployeeView(emp))
	}

	return response.Success(c, http.StatusOK, views, "")
}
