// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hrcore/internal/delivery/http/middleware"
	"hrcore/internal/delivery/http/router/handler"
	"hrcore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	EmployeeHandler *handler.EmployeeHandler
	VacationHandler *handler.VacationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	employeeHandler *handler.EmployeeHandler
	vacationHandler *handler.VacationHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		employeeHandler: params.EmployeeHandler,
		vacationHandler: params.VacationHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential verification is the only public endpoint
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Account management requires an administrator token
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	accountGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		accountGroup.GET("", r.accountHandler.ListAccounts)
		accountGroup.POST("", r.accountHandler.CreateAccount)
		accountGroup.GET("/:id", r.accountHandler.GetAccount)
		accountGroup.PUT("/:id", r.accountHandler.UpdateAccount)
		accountGroup.PUT("/:id/secret", r.accountHandler.ChangeSecret)
		accountGroup.DELETE("/:id", r.accountHandler.DeleteAccount)
	}

	// Employee records require any authenticated token
	employeeGroup := e.Group("/employees")
	employeeGroup.Use(r.authMiddleware.Authenticate)
	{
		employeeGroup.GET("", r.employeeHandler.ListEmployees)
		employeeGroup.POST("", r.employeeHandler.CreateEmployee)
		employeeGroup.GET("/:id", r.employeeHandler.GetEmployee)
		employeeGroup.PUT("/:id", r.employeeHandler.UpdateEmployee)
		employeeGroup.DELETE("/:id", r.employeeHandler.DeleteEmployee)
		employeeGroup.GET("/:id/vacation", r.vacationHandler.GetVacation)
	}
}
