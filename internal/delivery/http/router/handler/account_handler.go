// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"hrcore/internal/delivery/http/response"
	"hrcore/internal/domain/entity"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginRequest is the payload for the login endpoint.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Secret   string `json:"secret" validate:"required"`
}

// createAccountRequest is the payload for creating a credential.
type createAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Secret   string `json:"secret" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

// updateAccountRequest is the payload for updating a credential.
type updateAccountRequest struct {
	Username string `json:"username" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

// changeSecretRequest is the payload for replacing a credential's secret.
type changeSecretRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// accountView is the JSON representation of a credential. The stored secret
// is never part of it.
type accountView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"isAdmin"`
	Role     string    `json:"role"`
}

func toAccountView(cred *entity.Credential) accountView {
	return accountView{
		ID:       cred.ID,
		Username: cred.Username,
		IsAdmin:  cred.IsAdmin,
		Role:     cred.Role(),
	}
}

// AccountHandler holds dependencies for credential-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the credential verification request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Authenticate(c.Request().Context(), usecase.AuthenticateInput{
		Username: req.Username,
		Secret:   req.Secret,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"account":     toAccountView(output.Credential),
	}, "Login successful")
}

// CreateAccount handles the credential creation request.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account input")
	}

	created, err := h.uc.CreateCredential(c.Request().Context(), usecase.CreateCredentialInput{
		Username: req.Username,
		Secret:   req.Secret,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(created), "Account created successfully")
}

// UpdateAccount handles the credential update request.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account input")
	}

	updated, err := h.uc.UpdateCredential(c.Request().Context(), usecase.UpdateCredentialInput{
		ID:       id,
		Username: req.Username,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(updated), "Account updated successfully")
}

// ChangeSecret handles the secret replacement request.
func (h *AccountHandler) ChangeSecret(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req changeSecretRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid secret input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid secret input")
	}

	if err := h.uc.ChangeSecret(c.Request().Context(), usecase.ChangeSecretInput{
		ID:     id,
		Secret: req.Secret,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Secret changed"}, "Secret changed successfully")
}

// DeleteAccount handles the credential deletion request.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	if err := h.uc.DeleteCredential(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deleted"}, "Account deleted successfully")
}

// GetAccount handles the single credential lookup request.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	cred, err := h.uc.GetCredential(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(cred), "")
}

// ListAccounts handles the credential listing request.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	creds, err := h.uc.ListCredentials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]accountView, 0, len(creds))
	for _, cred := range creds {
		views = append(views, toAccountView(cred))
	}

	return response.Success(c, http.StatusOK, views, "")
}
