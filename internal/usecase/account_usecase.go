// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hrcore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AuthenticateInput defines the data required to verify a credential.
type AuthenticateInput struct {
	Username string
	Secret   string
}

// CreateCredentialInput defines the data required to create a new credential.
type CreateCredentialInput struct {
	Username string
	Secret   string
	IsAdmin  bool
}

// UpdateCredentialInput defines the mutable attributes of a credential.
// The stored secret is changed through ChangeSecretInput instead.
type UpdateCredentialInput struct {
	ID       uuid.UUID
	Username string
	IsAdmin  bool
}

// ChangeSecretInput defines the data required to replace a credential's secret.
type ChangeSecretInput struct {
	ID     uuid.UUID
	Secret string
}

// --- Output DTOs ---

// AuthenticateOutput returns the verified credential and an access token.
// The credential's stored secret is always redacted.
type AuthenticateOutput struct {
	AccessToken string
	Credential  *entity.Credential
}

// AccountUsecase defines the interface for credential-related business
// operations. This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	Authenticate(ctx context.Context, input AuthenticateInput) (*AuthenticateOutput, error)
	CreateCredential(ctx context.Context, input CreateCredentialInput) (*entity.Credential, error)
	UpdateCredential(ctx context.Context, input UpdateCredentialInput) (*entity.Credential, error)
	ChangeSecret(ctx context.Context, input ChangeSecretInput) error
	DeleteCredential(ctx context.Context, id uuid.UUID) error
	GetCredential(ctx context.Context, id uuid.UUID) (*entity.Credential, error)
	ListCredentials(ctx context.Context) ([]*entity.Credential, error)
	EnsureDefaultAdmin(ctx context.Context) error
}
