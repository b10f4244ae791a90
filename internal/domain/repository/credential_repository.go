// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hrcore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is a domain-specific error returned when a credential record is not found.
var ErrCredentialNotFound = errors.New("credential record not found")

// CredentialRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
type CredentialRepository interface {
	// FindByID retrieves a single credential record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error)

	// FindByUsername retrieves a single credential record by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// List retrieves all credential records ordered by username.
	List(ctx context.Context) ([]*entity.Credential, error)

	// Create persists a new credential record and returns it with its
	// store-assigned fields populated.
	Create(ctx context.Context, credential *entity.Credential) (*entity.Credential, error)

	// Update modifies the username and administrator flag of an existing
	// record. The stored secret is never touched through this method.
	Update(ctx context.Context, credential *entity.Credential) (*entity.Credential, error)

	// UpdateSecret overwrites the stored secret of the record with the given
	// hashed value. A redundant overwrite from a concurrent migration is
	// harmless; last write wins.
	UpdateSecret(ctx context.Context, id uuid.UUID, secret entity.StoredSecret) error

	// Delete removes a credential record by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// UsernameExists reports whether a different record (any record when
	// excludeID is uuid.Nil) already holds the given username.
	UsernameExists(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)

	// CountAdmins returns the number of records with the administrator flag set.
	CountAdmins(ctx context.Context) (int64, error)
}
