// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin and RoleUser are the two access levels the system knows about.
// There is no role hierarchy beyond the administrator flag.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Credential represents one system user: the identity used to sign in to the
// application, its stored secret and its administrator flag. Credentials are
// distinct from Employee records; an employee does not necessarily have an
// account and vice versa.
type Credential struct {
	ID        uuid.UUID    // The unique identifier for this credential record, immutable once created.
	Username  string       // Unique login name, stored trimmed, compared case-sensitively.
	Secret    StoredSecret // The stored secret, classified once at load time (hashed or legacy plaintext).
	IsAdmin   bool         // Whether this account may manage other credential records.
	CreatedAt time.Time    // Timestamp of when this credential record was created.
	UpdatedAt time.Time    // Timestamp of the last modification to this record.
}

// Role returns the role string used in access token claims.
func (c *Credential) Role() string {
	if c.IsAdmin {
		return RoleAdmin
	}

	return RoleUser
}

// Redacted returns a copy of the credential with the stored secret cleared.
// Every credential that leaves the usecase layer goes through this.
func (c *Credential) Redacted() *Credential {
	clone := *c
	clone.Secret = StoredSecret{}

	return &clone
}
