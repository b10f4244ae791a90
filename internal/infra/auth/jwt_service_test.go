package auth

import (
	"testing"
	"time"

	"hrcore/config"
	"hrcore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{Access: "test-secret"},
		Auth:      &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	credentialID := uuid.New()

	token, err := svc.GenerateToken(credentialID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, credentialID, claims.CredentialID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_ValidateRejectsTampering(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsWrongSecret(t *testing.T) {
	first, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "another-secret"},
	})
	require.NoError(t, err)

	token, err := first.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
