package impl

import (
	"context"
	"testing"

	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	mockRepo "hrcore/internal/mocks/repository"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const bcryptHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

func hashedCredential(username string) *entity.Credential {
	return &entity.Credential{
		ID:       uuid.New(),
		Username: username,
		Secret:   entity.ParseStoredSecret(bcryptHash),
		IsAdmin:  false,
	}
}

func legacyCredential(username, secret string) *entity.Credential {
	return &entity.Credential{
		ID:       uuid.New(),
		Username: username,
		Secret:   entity.ParseStoredSecret(secret),
		IsAdmin:  true,
	}
}

func TestAccountService_Authenticate_HashedSecret(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	cred := hashedCredential("laura")

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "laura").Return(cred, nil)
	fx.hasher.EXPECT().Check("Secret123", bcryptHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(cred.ID, entity.RoleUser).Return("token", nil)

	output, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "laura",
		Secret:   "Secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, cred.ID, output.Credential.ID)
	assert.True(t, output.Credential.Secret.IsZero(), "returned credential must not expose the stored secret")
}

func TestAccountService_Authenticate_TrimsUsernameOnly(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	cred := hashedCredential("laura")

	// The username is trimmed before lookup; the secret reaches the hash
	// check with its whitespace intact.
	fx.credentialRepo.EXPECT().FindByUsername(ctx, "laura").Return(cred, nil)
	fx.hasher.EXPECT().Check("  Secret123  ", bcryptHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(cred.ID, entity.RoleUser).Return("token", nil)

	_, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "  laura  ",
		Secret:   "  Secret123  ",
	})

	require.NoError(t, err)
}

func TestAccountService_Authenticate_LegacyPaddedSecretSucceeds(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	cred := legacyCredential("admin", " pass ")

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "admin").Return(cred, nil)
	fx.hasher.EXPECT().Hash(" pass ").Return(bcryptHash, nil)
	fx.credentialRepo.EXPECT().UpdateSecret(ctx, cred.ID, entity.NewHashedSecret(bcryptHash)).Return(nil)
	fx.tokenService.EXPECT().GenerateToken(cred.ID, entity.RoleAdmin).Return("token", nil)

	output, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "admin",
		Secret:   " pass ",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
}

func TestAccountService_Authenticate_EmptyInputRejectedWithoutLookup(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	tests := []usecase.AuthenticateInput{
		{Username: "", Secret: "Secret123"},
		{Username: "laura", Secret: ""},
		{Username: "   ", Secret: "   "},
	}

	for _, input := range tests {
		output, err := fx.service.Authenticate(ctx, input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAccountService_Authenticate_UnknownUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrCredentialNotFound)

	output, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "ghost",
		Secret:   "whatever",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Authenticate_WrongSecretAgainstHash(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	cred := hashedCredential("laura")

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "laura").Return(cred, nil)
	fx.hasher.EXPECT().Check("wrong", bcryptHash).Return(false)

	output, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "laura",
		Secret:   "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Authenticate_LegacySecretIsMigrated(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	cred := legacyCredential("admin", "Admin")

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "admin").Return(cred, nil)
	fx.hasher.EXPECT().Hash("Admin").Return(bcryptHash, nil)
	fx.credentialRepo.EXPECT().UpdateSecret(ctx, cred.ID, entity.NewHashedSecret(bcryptHash)).Return(nil)
	fx.tokenService.EXPECT().GenerateToken(cred.ID, entity.RoleAdmin).Return("token", nil)

	output, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "admin",
		Secret:   "Admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
}

func TestAccountService_Authenticate_SecondLoginUsesHashPath(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	// After the migration the stored value carries the bcrypt tag, so the
	// plaintext comparison and the upgrade must not run again.
	cred := &entity.Credential{
		ID:       uuid.New(),
		Username: "admin",
		Secret:   entity.NewHashedSecret(bcryptHash),
		IsAdmin:  true,
	}

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "admin").Return(cred, nil)
	fx.hasher.EXPECT().Check("Admin", bcryptHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(cred.ID, entity.RoleAdmin).Return("token", nil)

	_, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "admin",
		Secret:   "Admin",
	})

	require.NoError(t, err)
}

func TestAccountService_Authenticate_MigrationPersistFailureStillSucceeds(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	cred := legacyCredential("admin", "Admin")

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "admin").Return(cred, nil)
	fx.hasher.EXPECT().Hash("Admin").Return(bcryptHash, nil)
	fx.credentialRepo.EXPECT().
		UpdateSecret(ctx, cred.ID, entity.NewHashedSecret(bcryptHash)).
		Return(errors.New("connection reset"))
	fx.tokenService.EXPECT().GenerateToken(cred.ID, entity.RoleAdmin).Return("token", nil)

	output, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "admin",
		Secret:   "Admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
}

func TestAccountService_Authenticate_LegacyMismatch(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	cred := legacyCredential("admin", "Admin")

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "admin").Return(cred, nil)

	output, err := fx.service.Authenticate(ctx, usecase.AuthenticateInput{
		Username: "admin",
		Secret:   "NotAdmin",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_CreateCredential_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	createdID := uuid.New()

	fx.hasher.EXPECT().Hash("Secret123").Return(bcryptHash, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)

			mockCredRepo.EXPECT().UsernameExists(ctx, "laura", uuid.Nil).Return(false, nil)
			mockCredRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				RunAndReturn(func(ctx context.Context, cred *entity.Credential) (*entity.Credential, error) {
					created := *cred
					created.ID = createdID
					return &created, nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)

	created, err := fx.service.CreateCredential(ctx, usecase.CreateCredentialInput{
		Username: "laura",
		Secret:   "Secret123",
		IsAdmin:  false,
	})

	require.NoError(t, err)
	assert.Equal(t, createdID, created.ID)
	assert.Equal(t, "laura", created.Username)
	assert.True(t, created.Secret.IsZero())
}

func TestAccountService_CreateCredential_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	wantErr := errors.Wrap(domainerrors.ErrUsernameTaken, "username already exists")

	fx.hasher.EXPECT().Hash("Secret123").Return(bcryptHash, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().UsernameExists(ctx, "laura", uuid.Nil).Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(wantErr)

	created, err := fx.service.CreateCredential(ctx, usecase.CreateCredentialInput{
		Username: "laura",
		Secret:   "Secret123",
	})

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_DeleteCredential_LastAdminRejected(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	admin := legacyCredential("admin", "Admin")
	wantErr := errors.Wrap(domainerrors.ErrLastAdministrator, "cannot remove the last administrator")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockCredRepo.EXPECT().CountAdmins(ctx).Return(int64(1), nil)

			_ = fn(mockFactory)
		}).
		Return(wantErr)

	err := fx.service.DeleteCredential(ctx, admin.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrLastAdministrator))
}

func TestAccountService_DeleteCredential_AdminWithPeerSucceeds(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	admin := legacyCredential("admin", "Admin")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockCredRepo.EXPECT().CountAdmins(ctx).Return(int64(2), nil)
			mockCredRepo.EXPECT().Delete(ctx, admin.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteCredential(ctx, admin.ID)

	require.NoError(t, err)
}

func TestAccountService_DeleteCredential_NonAdminSkipsCount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := hashedCredential("laura")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockCredRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteCredential(ctx, user.ID)

	require.NoError(t, err)
}

func TestAccountService_UpdateCredential_DemoteLastAdminRejected(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	admin := legacyCredential("admin", "Admin")
	wantErr := errors.Wrap(domainerrors.ErrLastAdministrator, "cannot remove the last administrator")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockCredRepo.EXPECT().CountAdmins(ctx).Return(int64(1), nil)

			_ = fn(mockFactory)
		}).
		Return(wantErr)

	updated, err := fx.service.UpdateCredential(ctx, usecase.UpdateCredentialInput{
		ID:       admin.ID,
		Username: "admin",
		IsAdmin:  false,
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrLastAdministrator))
}

func TestAccountService_UpdateCredential_RenameKeepingAdmin(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	admin := legacyCredential("admin", "Admin")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockCredRepo.EXPECT().UsernameExists(ctx, "root", admin.ID).Return(false, nil)
			mockCredRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Credential")).
				RunAndReturn(func(ctx context.Context, cred *entity.Credential) (*entity.Credential, error) {
					return cred, nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateCredential(ctx, usecase.UpdateCredentialInput{
		ID:       admin.ID,
		Username: "root",
		IsAdmin:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, "root", updated.Username)
	assert.True(t, updated.IsAdmin)
}

func TestAccountService_UpdateCredential_DemoteWithPeerSucceeds(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	admin := legacyCredential("admin", "Admin")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockCredRepo.EXPECT().CountAdmins(ctx).Return(int64(2), nil)
			mockCredRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Credential")).
				RunAndReturn(func(ctx context.Context, cred *entity.Credential) (*entity.Credential, error) {
					return cred, nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateCredential(ctx, usecase.UpdateCredentialInput{
		ID:       admin.ID,
		Username: "admin",
		IsAdmin:  false,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsAdmin)
}

func TestAccountService_ChangeSecret(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.hasher.EXPECT().Hash("NewSecret1").Return(bcryptHash, nil)
	fx.credentialRepo.EXPECT().UpdateSecret(ctx, id, entity.NewHashedSecret(bcryptHash)).Return(nil)

	err := fx.service.ChangeSecret(ctx, usecase.ChangeSecretInput{ID: id, Secret: "NewSecret1"})

	require.NoError(t, err)
}

func TestAccountService_ListCredentials_Redacted(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	creds := []*entity.Credential{hashedCredential("a"), legacyCredential("b", "plain")}

	fx.credentialRepo.EXPECT().List(ctx).Return(creds, nil)

	listed, err := fx.service.ListCredentials(ctx)

	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, cred := range listed {
		assert.True(t, cred.Secret.IsZero())
	}
}

func TestAccountService_EnsureDefaultAdmin_CreatesWhenNoneExists(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Admin").Return(bcryptHash, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().CountAdmins(ctx).Return(int64(0), nil)
			mockCredRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				RunAndReturn(func(ctx context.Context, cred *entity.Credential) (*entity.Credential, error) {
					assert.Equal(t, "admin", cred.Username)
					assert.True(t, cred.IsAdmin)
					assert.True(t, cred.Secret.IsHashed())
					return cred, nil
				})

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.EnsureDefaultAdmin(ctx)

	require.NoError(t, err)
}

func TestAccountService_EnsureDefaultAdmin_NoopWhenAdminExists(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	// No Hash expectation: when an administrator already exists the bcrypt
	// work must be skipped entirely.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().CountAdmins(ctx).Return(int64(1), nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.EnsureDefaultAdmin(ctx)

	require.NoError(t, err)
}
