// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"hrcore/config"
	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/repository"
	"hrcore/internal/domain/service"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	bootstrap      *config.BootstrapConfig
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	var bootstrap *config.BootstrapConfig
	if params.Config != nil {
		bootstrap = params.Config.Bootstrap
	}

	return &accountService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		bootstrap:      bootstrap,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies a username and secret pair. All rejection paths
// return the same invalid-credentials error so callers cannot tell which
// check failed. Records that still hold a plaintext secret are upgraded to
// a hash on their first successful verification.
func (srv *accountService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	// The secret is trimmed only for the emptiness check. The comparison,
	// and any migration hash, use the raw bytes so a padded secret created
	// through CreateCredential or ChangeSecret keeps working.
	username := strings.TrimSpace(input.Username)
	secret := input.Secret
	if username == "" || strings.TrimSpace(secret) == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "empty username or secret")
	}

	cred, err := srv.credentialRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Authentication failed", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	// Check the secret outside any transaction (bcrypt is CPU-bound).
	if cred.Secret.IsHashed() {
		if !srv.hasher.Check(secret, cred.Secret.Value()) {
			srv.log(ctx).Warn("Authentication failed", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}
	} else {
		if cred.Secret.Value() != secret {
			// Neither a recognized hash nor matching plaintext. Such records
			// always fail verification until an administrator resets them.
			srv.log(ctx).Warn("Stored secret in unrecognized format or plaintext mismatch", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		srv.migrateLegacySecret(ctx, cred, secret)
	}

	accessToken, err := srv.tokenService.GenerateToken(cred.ID, cred.Role())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Authentication succeeded", slog.Any("credentialID", cred.ID), slog.String("role", cred.Role()))

	return &usecase.AuthenticateOutput{
		AccessToken: accessToken,
		Credential:  cred.Redacted(),
	}, nil
}

// migrateLegacySecret replaces a verified plaintext secret with its hash.
// Failures are logged and swallowed so the already-successful verification
// is not affected; the record is upgraded on a later attempt instead.
func (srv *accountService) migrateLegacySecret(ctx context.Context, cred *entity.Credential, secret string) {
	hashed, err := srv.hasher.Hash(secret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash secret during migration", slog.Any("credentialID", cred.ID), slog.Any("error", err))

		return
	}

	if err := srv.credentialRepo.UpdateSecret(ctx, cred.ID, entity.NewHashedSecret(hashed)); err != nil {
		srv.log(ctx).Error("Failed to persist migrated secret", slog.Any("credentialID", cred.ID), slog.Any("error", err))

		return
	}

	cred.Secret = entity.NewHashedSecret(hashed)
	srv.log(ctx).Info("Migrated legacy secret to hash", slog.Any("credentialID", cred.ID))
}

// CreateCredential registers a new credential with a hashed secret.
func (srv *accountService) CreateCredential(ctx context.Context, input usecase.CreateCredentialInput) (*entity.Credential, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username must not be empty")
	}
	if strings.TrimSpace(input.Secret) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("secret must not be empty")
	}

	hashed, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash secret", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrSecretHashFailed, "failed to hash secret")
	}

	var created *entity.Credential
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.CredentialRepo()

		taken, err := credRepo.UsernameExists(ctx, username, uuid.Nil)
		if err != nil {
			return errors.Wrap(err, "failed to check username existence")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "username already exists")
		}

		created, err = credRepo.Create(ctx, &entity.Credential{
			Username: username,
			Secret:   entity.NewHashedSecret(hashed),
			IsAdmin:  input.IsAdmin,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create credential", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Credential created", slog.Any("credentialID", created.ID), slog.Bool("isAdmin", created.IsAdmin))

	return created.Redacted(), nil
}

// UpdateCredential changes a credential's username and administrator flag.
// Demoting the last remaining administrator is rejected.
func (srv *accountService) UpdateCredential(ctx context.Context, input usecase.UpdateCredentialInput) (*entity.Credential, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username must not be empty")
	}

	var updated *entity.Credential
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.CredentialRepo()

		current, err := credRepo.FindByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.Wrap(domainerrors.ErrCredentialNotFound, "credential not found")
			}

			return errors.Wrap(err, "failed to find credential")
		}

		if username != current.Username {
			taken, err := credRepo.UsernameExists(ctx, username, input.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check username existence")
			}
			if taken {
				return errors.Wrap(domainerrors.ErrUsernameTaken, "username already exists")
			}
		}

		if current.IsAdmin && !input.IsAdmin {
			if err := srv.ensureNotLastAdmin(ctx, credRepo); err != nil {
				return err
			}
		}

		current.Username = username
		current.IsAdmin = input.IsAdmin

		updated, err = credRepo.Update(ctx, current)
		if err != nil {
			return errors.Wrap(err, "failed to update credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update credential", slog.Any("credentialID", input.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Credential updated", slog.Any("credentialID", updated.ID))

	return updated.Redacted(), nil
}

// ChangeSecret replaces a credential's stored secret with the hash of the new one.
func (srv *accountService) ChangeSecret(ctx context.Context, input usecase.ChangeSecretInput) error {
	if strings.TrimSpace(input.Secret) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("secret must not be empty")
	}

	hashed, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash secret", slog.Any("credentialID", input.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrSecretHashFailed, "failed to hash secret")
	}

	if err := srv.credentialRepo.UpdateSecret(ctx, input.ID, entity.NewHashedSecret(hashed)); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(domainerrors.ErrCredentialNotFound, "credential not found")
		}

		return errors.Wrap(err, "failed to update secret")
	}

	srv.log(ctx).Info("Credential secret changed", slog.Any("credentialID", input.ID))

	return nil
}

// DeleteCredential removes a credential. Deleting the last remaining
// administrator is rejected; the admin count is re-evaluated inside the
// same transaction as the delete.
func (srv *accountService) DeleteCredential(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.CredentialRepo()

		current, err := credRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return errors.Wrap(domainerrors.ErrCredentialNotFound, "credential not found")
			}

			return errors.Wrap(err, "failed to find credential")
		}

		if current.IsAdmin {
			if err := srv.ensureNotLastAdmin(ctx, credRepo); err != nil {
				return err
			}
		}

		if err := credRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete credential", slog.Any("credentialID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Credential deleted", slog.Any("credentialID", id))

	return nil
}

// ensureNotLastAdmin rejects an operation that would leave the system with
// no administrator.
func (srv *accountService) ensureNotLastAdmin(ctx context.Context, credRepo repository.CredentialRepository) error {
	adminCount, err := credRepo.CountAdmins(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count administrators")
	}
	if adminCount <= 1 {
		return errors.Wrap(domainerrors.ErrLastAdministrator, "cannot remove the last administrator")
	}

	return nil
}

// GetCredential retrieves a single credential with its secret redacted.
func (srv *accountService) GetCredential(ctx context.Context, id uuid.UUID) (*entity.Credential, error) {
	cred, err := srv.credentialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCredentialNotFound, "credential not found")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return cred.Redacted(), nil
}

// ListCredentials retrieves all credentials with their secrets redacted.
func (srv *accountService) ListCredentials(ctx context.Context) ([]*entity.Credential, error) {
	creds, err := srv.credentialRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	redacted := make([]*entity.Credential, 0, len(creds))
	for _, cred := range creds {
		redacted = append(redacted, cred.Redacted())
	}

	return redacted, nil
}

// EnsureDefaultAdmin creates the configured default administrator when no
// administrator record exists yet. It runs once at startup so a fresh
// deployment is never locked out.
func (srv *accountService) EnsureDefaultAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || srv.bootstrap.AdminUsername == "" {
		srv.log(ctx).Debug("Default administrator bootstrap disabled")

		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.CredentialRepo()

		adminCount, err := credRepo.CountAdmins(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count administrators")
		}
		if adminCount > 0 {
			return nil
		}

		// Hashing happens only on a fresh store, so the cost is paid once.
		hashed, err := srv.hasher.Hash(srv.bootstrap.AdminSecret)
		if err != nil {
			return errors.Wrap(domainerrors.ErrSecretHashFailed, "failed to hash bootstrap secret")
		}

		_, err = credRepo.Create(ctx, &entity.Credential{
			Username: srv.bootstrap.AdminUsername,
			Secret:   entity.NewHashedSecret(hashed),
			IsAdmin:  true,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create default administrator")
		}

		srv.log(ctx).Info("Created default administrator", slog.String("username", srv.bootstrap.AdminUsername))

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to bootstrap default administrator", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute default administrator bootstrap transaction")
	}

	return nil
}
