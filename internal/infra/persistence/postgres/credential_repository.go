package postgres

import (
	"context"

	"hrcore/internal/domain/entity"
	"hrcore/internal/domain/repository"
	"hrcore/internal/errors"
	"hrcore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// toCredentialModel converts a domain entity to a persistence model.
func toCredentialModel(cred *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:        cred.ID,
		Username:  cred.Username,
		Secret:    cred.Secret.Value(),
		IsAdmin:   cred.IsAdmin,
		CreatedAt: cred.CreatedAt,
		UpdatedAt: cred.UpdatedAt,
	}
}

// toCredentialEntity converts a persistence model back to a domain entity.
// The stored secret is re-tagged by format so callers never have to sniff
// the raw value themselves.
func toCredentialEntity(m *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:        m.ID,
		Username:  m.Username,
		Secret:    entity.ParseStoredSecret(m.Secret),
		IsAdmin:   m.IsAdmin,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *credentialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Credential, error) {
	var m model.CredentialModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by id")
	}

	return toCredentialEntity(&m), nil
}

func (r *credentialRepository) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var m model.CredentialModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by username")
	}

	return toCredentialEntity(&m), nil
}

func (r *credentialRepository) List(ctx context.Context) ([]*entity.Credential, error) {
	var models []*model.CredentialModel
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	creds := make([]*entity.Credential, 0, len(models))
	for _, m := range models {
		creds = append(creds, toCredentialEntity(m))
	}

	return creds, nil
}

func (r *credentialRepository) Create(ctx context.Context, cred *entity.Credential) (*entity.Credential, error) {
	m := toCredentialModel(cred)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, errors.Wrap(err, "username already exists")
		}

		return nil, errors.Wrap(err, "failed to create credential")
	}

	return toCredentialEntity(m), nil
}

// Update persists changes to the username and administrator flag only. The
// stored secret has its own write path via UpdateSecret.
func (r *credentialRepository) Update(ctx context.Context, cred *entity.Credential) (*entity.Credential, error) {
	result := r.db.WithContext(ctx).Model(&model.CredentialModel{}).
		Where("id = ?", cred.ID).
		Updates(map[string]any{
			"username": cred.Username,
			"is_admin": cred.IsAdmin,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, errors.Wrap(result.Error, "username already exists")
		}

		return nil, errors.Wrap(result.Error, "failed to update credential")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCredentialNotFound
	}

	return r.FindByID(ctx, cred.ID)
}

func (r *credentialRepository) UpdateSecret(ctx context.Context, id uuid.UUID, secret entity.StoredSecret) error {
	result := r.db.WithContext(ctx).Model(&model.CredentialModel{}).
		Where("id = ?", id).
		Update("secret", secret.Value())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update credential secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (r *credentialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CredentialModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (r *credentialRepository) UsernameExists(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.CredentialModel{}).Where("username = ?", username)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return count > 0, nil
}

func (r *credentialRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CredentialModel{}).
		Where("is_admin = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count administrators")
	}

	return count, nil
}
