package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// authRepository implements the domain.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrAuthAlreadyExists)
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrUserNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&authM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthenticationDomain(&authM), nil
}

func (repo *authRepository) FindAuthenticationByUser(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&authM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication by user")
	}

	return toAuthenticationDomain(&authM), nil
}

func (repo *authRepository) UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{ID: auth.ID}).
		Updates(map[string]any{
			"provider_user_id": auth.ProviderUserID,
			"password_hash":    auth.PasswordHash,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.WithStack(repository.ErrAuthAlreadyExists)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update authentication")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

func toAuthenticationDomain(m *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:             m.ID,
		UserID:         m.UserID,
		Provider:       m.Provider,
		ProviderUserID: m.ProviderUserID,
		PasswordHash:   m.PasswordHash,
		CreatedAt:      m.CreatedAt,
	}
}

func fromAuthenticationDomain(a *entity.Authentication) *model.AuthenticationModel {
	return &model.AuthenticationModel{
		ID:             a.ID,
		UserID:         a.UserID,
		Provider:       a.Provider,
		ProviderUserID: a.ProviderUserID,
		PasswordHash:   a.PasswordHash,
		CreatedAt:      a.CreatedAt,
	}
}
