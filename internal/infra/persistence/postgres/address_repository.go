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
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrUserNotFound)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

func (repo *addressRepository) FindAddressesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, toAddressDomain(&addressModels[i]))
	}

	return addresses, nil
}

func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{ID: address.ID}).
		Select("name", "phone", "pin_code", "locality", "street", "city", "district", "state",
			"landmark", "alternative_phone", "updated_at").
		Updates(fromAddressDomain(address))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrForbidden.WrapMessage("address is referenced by an order")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func toAddressDomain(m *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		Phone:            m.Phone,
		PinCode:          m.PinCode,
		Locality:         m.Locality,
		Street:           m.Street,
		City:             m.City,
		District:         m.District,
		State:            m.State,
		Landmark:         m.Landmark,
		AlternativePhone: m.AlternativePhone,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromAddressDomain(a *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:               a.ID,
		UserID:           a.UserID,
		Name:             a.Name,
		Phone:            a.Phone,
		PinCode:          a.PinCode,
		Locality:         a.Locality,
		Street:           a.Street,
		City:             a.City,
		District:         a.District,
		State:            a.State,
		Landmark:         a.Landmark,
		AlternativePhone: a.AlternativePhone,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
