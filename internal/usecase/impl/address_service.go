package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

func (srv *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	return authorizeAddress(ctx, srv.addressRepo, userID, addressID)
}

func (srv *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	address := &entity.Address{
		UserID:           userID,
		Name:             input.Name,
		Phone:            input.Phone,
		PinCode:          input.PinCode,
		Locality:         input.Locality,
		Street:           input.Street,
		City:             input.City,
		District:         input.District,
		State:            input.State,
		Landmark:         input.Landmark,
		AlternativePhone: input.AlternativePhone,
	}
	if err := srv.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Debug("Address added", slog.Any("userID", userID), slog.Any("addressID", address.ID))

	return address, nil
}

func (srv *addressService) EditAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.EditAddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := authorizeAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		applyAddressEdit(address, input)
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute edit address transaction")
	}

	return updated, nil
}

func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := authorizeAddress(ctx, addressRepo, userID, addressID); err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, addressID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "delete address")
			}

			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete address transaction")
	}

	srv.log(ctx).Debug("Address deleted", slog.Any("userID", userID), slog.Any("addressID", addressID))

	return nil
}

// authorizeAddress is shared with checkout, which must ship to an address of the buyer.
func authorizeAddress(ctx context.Context, repo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	return authorizeOwner(ctx, userID,
		func(ctx context.Context) (*entity.Address, error) {
			return repo.FindAddressByID(ctx, addressID)
		},
		repository.ErrAddressNotFound,
		domainerrors.ErrAddressNotFound,
		domainerrors.ErrAddressOwnershipViolation,
	)
}

func applyAddressEdit(address *entity.Address, input *usecase.EditAddressInput) {
	setIfPresent(&address.Name, input.Name)
	setIfPresent(&address.Phone, input.Phone)
	setIfPresent(&address.PinCode, input.PinCode)
	setIfPresent(&address.Locality, input.Locality)
	setIfPresent(&address.Street, input.Street)
	setIfPresent(&address.City, input.City)
	setIfPresent(&address.District, input.District)
	setIfPresent(&address.State, input.State)
	if input.Landmark != nil {
		address.Landmark = input.Landmark
	}
	if input.AlternativePhone != nil {
		address.AlternativePhone = input.AlternativePhone
	}
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
