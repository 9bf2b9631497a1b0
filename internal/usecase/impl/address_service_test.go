package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	return addressServiceFixtures{
		service: NewAddressService(AddressServiceParams{
			TxManager:   txManager,
			AddressRepo: addressRepo,
			Logger:      newDiscardLogger(),
		}),
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

func TestAddressService_AddAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddressInput{Name: "Home", Phone: "5550100", PinCode: "560001", Locality: "Indiranagar", Street: "12th Main", City: "Bengaluru", District: "Bengaluru Urban", State: "Karnataka"}

	fx.addressRepo.EXPECT().CreateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.UserID == userID && a.City == "Bengaluru"
	})).Return(nil)

	address, err := fx.service.AddAddress(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
}

func TestAddressService_GetAddress_Ownership(t *testing.T) {
	ownerID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: ownerID}

	t.Run("owner", func(t *testing.T) {
		fx := createTestAddressService(t)
		ctx := context.Background()
		fx.addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

		got, err := fx.service.GetAddress(ctx, ownerID, address.ID)

		require.NoError(t, err)
		assert.Equal(t, address, got)
	})

	t.Run("someone else", func(t *testing.T) {
		fx := createTestAddressService(t)
		ctx := context.Background()
		fx.addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

		_, err := fx.service.GetAddress(ctx, uuid.New(), address.ID)

		assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestAddressService(t)
		ctx := context.Background()
		fx.addressRepo.EXPECT().FindAddressByID(ctx, address.ID).Return(nil, repository.ErrAddressNotFound)

		_, err := fx.service.GetAddress(ctx, ownerID, address.ID)

		assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})
}

func TestAddressService_EditAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	repos := newTxRepos(t)
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID, City: "Pune", Street: "MG Road"}
	city := "Mumbai"

	expectTx(fx.txManager, ctx, repos)
	repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	repos.address.EXPECT().UpdateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.City == "Mumbai" && a.Street == "MG Road"
	})).Return(nil)

	updated, err := fx.service.EditAddress(ctx, userID, address.ID, &usecase.EditAddressInput{City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
}

func TestAddressService_DeleteAddress_ForeignOwner(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	repos := newTxRepos(t)
	address := &entity.Address{ID: uuid.New(), UserID: uuid.New()}

	expectTx(fx.txManager, ctx, repos)
	repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	err := fx.service.DeleteAddress(ctx, uuid.New(), address.ID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
	repos.address.AssertNotCalled(t, "DeleteAddress", mock.Anything, mock.Anything)
}
