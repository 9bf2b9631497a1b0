package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	recorder  *mockSvc.MockCheckoutRecorder
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	recorder := mockSvc.NewMockCheckoutRecorder(t)

	return orderServiceFixtures{
		service: NewOrderService(OrderServiceParams{
			TxManager: txManager,
			OrderRepo: orderRepo,
			Recorder:  recorder,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		orderRepo: orderRepo,
		recorder:  recorder,
	}
}

func TestOrderService_Checkout_OrdersSnapshotAndClearsIt(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	repos := newTxRepos(t)
	userID := uuid.New()
	productA := &entity.Product{ID: uuid.New(), Title: "A"}
	productB := &entity.Product{ID: uuid.New(), Title: "B"}
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Products: []*entity.Product{productA, productB}}
	address := &entity.Address{ID: uuid.New(), UserID: userID}

	expectTx(fx.txManager, ctx, repos)
	repos.cart.EXPECT().FindCartByUserID(ctx, userID).Return(cart, nil)
	repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	repos.order.EXPECT().CreateOrder(ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.UserID == userID &&
			o.AddressID == address.ID &&
			o.Status == entity.OrderStatusPlaced &&
			len(o.Products) == 2
	})).Run(func(_ context.Context, o *entity.Order) { o.ID = uuid.New() }).Return(nil)
	// Only the products read at checkout are removed; anything added later stays.
	repos.cart.EXPECT().RemoveProducts(ctx, cart.ID, []uuid.UUID{productA.ID, productB.ID}).Return(nil)
	fx.recorder.EXPECT().RecordCheckout(service.CheckoutOutcomePlaced).Return()

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: address.ID})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.ElementsMatch(t, []uuid.UUID{productA.ID, productB.ID}, entity.ProductIDs(order.Products))
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	tests := []struct {
		name    string
		cart    *entity.Cart
		findErr error
	}{
		{name: "no cart", findErr: repository.ErrCartNotFound},
		{name: "cart without products", cart: &entity.Cart{ID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			repos := newTxRepos(t)
			userID := uuid.New()

			expectTx(fx.txManager, ctx, repos)
			repos.cart.EXPECT().FindCartByUserID(ctx, userID).Return(tt.cart, tt.findErr)
			fx.recorder.EXPECT().RecordCheckout(service.CheckoutOutcomeCartEmpty).Return()

			order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: uuid.New()})

			assert.Nil(t, order)
			assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
			repos.order.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_Checkout_ForeignAddress(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	repos := newTxRepos(t)
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Products: []*entity.Product{{ID: uuid.New()}}}
	address := &entity.Address{ID: uuid.New(), UserID: uuid.New()}

	expectTx(fx.txManager, ctx, repos)
	repos.cart.EXPECT().FindCartByUserID(ctx, userID).Return(cart, nil)
	repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	fx.recorder.EXPECT().RecordCheckout(service.CheckoutOutcomeRejected).Return()

	_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: address.ID})

	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
	repos.cart.AssertNotCalled(t, "RemoveProducts", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_ClearFailureFailsCheckout(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	repos := newTxRepos(t)
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Products: []*entity.Product{{ID: uuid.New()}}}
	address := &entity.Address{ID: uuid.New(), UserID: userID}

	expectTx(fx.txManager, ctx, repos)
	repos.cart.EXPECT().FindCartByUserID(ctx, userID).Return(cart, nil)
	repos.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	repos.order.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	repos.cart.EXPECT().RemoveProducts(ctx, cart.ID, mock.Anything).Return(errors.New("connection reset"))
	fx.recorder.EXPECT().RecordCheckout(service.CheckoutOutcomeFailed).Return()

	_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: address.ID})

	assert.ErrorIs(t, err, domainerrors.ErrOrderCreationFailed)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	fx.orderRepo.EXPECT().FindOrdersByUserID(ctx, userID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
