package impl_test

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/testdb"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type outcomeLog []string

func (l *outcomeLog) RecordCheckout(outcome string) {
	*l = append(*l, outcome)
}

// hookedTxManager hands the checkout a factory whose cart reads run onCartRead
// right after loading, still inside the transaction.
type hookedTxManager struct {
	repository.TransactionManager
	onCartRead func(ctx context.Context, carts repository.CartRepository, cart *entity.Cart) error
}

func (m *hookedTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.TransactionManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(&hookedFactory{RepositoryFactory: factory, onCartRead: m.onCartRead})
	})
}

type hookedFactory struct {
	repository.RepositoryFactory
	onCartRead func(ctx context.Context, carts repository.CartRepository, cart *entity.Cart) error
}

func (f *hookedFactory) NewCartRepository() repository.CartRepository {
	return &hookedCartRepository{CartRepository: f.RepositoryFactory.NewCartRepository(), onCartRead: f.onCartRead}
}

type hookedCartRepository struct {
	repository.CartRepository
	onCartRead func(ctx context.Context, carts repository.CartRepository, cart *entity.Cart) error
}

func (r *hookedCartRepository) FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := r.CartRepository.FindCartByUserID(ctx, userID)
	if err != nil || r.onCartRead == nil {
		return cart, err
	}

	return cart, r.onCartRead(ctx, r.CartRepository, cart)
}

type checkoutFixture struct {
	db       *gorm.DB
	user     *entity.User
	address  *entity.Address
	outcomes *outcomeLog
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	ctx := context.Background()
	db := testdb.New(t)

	user := &entity.User{Email: "ada@example.com"}
	require.NoError(t, postgres.NewUserRepository(db).Create(ctx, user))

	address := &entity.Address{
		UserID: user.ID, Name: "Home", Phone: "5550100", PinCode: "560001", Locality: "Indiranagar",
		Street: "12th Main", City: "Bengaluru", District: "Bengaluru Urban", State: "Karnataka",
	}
	require.NoError(t, postgres.NewAddressRepository(db).CreateAddress(ctx, address))

	return &checkoutFixture{db: db, user: user, address: address, outcomes: &outcomeLog{}}
}

func (f *checkoutFixture) product(t *testing.T, title string) *entity.Product {
	t.Helper()

	p := &entity.Product{
		Title:  title,
		Price:  decimal.RequireFromString("10.00"),
		Images: []string{"https://img.example/" + title + ".png"},
	}
	require.NoError(t, postgres.NewProductRepository(f.db).CreateProduct(context.Background(), p))

	return p
}

func (f *checkoutFixture) orderService(txManager repository.TransactionManager) usecase.OrderUsecase {
	return impl.NewOrderService(impl.OrderServiceParams{
		TxManager: txManager,
		OrderRepo: postgres.NewOrderRepository(f.db),
		Recorder:  f.outcomes,
		Logger:    slog.New(slog.DiscardHandler),
	})
}

func (f *checkoutFixture) cartService() usecase.CartUsecase {
	return impl.NewCartService(impl.CartServiceParams{
		TxManager:   postgres.NewTransactionManager(f.db),
		CartRepo:    postgres.NewCartRepository(f.db),
		ProductRepo: postgres.NewProductRepository(f.db),
		Logger:      slog.New(slog.DiscardHandler),
	})
}

func TestCheckout_KeepsProductAddedAfterCartRead(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	a := f.product(t, "lamp")
	b := f.product(t, "desk")
	late := f.product(t, "chair")

	carts := f.cartService()
	_, err := carts.AddToCart(ctx, f.user.ID, a.ID)
	require.NoError(t, err)
	_, err = carts.AddToCart(ctx, f.user.ID, b.ID)
	require.NoError(t, err)

	txManager := &hookedTxManager{
		TransactionManager: postgres.NewTransactionManager(f.db),
		onCartRead: func(ctx context.Context, cartRepo repository.CartRepository, cart *entity.Cart) error {
			return cartRepo.AddProduct(ctx, cart.ID, late.ID)
		},
	}

	order, err := f.orderService(txManager).Checkout(ctx, f.user.ID, &usecase.CheckoutInput{AddressID: f.address.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, entity.ProductIDs(order.Products))

	cart, err := carts.GetCart(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{late.ID}, entity.ProductIDs(cart.Products))

	orders, err := postgres.NewOrderRepository(f.db).FindOrdersByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, entity.ProductIDs(orders[0].Products))
	assert.Equal(t, []string{"placed"}, []string(*f.outcomes))
}

func TestCheckout_FailureRollsBackOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	a := f.product(t, "lamp")

	_, err := f.cartService().AddToCart(ctx, f.user.ID, a.ID)
	require.NoError(t, err)

	txManager := &hookedTxManager{
		TransactionManager: postgres.NewTransactionManager(f.db),
		onCartRead: func(context.Context, repository.CartRepository, *entity.Cart) error {
			return errors.New("connection reset")
		},
	}

	_, err = f.orderService(txManager).Checkout(ctx, f.user.ID, &usecase.CheckoutInput{AddressID: f.address.ID})
	require.Error(t, err)

	orders, err := postgres.NewOrderRepository(f.db).FindOrdersByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := f.cartService().GetCart(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID}, entity.ProductIDs(cart.Products))
	assert.Equal(t, []string{"failed"}, []string(*f.outcomes))
}

func TestCheckout_EmptyCartAndMissingProduct(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	_, err := f.cartService().AddToCart(ctx, f.user.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = postgres.NewCartRepository(f.db).FindCartByUserID(ctx, f.user.ID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	_, err = f.orderService(postgres.NewTransactionManager(f.db)).Checkout(ctx, f.user.ID, &usecase.CheckoutInput{AddressID: f.address.ID})
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Equal(t, []string{"cart_empty"}, []string(*f.outcomes))
}
