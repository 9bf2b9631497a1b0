package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	recorder  service.CheckoutRecorder
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Recorder  service.CheckoutRecorder
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		recorder:  params.Recorder,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout runs as a single transaction:
//  1. read the cart and its products
//  2. reject an absent or empty cart
//  3. check the address belongs to the buyer
//  4. create the order from the products read in step 1
//  5. remove exactly those products from the cart
//
// Products added to the cart after step 1 stay in it.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := cartRepo.FindCartByUserID(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return errors.Wrap(domainerrors.ErrCartEmpty, "checkout")
		}

		address, err := authorizeAddress(ctx, repoFactory.NewAddressRepository(), userID, input.AddressID)
		if err != nil {
			return err
		}

		snapshot := cart.Products
		newOrder := &entity.Order{
			UserID:    userID,
			AddressID: address.ID,
			Status:    entity.OrderStatusPlaced,
			Products:  snapshot,
		}
		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, newOrder); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "checkout")
			}

			return errors.Wrap(domainerrors.ErrOrderCreationFailed, err.Error())
		}

		if err := cartRepo.RemoveProducts(ctx, cart.ID, entity.ProductIDs(snapshot)); err != nil {
			return errors.Wrap(domainerrors.ErrOrderCreationFailed, err.Error())
		}
		order = newOrder

		return nil
	})
	srv.recorder.RecordCheckout(checkoutOutcome(err))
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("userID", userID),
		slog.Any("orderID", order.ID),
		slog.Int("products", len(order.Products)),
	)

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func checkoutOutcome(err error) string {
	if err == nil {
		return service.CheckoutOutcomePlaced
	}
	if errors.Is(err, domainerrors.ErrCartEmpty) {
		return service.CheckoutOutcomeCartEmpty
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < 500 {
		return service.CheckoutOutcomeRejected
	}

	return service.CheckoutOutcomeFailed
}
