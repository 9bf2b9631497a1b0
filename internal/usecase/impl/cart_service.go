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

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) AddToCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		// The product is checked first so an unknown id never creates a cart.
		if err := requireProduct(ctx, repoFactory.NewProductRepository(), productID); err != nil {
			return err
		}

		existing, err := cartRepo.GetOrCreateCart(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to get or create cart")
		}

		if err := cartRepo.AddProduct(ctx, existing.ID, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "add to cart")
			}

			return errors.Wrap(err, "failed to add product to cart")
		}

		cart, err = cartRepo.FindCartByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add to cart transaction")
	}

	srv.log(ctx).Debug("Product added to cart", slog.Any("userID", userID), slog.Any("productID", productID))

	return cart, nil
}

func (srv *cartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		existing, err := authorizeOwner(ctx, userID,
			func(ctx context.Context) (*entity.Cart, error) {
				return cartRepo.FindCartByUserID(ctx, userID)
			},
			repository.ErrCartNotFound,
			domainerrors.ErrCartAccessDenied,
			domainerrors.ErrCartAccessDenied,
		)
		if err != nil {
			return err
		}

		if err := requireProduct(ctx, repoFactory.NewProductRepository(), productID); err != nil {
			return err
		}

		if err := cartRepo.RemoveProducts(ctx, existing.ID, []uuid.UUID{productID}); err != nil {
			return errors.Wrap(err, "failed to remove product from cart")
		}

		cart, err = cartRepo.FindCartByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute remove from cart transaction")
	}

	return cart, nil
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.NewEmptyCart(userID), nil
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func requireProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) error {
	if _, err := productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product lookup")
		}

		return errors.Wrap(err, "failed to find product")
	}

	return nil
}
