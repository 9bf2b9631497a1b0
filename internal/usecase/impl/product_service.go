package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "get product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) AddProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Title:       strings.TrimSpace(input.Title),
		Price:       input.Price,
		Images:      input.Images,
		Description: input.Description,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product added", slog.Any("productID", product.ID), slog.String("price", product.Price.String()))

	return product, nil
}

func (srv *productService) EditProduct(ctx context.Context, productID uuid.UUID, input *usecase.EditProductInput) (*entity.Product, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "edit product")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.Title != nil {
			product.Title = strings.TrimSpace(*input.Title)
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Images != nil {
			product.Images = input.Images
		}
		if input.Description != nil {
			product.Description = input.Description
		}
		if err := validateProduct(product); err != nil {
			return err
		}

		if err := productRepo.UpdateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		updated = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute edit product transaction")
	}

	return updated, nil
}

// DeleteProduct hides the product from the catalog and from every cart.
// Orders keep referencing it.
func (srv *productService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := srv.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "delete product")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

func validateProduct(product *entity.Product) error {
	if product.Price.LessThan(decimal.Zero) {
		return errors.Wrap(domainerrors.ErrInvalidPrice.WithDetails(product.Price.String()), "validate product")
	}
	if product.Title == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title is required"), "validate product")
	}
	if len(product.Images) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("at least one image is required"), "validate product")
	}

	return nil
}
