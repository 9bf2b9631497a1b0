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
	"gorm.io/plugin/dbresolver"
)

// cartRepository implements the domain.CartRepository interface.
// Cart reads are pinned to the primary: the cart is read right before it is
// written, so replica lag would show stale membership.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.created_at ASC, products.id ASC")
		}).
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return toCartDomain(&cartM), nil
}

// GetOrCreateCart inserts a cart unless one exists, then reads whichever row won.
func (repo *cartRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cartM := &model.CartModel{UserID: userID}

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(cartM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return repo.FindCartByUserID(ctx, userID)
}

func (repo *cartRepository) AddProduct(ctx context.Context, cartID, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CartProductModel{CartID: cartID, ProductID: productID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrProductNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product to cart")
	}

	return nil
}

func (repo *cartRepository) RemoveProducts(ctx context.Context, cartID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id IN ?", cartID, productIDs).
		Delete(&model.CartProductModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove products from cart")
	}

	return nil
}

func toCartDomain(m *model.CartModel) *entity.Cart {
	products := make([]*entity.Product, 0, len(m.Products))
	for i := range m.Products {
		products = append(products, toProductDomain(&m.Products[i]))
	}

	return &entity.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		Products:  products,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
