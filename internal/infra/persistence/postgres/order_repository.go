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

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order row and one join row per product.
// Callers wanting atomicity with other writes run it inside TransactionManager.Execute.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		UserID:    order.UserID,
		AddressID: order.AddressID,
		Status:    string(order.Status),
	}

	db := repo.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrAddressNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	if len(order.Products) > 0 {
		links := make([]model.OrderProductModel, 0, len(order.Products))
		for _, p := range order.Products {
			links = append(links, model.OrderProductModel{OrderID: orderM.ID, ProductID: p.ID})
		}
		if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to connect order products")
		}
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped().Order("products.created_at ASC, products.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	products := make([]*entity.Product, 0, len(m.Products))
	for i := range m.Products {
		products = append(products, toProductDomain(&m.Products[i]))
	}

	return &entity.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		AddressID: m.AddressID,
		Status:    entity.OrderStatus(m.Status),
		Products:  products,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
