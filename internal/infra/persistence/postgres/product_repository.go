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
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the domain.ProductRepository interface.
// Catalog reads may be served by a replica.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPrice.WrapMessage("create product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("created_at DESC, id DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select("title", "price", "images", "description", "updated_at").
		Updates(fromProductDomain(product))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPrice.WrapMessage("update product")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	p := &entity.Product{
		ID:          m.ID,
		Title:       m.Title,
		Price:       m.Price,
		Images:      m.Images,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		p.DeletedAt = &deletedAt
	}

	return p
}

func toProductDomains(models []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	m := &model.ProductModel{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Images:      p.Images,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if m.Images == nil {
		m.Images = []string{}
	}

	return m
}
