package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Rows are soft-deleted.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_products_price,price >= 0"`
	Images      []string        `gorm:"serializer:json;type:jsonb;not null"`
	Description *string         `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
