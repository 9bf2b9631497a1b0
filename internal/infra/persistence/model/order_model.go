package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	User      UserModel      `gorm:"constraint:OnDelete:CASCADE"`
	AddressID uuid.UUID      `gorm:"type:uuid;not null"`
	Address   AddressModel   `gorm:"constraint:OnDelete:RESTRICT"`
	Status    string         `gorm:"type:varchar(20);not null"`
	Products  []ProductModel `gorm:"many2many:order_products;joinForeignKey:OrderID;joinReferences:ProductID"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}

// OrderProductModel is the 'order_products' join table.
type OrderProductModel struct {
	OrderID   uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Order     OrderModel   `gorm:"constraint:OnDelete:CASCADE"`
	ProductID uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Product   ProductModel `gorm:"constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderProductModel) TableName() string {
	return "order_products"
}
