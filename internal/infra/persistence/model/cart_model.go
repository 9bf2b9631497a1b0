package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartModel mirrors the 'carts' table. The unique index on user_id is what
// keeps concurrent first adds from creating two carts.
type CartModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	User      UserModel      `gorm:"constraint:OnDelete:CASCADE"`
	Products  []ProductModel `gorm:"many2many:cart_products;joinForeignKey:CartID;joinReferences:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

func (m *CartModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}

// CartProductModel is the 'cart_products' join table. The composite key makes
// membership a set.
type CartProductModel struct {
	CartID    uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Cart      CartModel    `gorm:"constraint:OnDelete:CASCADE"`
	ProductID uuid.UUID    `gorm:"type:uuid;primaryKey;index"`
	Product   ProductModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartProductModel) TableName() string {
	return "cart_products"
}
