package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel mirrors the 'addresses' table.
type AddressModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	User             UserModel `gorm:"constraint:OnDelete:CASCADE"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Phone            string    `gorm:"type:varchar(20);not null"`
	PinCode          string    `gorm:"type:varchar(12);not null"`
	Locality         string    `gorm:"type:varchar(255);not null"`
	Street           string    `gorm:"type:varchar(255);not null"`
	City             string    `gorm:"type:varchar(100);not null"`
	District         string    `gorm:"type:varchar(100);not null"`
	State            string    `gorm:"type:varchar(100);not null"`
	Landmark         *string   `gorm:"type:varchar(255)"`
	AlternativePhone *string   `gorm:"type:varchar(20)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

func (m *AddressModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
