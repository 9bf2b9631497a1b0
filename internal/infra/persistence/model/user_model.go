package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName *string   `gorm:"type:varchar(100)"`
	LastName  *string   `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
