// Package model holds the GORM persistence models. They are mapped to and
// from domain entities inside the repositories and never leak past them.
package model

import (
	"storefront/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID assigns a time-ordered UUIDv7 to an empty primary key.
func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}

// All returns every model in dependency order, for AutoMigrate in tests and tooling.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&AddressModel{},
		&ProductModel{},
		&CartModel{},
		&CartProductModel{},
		&OrderModel{},
		&OrderProductModel{},
	}
}


// SetupJoinTables registers the explicit join models for the many2many
// associations, so migrations and preloads share their foreign keys.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&CartModel{}, "Products", &CartProductModel{}); err != nil {
		return errors.Wrap(err, "failed to set up cart_products")
	}
	if err := db.SetupJoinTable(&OrderModel{}, "Products", &OrderProductModel{}); err != nil {
		return errors.Wrap(err, "failed to set up order_products")
	}

	return nil
}
