// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks i against its `validate` tags.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i) //nolint:wrapcheck // ValidationErrors are unpacked by FieldErrors.
}

// FieldErrors maps each failing field to the rule it broke.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		fields[fieldErr.Field()] = rule
	}

	return fields
}
