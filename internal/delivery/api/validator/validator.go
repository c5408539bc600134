// Package validator adapts go-playground/validator to echo.
package validator

import (
	"intercity/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator for request structs
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags on i and reports the first violation
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errors.WithStack(err)
	}

	e := validationErrs[0]
	switch e.Tag() {
	case "required":
		return errors.Errorf("%s: field is required", e.Field())
	case "min":
		return errors.Errorf("%s: must be at least %s", e.Field(), e.Param())
	case "max":
		return errors.Errorf("%s: must not exceed %s", e.Field(), e.Param())
	case "oneof":
		return errors.Errorf("%s: must be one of [%s]", e.Field(), e.Param())
	default:
		return errors.Errorf("%s: validation failed (%s)", e.Field(), e.Tag())
	}
}
