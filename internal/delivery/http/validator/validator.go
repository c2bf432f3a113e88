// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator wraps a go-playground validator instance so echo can run
// struct-tag validation on bound request bodies.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the default tag set.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag failures become 400 responses.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
