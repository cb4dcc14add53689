package handlers

import (
	"deposit-accounts/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface on top of the shared
// validator with the deposit account custom tags registered
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}
