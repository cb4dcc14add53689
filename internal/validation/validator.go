package validation

import (
	"reflect"
	"strings"

	"deposit-accounts/internal/dto"
	"deposit-accounts/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("deposit_account_type", validateDepositAccountType)
	_ = v.RegisterValidation("customer_type", validateCustomerType)
	_ = v.RegisterValidation("transaction_day", validateTransactionDay)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("account_number", validateAccountNumber)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateDepositAccountType validates that account type is one of the supported types
func validateDepositAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(fl.Field().String())
}

// validateCustomerType validates that customer type is one of the known types
func validateCustomerType(fl validator.FieldLevel) bool {
	return dto.IsValidCustomerType(fl.Field().String())
}

// validateTransactionDay validates that a transaction day falls within a calendar month
func validateTransactionDay(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}

// validateNonNegativeAmount validates that a decimal amount is zero or positive
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !amount.IsNegative()
}

// validateAccountNumber validates that an account number follows the expected format
// Format: ACC- prefix followed by 10 uppercase alphanumeric characters
func validateAccountNumber(fl validator.FieldLevel) bool {
	accountNumber := fl.Field().String()
	if !strings.HasPrefix(accountNumber, models.AccountNumberPrefix) {
		return false
	}

	suffix := strings.TrimPrefix(accountNumber, models.AccountNumberPrefix)
	if len(suffix) != 10 {
		return false
	}

	for _, r := range suffix {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		if !isDigit && !isUpper {
			return false
		}
	}

	return true
}
