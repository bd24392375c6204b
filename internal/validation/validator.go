package validation

import (
	"reflect"
	"regexp"
	"strings"

	"poisar-hisap/internal/models"

	"github.com/go-playground/validator/v10"
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

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("expense_amount", validateExpenseAmount)
	_ = v.RegisterValidation("time_window", validateTimeWindow)

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

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// validateCurrencyCode validates an ISO 4217 style three-letter currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}

// amounts arrive as decimal strings so binding never rounds them through a float
var expenseAmountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// validateExpenseAmount validates a non-negative decimal amount with at most
// 2 fractional digits. Zero is allowed: a draft with no parsed amount is
// saved as zero for the user to fix later.
func validateExpenseAmount(fl validator.FieldLevel) bool {
	return expenseAmountPattern.MatchString(fl.Field().String())
}

// validateTimeWindow validates a dashboard window parameter
func validateTimeWindow(fl validator.FieldLevel) bool {
	_, err := models.ParseWindow(fl.Field().String())
	return err == nil
}
