// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var lastFourRegex = regexp.MustCompile(`^\d{4}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("priority", validatePriority)
		_ = v.RegisterValidation("last_four", validateLastFour)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash", "card":
		return true
	}
	return false
}

func validatePriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateLastFour(fl validator.FieldLevel) bool {
	return lastFourRegex.MatchString(fl.Field().String())
}
