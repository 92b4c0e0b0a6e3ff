// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/marcelokbc/expense-manager/internal/models"
)

// Canonical zero-padded form; a single-digit month is tolerated.
var yearMonthRegex = regexp.MustCompile(`^\d{4}-\d{1,2}$`)

// Register registers all custom validators with the Gin binding engine.
func Register(catalog models.Catalog) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("year_month", validateYearMonth)
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("sale_status", validateSaleStatus)
		_ = v.RegisterValidation("category_key", validateCategoryKey(catalog))
	}
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRegex.MatchString(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.PaymentMethod(fl.Field().String()).Valid()
}

func validateSaleStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "paid", "pending":
		return true
	}
	return false
}

func validateCategoryKey(catalog models.Catalog) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return catalog.Has(models.CategoryKey(fl.Field().String()))
	}
}
