package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/priceworks/price_calculator_app/internal/core/domain"
)

var categories = map[string]bool{
	string(domain.CategoryElectronics): true,
	string(domain.CategoryApparel):     true,
	string(domain.CategoryHomeKitchen): true,
	string(domain.CategoryBooks):       true,
	string(domain.CategoryToys):        true,
	string(domain.CategoryOther):       true,
}

// validateItemCategory implements the `itemcategory` binding tag.
func validateItemCategory(fl validator.FieldLevel) bool {
	return categories[fl.Field().String()]
}

// RegisterCustomValidators wires the custom binding tags into gin's validator
// engine. Called once at startup.
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("itemcategory", validateItemCategory)
}
