package model

import (
	"github.com/shopspring/decimal"
)

// RecipeLine links a product to one ingredient by name. Ingredient names are
// resolved to inventory ids downstream by case-insensitive name equality,
// never by id, so the generator only carries the name.
type RecipeLine struct {
	ProductID       int
	IngredientName  string
	QuantityPerUnit decimal.Decimal // decimal(10,1), fixed at 1.0
}
