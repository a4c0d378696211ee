package catalog

import (
	"strings"

	"bobaseed/internal/model"

	"github.com/shopspring/decimal"
)

// teaSynonyms canonicalizes the tea-base tag. Unrecognized values fall
// through unchanged.
var teaSynonyms = map[string]string{
	"milk":      "milk tea",
	"milk tea":  "milk tea",
	"green":     "green tea",
	"green tea": "green tea",
}

var recipeQty = decimal.RequireFromString("1.0")

// Recipes derives the product→ingredient lines from the catalog's tag
// columns: zero, one, or two lines per product, quantity-per-unit fixed at
// 1.0. Tags are lowercased and trimmed; empty tags produce no line.
func (c *Catalog) Recipes() []model.RecipeLine {
	var lines []model.RecipeLine
	for i, p := range c.Products {
		if fruit := normalizeTag(c.tags[i].fruit); fruit != "" {
			lines = append(lines, model.RecipeLine{
				ProductID:       p.ID,
				IngredientName:  fruit,
				QuantityPerUnit: recipeQty,
			})
		}
		if tea := normalizeTag(c.tags[i].tea); tea != "" {
			if canonical, ok := teaSynonyms[tea]; ok {
				tea = canonical
			}
			lines = append(lines, model.RecipeLine{
				ProductID:       p.ID,
				IngredientName:  tea,
				QuantityPerUnit: recipeQty,
			})
		}
	}
	return lines
}

func normalizeTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
