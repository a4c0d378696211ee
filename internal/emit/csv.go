// Package emit serializes the generated entities to the four stage CSV
// artifacts and writes the psql bulk-load script that merges them into the
// permanent tables.
package emit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"bobaseed/internal/config"
	"bobaseed/internal/model"
)

const orderDateLayout = "2006-01-02 15:04:05"

// WriteStages writes all four stage artifacts with their exact header rows.
func WriteStages(paths config.StagePaths, products []model.Product, recipes []model.RecipeLine, orders []model.Order, items []model.OrderItem) error {
	if err := writeProducts(paths.Products, products); err != nil {
		return err
	}
	if err := writeRecipes(paths.ProductRecipe, recipes); err != nil {
		return err
	}
	if err := writeOrders(paths.Orders, orders); err != nil {
		return err
	}
	return writeItems(paths.OrderItems, items)
}

func writeProducts(path string, products []model.Product) error {
	return writeCSV(path, []string{"product_id", "product_name", "unit_price"}, len(products), func(i int) []string {
		p := products[i]
		return []string{strconv.Itoa(p.ID), p.Name, p.UnitPrice.StringFixed(2)}
	})
}

func writeRecipes(path string, recipes []model.RecipeLine) error {
	return writeCSV(path, []string{"product_id", "ingredient_name", "quantity_per_unit"}, len(recipes), func(i int) []string {
		r := recipes[i]
		return []string{strconv.Itoa(r.ProductID), r.IngredientName, r.QuantityPerUnit.StringFixed(1)}
	})
}

func writeOrders(path string, orders []model.Order) error {
	return writeCSV(path, []string{"order_id", "order_date", "total_amount"}, len(orders), func(i int) []string {
		o := orders[i]
		return []string{strconv.Itoa(o.ID), o.Date.Format(orderDateLayout), o.TotalAmount.StringFixed(2)}
	})
}

func writeItems(path string, items []model.OrderItem) error {
	return writeCSV(path, []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price_at_sale"}, len(items), func(i int) []string {
		it := items[i]
		return []string{
			strconv.Itoa(it.ID),
			strconv.Itoa(it.OrderID),
			strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity),
			it.UnitPriceAtSale.StringFixed(2),
		}
	})
}

// writeCSV writes one artifact: header row first, then n rows from row.
func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
