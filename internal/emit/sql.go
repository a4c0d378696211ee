package emit

import (
	"fmt"
	"os"
	"strings"

	"bobaseed/internal/config"

	"github.com/google/uuid"
)

// WriteLoadScript writes the one-shot psql script that ingests the stage
// artifacts. The whole load runs in a single transaction with
// synchronous_commit off: unlogged staging tables are created, bulk-loaded
// via \copy, merged into the permanent tables (upsert for products, no-op on
// conflict for recipe lines, per-day random cashier assignment for orders),
// then dropped, and the id sequences are resynchronized to the loaded
// maxima.
func WriteLoadScript(path string, stages config.StagePaths, runID uuid.UUID) error {
	var b strings.Builder

	fmt.Fprintf(&b, "-- bobaseed bulk load script (run %s)\n", runID)
	b.WriteString("-- Apply with: psql \"$DATABASE_URL\" -f this_file\n\n")

	b.WriteString("BEGIN;\n")
	b.WriteString("SET synchronous_commit = off;\n\n")

	b.WriteString("CREATE UNLOGGED TABLE IF NOT EXISTS products_stage (product_id integer, product_name text, unit_price numeric(10,2));\n")
	b.WriteString("CREATE UNLOGGED TABLE IF NOT EXISTS orders_stage (order_id integer, order_date timestamp, total_amount numeric(10,2));\n")
	b.WriteString("CREATE UNLOGGED TABLE IF NOT EXISTS order_items_stage (order_item_id integer, order_id integer, product_id integer, quantity integer, unit_price_at_sale numeric(10,2));\n")
	b.WriteString("CREATE UNLOGGED TABLE IF NOT EXISTS product_recipe_stage (product_id integer, ingredient_name text, quantity_per_unit numeric(10,1));\n\n")

	fmt.Fprintf(&b, "\\copy products_stage (product_id, product_name, unit_price) FROM '%s' CSV HEADER;\n", stages.Products)
	fmt.Fprintf(&b, "\\copy orders_stage (order_id, order_date, total_amount) FROM '%s' CSV HEADER;\n", stages.Orders)
	fmt.Fprintf(&b, "\\copy order_items_stage (order_item_id, order_id, product_id, quantity, unit_price_at_sale) FROM '%s' CSV HEADER;\n", stages.OrderItems)
	fmt.Fprintf(&b, "\\copy product_recipe_stage (product_id, ingredient_name, quantity_per_unit) FROM '%s' CSV HEADER;\n\n", stages.ProductRecipe)

	b.WriteString("INSERT INTO products (product_id, product_name, unit_price)\n")
	b.WriteString("SELECT product_id, product_name, unit_price FROM products_stage\n")
	b.WriteString("ON CONFLICT (product_id) DO UPDATE SET product_name = EXCLUDED.product_name, unit_price = EXCLUDED.unit_price;\n\n")

	// Recipe ingredients are matched to inventory by name, not id.
	b.WriteString("INSERT INTO product_recipe (product_id, ingredient_id, quantity_per_unit)\n")
	b.WriteString("SELECT prs.product_id, i.ingredient_id, prs.quantity_per_unit\n")
	b.WriteString("FROM product_recipe_stage prs\n")
	b.WriteString("JOIN inventory i ON lower(i.ingredient_name) = lower(prs.ingredient_name)\n")
	b.WriteString("ON CONFLICT (product_id, ingredient_id) DO NOTHING;\n\n")

	// Each day's orders all go to the same randomly chosen cashier: one
	// winner per day out of every role='Cashier' employee.
	b.WriteString("INSERT INTO orders (order_id, order_date, total_amount, employee_id)\n")
	b.WriteString("WITH days AS (\n")
	b.WriteString("    SELECT DISTINCT order_date::date AS day FROM orders_stage\n")
	b.WriteString("),\n")
	b.WriteString("cashiers AS (\n")
	b.WriteString("    SELECT employee_id FROM employees WHERE role = 'Cashier'\n")
	b.WriteString("),\n")
	b.WriteString("day_cashier AS (\n")
	b.WriteString("    SELECT d.day, c.employee_id,\n")
	b.WriteString("           ROW_NUMBER() OVER (PARTITION BY d.day ORDER BY random()) AS rn\n")
	b.WriteString("    FROM days d\n")
	b.WriteString("    CROSS JOIN cashiers c\n")
	b.WriteString(")\n")
	b.WriteString("SELECT os.order_id, os.order_date, os.total_amount, dc.employee_id\n")
	b.WriteString("FROM orders_stage os\n")
	b.WriteString("JOIN day_cashier dc\n")
	b.WriteString("  ON os.order_date::date = dc.day\n")
	b.WriteString("WHERE dc.rn = 1;\n\n")

	b.WriteString("INSERT INTO order_items (order_item_id, order_id, product_id, quantity, unit_price_at_sale)\n")
	b.WriteString("SELECT order_item_id, order_id, product_id, quantity, unit_price_at_sale FROM order_items_stage;\n\n")

	b.WriteString("DROP TABLE products_stage;\n")
	b.WriteString("DROP TABLE orders_stage;\n")
	b.WriteString("DROP TABLE order_items_stage;\n")
	b.WriteString("DROP TABLE product_recipe_stage;\n\n")

	b.WriteString("SELECT setval('products_product_id_seq', (SELECT COALESCE(MAX(product_id),0) FROM products));\n")
	b.WriteString("SELECT setval('orders_order_id_seq', (SELECT COALESCE(MAX(order_id),0) FROM orders));\n")
	b.WriteString("SELECT setval('order_items_order_item_id_seq', (SELECT COALESCE(MAX(order_item_id),0) FROM order_items));\n")
	b.WriteString("COMMIT;\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
