// Package catalog loads and normalizes the source product catalog and
// derives the product→ingredient recipe lines from its tag columns.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"bobaseed/internal/dataerr"
	"bobaseed/internal/model"

	"github.com/shopspring/decimal"
)

// tagPair carries the raw fruit/tea cells for one product, in catalog order.
// Normalization happens in Recipes, not here.
type tagPair struct {
	fruit string
	tea   string
}

// Catalog is the loaded, normalized product catalog. Products keep their
// input row order; ids are the 1-based row positions.
type Catalog struct {
	Products []model.Product

	tags []tagPair
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a CSV catalog. The name column may be headed product_name or
// name, the price column unit_price or price; fruit and tea columns are
// optional. Prices may carry a leading currency symbol.
func Parse(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, dataerr.Newf("catalog has no header row: %v", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	nameCol, ok := columnIndex(cols, "product_name", "name")
	if !ok {
		return nil, dataerr.New("catalog is missing a product_name/name column")
	}
	priceCol, ok := columnIndex(cols, "unit_price", "price")
	if !ok {
		return nil, dataerr.New("catalog is missing a unit_price/price column")
	}
	fruitCol, hasFruit := cols["fruit"]
	teaCol, hasTea := cols["tea"]

	cat := &Catalog{}
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, dataerr.Newf("catalog row %d: %v", row, err)
		}

		price, err := parsePrice(rec[priceCol])
		if err != nil {
			return nil, dataerr.Newf("catalog row %d: unparsable price %q", row, rec[priceCol])
		}
		cat.Products = append(cat.Products, model.Product{
			ID:        row,
			Name:      strings.TrimSpace(rec[nameCol]),
			UnitPrice: price,
		})

		var tags tagPair
		if hasFruit {
			tags.fruit = rec[fruitCol]
		}
		if hasTea {
			tags.tea = rec[teaCol]
		}
		cat.tags = append(cat.tags, tags)
		row++
	}
	return cat, nil
}

// MeanUnitPrice returns the arithmetic mean of all catalog prices, or zero
// for an empty catalog.
func (c *Catalog) MeanUnitPrice() decimal.Decimal {
	if len(c.Products) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range c.Products {
		sum = sum.Add(p.UnitPrice)
	}
	return sum.Div(decimal.NewFromInt(int64(len(c.Products))))
}

// parsePrice strips an optional currency symbol and parses the remainder as
// a decimal.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "$", ""))
	return decimal.NewFromString(s)
}

func columnIndex(cols map[string]int, names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i, true
		}
	}
	return 0, false
}
