package model

import (
	"github.com/shopspring/decimal"
)

// Product is one sellable catalog item. Products are loaded once from the
// source catalog and are immutable for the rest of the run; ID is the
// 1-based input row position, which is the id assignment policy rather
// than an accident of iteration order.
type Product struct {
	ID        int
	Name      string
	UnitPrice decimal.Decimal // decimal(10,2)
}
