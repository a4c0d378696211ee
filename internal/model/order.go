package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one synthesized sale. TotalAmount is the exact decimal sum of the
// order's line totals.
type Order struct {
	ID          int
	Date        time.Time
	TotalAmount decimal.Decimal // decimal(10,2)
}

// OrderItem is one line of an order. UnitPriceAtSale is a point-in-time
// snapshot of the catalog price, deliberately decoupled from later price
// changes.
type OrderItem struct {
	ID              int
	OrderID         int
	ProductID       int
	Quantity        int // 1..5
	UnitPriceAtSale decimal.Decimal // decimal(10,2)
}
