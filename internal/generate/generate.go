// Package generate synthesizes the planned orders and their line items.
package generate

import (
	"errors"
	"math/rand"
	"time"

	"bobaseed/internal/model"
	"bobaseed/internal/plan"

	"github.com/shopspring/decimal"
)

// Generator synthesizes orders for a plan. It owns the seeded random source
// and both sequential id counters, so a full run is exactly reproducible
// for a given seed, catalog, and date range. Not safe for concurrent use;
// the pipeline is single-threaded by design.
type Generator struct {
	rnd      *rand.Rand
	products []model.Product

	nextOrderID int
	nextItemID  int
}

// New returns a Generator with a private random stream seeded with seed and
// both counters at 1.
func New(seed int64, products []model.Product) *Generator {
	return &Generator{
		rnd:         rand.New(rand.NewSource(seed)),
		products:    products,
		nextOrderID: 1,
		nextItemID:  1,
	}
}

// Run synthesizes every order the plan calls for, in date order. Ordinary
// days produce exactly their quota; surge days loop until the day's
// accumulated order revenue reaches plan.SurgeRevenueFloor, stopping at the
// first order that reaches or exceeds it.
func (g *Generator) Run(p *plan.Plan) ([]model.Order, []model.OrderItem, error) {
	if len(g.products) == 0 {
		return nil, nil, errors.New("cannot synthesize orders from an empty catalog")
	}

	var orders []model.Order
	var items []model.OrderItem
	for _, day := range p.Days {
		if day.Surge {
			daily := decimal.Zero
			for daily.LessThan(plan.SurgeRevenueFloor) {
				o, lines := g.synthesize(day.Date)
				orders = append(orders, o)
				items = append(items, lines...)
				daily = daily.Add(o.TotalAmount)
			}
			continue
		}
		for i := 0; i < day.Orders; i++ {
			o, lines := g.synthesize(day.Date)
			orders = append(orders, o)
			items = append(items, lines...)
		}
	}
	return orders, items, nil
}

// synthesize draws one order on the given date. The draw order — hour,
// minute, line count, then per line product and quantity — is part of the
// reproducibility contract and must not be reordered.
func (g *Generator) synthesize(date time.Time) (model.Order, []model.OrderItem) {
	hour := 7 + g.rnd.Intn(14) // business hours, [7,20]
	minute := g.rnd.Intn(60)
	ts := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)

	order := model.Order{ID: g.nextOrderID, Date: ts}
	g.nextOrderID++

	numLines := 1 + g.rnd.Intn(4) // [1,4]
	total := decimal.Zero
	lines := make([]model.OrderItem, 0, numLines)
	for l := 0; l < numLines; l++ {
		// With replacement: a product may repeat within one order.
		p := g.products[g.rnd.Intn(len(g.products))]
		qty := 1 + g.rnd.Intn(5) // [1,5]
		priceAtSale := p.UnitPrice.Round(2)
		total = total.Add(priceAtSale.Mul(decimal.NewFromInt(int64(qty))))
		lines = append(lines, model.OrderItem{
			ID:              g.nextItemID,
			OrderID:         order.ID,
			ProductID:       p.ID,
			Quantity:        qty,
			UnitPriceAtSale: priceAtSale,
		})
		g.nextItemID++
	}
	order.TotalAmount = total
	return order, lines
}
