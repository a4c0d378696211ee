package generate

import (
	"testing"
	"time"

	"bobaseed/internal/model"
	"bobaseed/internal/plan"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "mango milk tea", UnitPrice: decimal.RequireFromString("5.80")},
		{ID: 2, Name: "lychee green tea", UnitPrice: decimal.RequireFromString("6.50")},
		{ID: 3, Name: "honey milk tea", UnitPrice: decimal.RequireFromString("6.75")},
	}
}

func quotaPlan(start time.Time, quotas ...int) *plan.Plan {
	p := &plan.Plan{}
	for i, q := range quotas {
		p.Days = append(p.Days, plan.Day{Date: start.AddDate(0, 0, i), Orders: q})
		p.TotalOrders += q
	}
	return p
}

func TestRun_OrderTotalsMatchLineTotals(t *testing.T) {
	p := quotaPlan(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 5, 5, 5)
	orders, items, err := New(42, testProducts()).Run(p)
	require.NoError(t, err)
	require.Len(t, orders, 15)

	sums := make(map[int]decimal.Decimal)
	for _, it := range items {
		line := it.UnitPriceAtSale.Mul(decimal.NewFromInt(int64(it.Quantity)))
		sums[it.OrderID] = sums[it.OrderID].Add(line)
	}
	for _, o := range orders {
		assert.True(t, o.TotalAmount.Equal(sums[o.ID]),
			"order %d: total %s != line sum %s", o.ID, o.TotalAmount, sums[o.ID])
	}
}

func TestRun_IDsAreGaplessFromOne(t *testing.T) {
	p := quotaPlan(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 4, 0, 7)
	orders, items, err := New(7, testProducts()).Run(p)
	require.NoError(t, err)

	for i, o := range orders {
		assert.Equal(t, i+1, o.ID)
	}
	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
	}
}

func TestRun_DrawBounds(t *testing.T) {
	p := quotaPlan(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 50)
	orders, items, err := New(1, testProducts()).Run(p)
	require.NoError(t, err)

	perOrder := make(map[int]int)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 5)
		perOrder[it.OrderID]++
	}
	for _, o := range orders {
		assert.GreaterOrEqual(t, o.Date.Hour(), 7)
		assert.LessOrEqual(t, o.Date.Hour(), 20)
		assert.Equal(t, 0, o.Date.Second())
		assert.GreaterOrEqual(t, perOrder[o.ID], 1)
		assert.LessOrEqual(t, perOrder[o.ID], 4)
		assert.Equal(t, 2025, o.Date.Year())
	}
}

func TestRun_SurgeDayStopsAtRevenueFloor(t *testing.T) {
	p := &plan.Plan{Days: []plan.Day{
		{Date: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), Surge: true},
	}}
	orders, _, err := New(42, testProducts()).Run(p)
	require.NoError(t, err)
	require.NotEmpty(t, orders)

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	last := orders[len(orders)-1].TotalAmount
	assert.True(t, total.GreaterThanOrEqual(plan.SurgeRevenueFloor),
		"surge day stopped below the floor: %s", total)
	assert.True(t, total.Sub(last).LessThan(plan.SurgeRevenueFloor),
		"surge day kept generating after reaching the floor")
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	p := quotaPlan(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 10, 10)

	orders1, items1, err := New(42, testProducts()).Run(p)
	require.NoError(t, err)
	orders2, items2, err := New(42, testProducts()).Run(p)
	require.NoError(t, err)

	require.Equal(t, orders1, orders2)
	require.Equal(t, items1, items2)

	orders3, _, err := New(43, testProducts()).Run(p)
	require.NoError(t, err)
	assert.NotEqual(t, orders1, orders3)
}

func TestRun_EmptyCatalog(t *testing.T) {
	p := quotaPlan(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 1)
	_, _, err := New(42, nil).Run(p)
	require.Error(t, err)
}
