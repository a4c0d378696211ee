// Package plan computes how many orders to generate and how they are spread
// over the configured date range.
package plan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Line-count and quantity draws are uniform over [1,4] and [1,5]; the
// planner sizes the run from their midpoints.
var (
	expectedItemsPerOrder = decimal.NewFromFloat((1 + 4) / 2.0)
	expectedQtyPerLine    = decimal.NewFromFloat((1 + 5) / 2.0)
)

// SurgeRevenueFloor is the per-day revenue a surge day must reach before
// generation for that day stops.
var SurgeRevenueFloor = decimal.NewFromInt(5000)

// Day is one calendar day's generation assignment.
type Day struct {
	Date   time.Time
	Orders int // quota; ignored when Surge is set
	Surge  bool
}

// Plan is the full volume allocation for a run.
type Plan struct {
	Days               []Day
	TotalOrders        int
	OrdersPerDay       int
	Remainder          int
	ExpectedOrderValue decimal.Decimal
}

// Build sizes the run from the revenue target and spreads it across the
// inclusive [start, end] range. The first Remainder days each receive one
// extra order; Nov 30 and Dec 25 (any year) are flagged as surge days,
// whose volume is driven by SurgeRevenueFloor instead of the quota.
func Build(target decimal.Decimal, start, end time.Time, meanUnitPrice decimal.Decimal) (*Plan, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	days := int(end.Sub(start).Hours()/24) + 1

	eov := meanUnitPrice.Mul(expectedItemsPerOrder).Mul(expectedQtyPerLine)
	if eov.Sign() <= 0 {
		return nil, fmt.Errorf("expected order value %s is not positive (mean unit price %s)", eov, meanUnitPrice)
	}

	totalOrders := int(target.Div(eov).IntPart())
	if totalOrders < 1 {
		totalOrders = 1
	}

	p := &Plan{
		TotalOrders:        totalOrders,
		OrdersPerDay:       totalOrders / days,
		Remainder:          totalOrders % days,
		ExpectedOrderValue: eov,
	}
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		quota := p.OrdersPerDay
		if d < p.Remainder {
			quota++
		}
		p.Days = append(p.Days, Day{
			Date:   date,
			Orders: quota,
			Surge:  isSurgeDate(date),
		})
	}
	return p, nil
}

// isSurgeDate matches the two fixed surge dates by month and day,
// regardless of year.
func isSurgeDate(t time.Time) bool {
	m, d := t.Month(), t.Day()
	return (m == time.November && d == 30) || (m == time.December && d == 25)
}
