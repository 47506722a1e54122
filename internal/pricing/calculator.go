package pricing

import (
	"time"

	"carrental-backend/internal/domain"
)

// Calculator resolves daily rates and rental totals. It has no side effects;
// both methods are pure functions over their inputs and the rate table.
type Calculator struct {
	table *Table
}

func NewCalculator(table *Table) *Calculator {
	return &Calculator{table: table}
}

// DailyRateCents returns the fixed daily rate for the given vehicle type and tier.
func (c *Calculator) DailyRateCents(vehicleType domain.VehicleType, tier domain.PricingTier) (int64, error) {
	return c.table.DailyRateCents(vehicleType, tier)
}

// TotalCents computes dailyRateCents times the number of billable days in
// [start, end). Any partial day rounds up, so a 25 hour rental bills 2 days.
func (c *Calculator) TotalCents(dailyRateCents int64, start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, domain.BadRequestError("start date must be before end date")
	}
	return dailyRateCents * BillableDays(start, end), nil
}

// BillableDays returns the number of calendar days spanned by [start, end),
// rounded up to the next whole day if any partial day remains. The caller
// guarantees start < end.
func BillableDays(start, end time.Time) int64 {
	d := end.Sub(start)
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
