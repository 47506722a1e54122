package pricing

import (
	"carrental-backend/internal/domain"
)

// rateSet holds the three fixed daily rates for one vehicle type, in cents.
type rateSet struct {
	promotional int64
	standard    int64
	premium     int64
}

// Table is the immutable daily-rate lookup built once at startup and passed
// by reference into the calculator. All amounts are fixed-point cents,
// pre-rounded (half-up) at construction, so downstream arithmetic is exact.
type Table struct {
	rates map[domain.VehicleType]rateSet
}

func NewTable() *Table {
	return &Table{
		rates: map[domain.VehicleType]rateSet{
			domain.VehicleTypePickup: {
				promotional: 7200, // 72.00
				standard:    8000, // 80.00
				premium:     9200, // 92.00
			},
			domain.VehicleTypeSUV: {
				promotional: 6750, // 67.50
				standard:    7500, // 75.00
				premium:     8600, // 86.00
			},
			domain.VehicleTypeSedan: {
				promotional: 3600, // 36.00
				standard:    4000, // 40.00
				premium:     4600, // 46.00
			},
			domain.VehicleTypeHatchback: {
				promotional: 3150, // 31.50
				standard:    3500, // 35.00
				premium:     4000, // 40.00
			},
		},
	}
}

// DailyRateCents resolves the fixed daily rate for a vehicle type and tier.
func (t *Table) DailyRateCents(vehicleType domain.VehicleType, tier domain.PricingTier) (int64, error) {
	rates, ok := t.rates[vehicleType]
	if !ok {
		return 0, domain.BadRequestError("unknown vehicle type: " + string(vehicleType))
	}
	switch tier {
	case domain.PricingTierPromotional:
		return rates.promotional, nil
	case domain.PricingTierStandard:
		return rates.standard, nil
	case domain.PricingTierPremium:
		return rates.premium, nil
	default:
		return 0, domain.BadRequestError("unknown pricing tier: " + string(tier))
	}
}
