package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCancelled RentalStatus = "CANCELLED"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

type PricingTier string

const (
	PricingTierPromotional PricingTier = "PROMOTIONAL"
	PricingTierStandard    PricingTier = "STANDARD"
	PricingTierPremium     PricingTier = "PREMIUM"
)

// Valid reports whether p is one of the known pricing tiers.
func (p PricingTier) Valid() bool {
	switch p {
	case PricingTierPromotional, PricingTierStandard, PricingTierPremium:
		return true
	}
	return false
}

// Rental references its customer and vehicle by id only; handlers and jobs
// resolve them through the store interfaces.
type Rental struct {
	ID              int32        `json:"id"`
	Code            string       `json:"code"`
	CustomerID      int32        `json:"customer_id"`
	VehicleID       int32        `json:"vehicle_id"`
	Status          RentalStatus `json:"status"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	Tier            PricingTier  `json:"tier"`
	DailyRateCents  int64        `json:"daily_rate_cents"`
	TotalPriceCents int64        `json:"total_price_cents"`
	CreatedOn       time.Time    `json:"created_on"`
	UpdatedOn       time.Time    `json:"updated_on"`
}
