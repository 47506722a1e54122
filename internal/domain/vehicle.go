package domain

import "time"

type VehicleType string

const (
	VehicleTypePickup    VehicleType = "PICKUP"
	VehicleTypeSUV       VehicleType = "SUV"
	VehicleTypeSedan     VehicleType = "SEDAN"
	VehicleTypeHatchback VehicleType = "HATCHBACK"
)

// Valid reports whether t is one of the known vehicle types.
func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypePickup, VehicleTypeSUV, VehicleTypeSedan, VehicleTypeHatchback:
		return true
	}
	return false
}

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "AVAILABLE"
	VehicleStatusRented       VehicleStatus = "RENTED"
	VehicleStatusMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

type Vehicle struct {
	ID        int32         `json:"id"`
	Brand     string        `json:"brand"`
	Model     string        `json:"model"`
	Year      int32         `json:"year"`
	Plate     string        `json:"plate"`
	Type      VehicleType   `json:"type"`
	Status    VehicleStatus `json:"status"`
	CreatedOn time.Time     `json:"created_on"`
}
