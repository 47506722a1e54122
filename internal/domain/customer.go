package domain

import "time"

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

type Customer struct {
	ID            int32          `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	LicenseNumber string         `json:"license_number"`
	Phone         string         `json:"phone"`
	Status        CustomerStatus `json:"status"`
	CreatedOn     time.Time      `json:"created_on"`
	UpdatedOn     time.Time      `json:"updated_on"`
}
