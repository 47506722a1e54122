package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// Clock is the injectable time source used for entity timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// VehicleInventory guards the vehicle availability invariant. Reserve and
// Release are the only mutations of vehicle status in the booking path.
type VehicleInventory interface {
	Reserve(ctx context.Context, vehicleID int32) (*domain.Vehicle, error)
	Release(ctx context.Context, vehicleID int32) (*domain.Vehicle, error)
}

// Notifier delivers fire-and-forget booking messages. Failures are logged,
// never surfaced to the booking caller.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, email, name, plate string, start, end time.Time, totalPriceCents int64) error
	SendBookingCancellation(ctx context.Context, email, name, plate string) error
	SendReturnReminder(ctx context.Context, email, name, plate string, due time.Time) error
}

type RentalService interface {
	Create(ctx context.Context, customerID, vehicleID int32, start, end time.Time, tier domain.PricingTier) (*domain.Rental, error)
	Update(ctx context.Context, rentalID int32, start, end time.Time, tier domain.PricingTier) (*domain.Rental, error)
	Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Complete(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Delete(ctx context.Context, rentalID int32) error
	GetByID(ctx context.Context, rentalID int32) (*domain.Rental, error)
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type CustomerService interface {
	Register(ctx context.Context, name, email, licenseNumber, phone string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateContact(ctx context.Context, id int32, name, email, phone string) (*domain.Customer, error)
	Deactivate(ctx context.Context, id int32) (*domain.Customer, error)
}

type VehicleService interface {
	Add(ctx context.Context, brand, model string, year int32, plate string, vehicleType domain.VehicleType) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
	SetMaintenance(ctx context.Context, id int32, outOfService bool) (*domain.Vehicle, error)
	ReturnToService(ctx context.Context, id int32) (*domain.Vehicle, error)
}
