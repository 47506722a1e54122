package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// Repositories return domain.ErrNotFound-wrapped errors for missing rows so
// services never have to interpret driver-level errors.

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	// ListActiveEndingBefore returns ACTIVE rentals whose end date is strictly
	// before the cutoff. Used by the scheduled jobs, not by the booking path.
	ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
}
