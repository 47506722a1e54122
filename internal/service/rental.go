package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	inventory    VehicleInventory
	calc         *pricing.Calculator
	notifier     Notifier
	clock        Clock
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	inventory VehicleInventory,
	calc *pricing.Calculator,
	notifier Notifier,
	clock Clock,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		inventory:    inventory,
		calc:         calc,
		notifier:     notifier,
		clock:        clock,
	}
}

// Create books a vehicle for a customer. Validation happens before any
// mutation; once the vehicle is reserved, a failed rental insert is
// compensated with a release so no vehicle stays RENTED without a rental.
func (s *rentalService) Create(ctx context.Context, customerID, vehicleID int32, start, end time.Time, tier domain.PricingTier) (*domain.Rental, error) {
	if !end.After(start) {
		return nil, domain.BadRequestError("start date must be before end date")
	}
	if !tier.Valid() {
		return nil, domain.BadRequestError("unknown pricing tier: " + string(tier))
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	vehicle, err := s.inventory.Reserve(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	dailyRate, err := s.calc.DailyRateCents(vehicle.Type, tier)
	if err != nil {
		_, _ = s.inventory.Release(ctx, vehicleID)
		return nil, err
	}
	total, err := s.calc.TotalCents(dailyRate, start, end)
	if err != nil {
		_, _ = s.inventory.Release(ctx, vehicleID)
		return nil, err
	}

	now := s.clock.Now()
	rental := &domain.Rental{
		Code:            uuid.NewString(),
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		Status:          domain.RentalStatusActive,
		StartDate:       start,
		EndDate:         end,
		Tier:            tier,
		DailyRateCents:  dailyRate,
		TotalPriceCents: total,
		CreatedOn:       now,
		UpdatedOn:       now,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		_, _ = s.inventory.Release(ctx, vehicleID)
		return nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "customer_id", customerID, "vehicle_id", vehicleID, "total_price_cents", total)

	if s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, customer.Email, customer.Name, vehicle.Plate, start, end, total); err != nil {
			logger.Warn("Failed to send booking confirmation", "rental_id", rental.ID, "error", err)
		}
	}

	return rental, nil
}

// Update changes a rental's dates and tier and recomputes the price. The
// vehicle reservation is not touched; only create, cancel and delete affect
// inventory.
func (s *rentalService) Update(ctx context.Context, rentalID int32, start, end time.Time, tier domain.PricingTier) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusPending && rental.Status != domain.RentalStatusActive {
		return nil, domain.BadRequestError("rental is " + string(rental.Status))
	}
	if !end.After(start) {
		return nil, domain.BadRequestError("start date must be before end date")
	}
	if tier == "" {
		tier = rental.Tier
	}
	if !tier.Valid() {
		return nil, domain.BadRequestError("unknown pricing tier: " + string(tier))
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, err
	}
	dailyRate, err := s.calc.DailyRateCents(vehicle.Type, tier)
	if err != nil {
		return nil, err
	}
	total, err := s.calc.TotalCents(dailyRate, start, end)
	if err != nil {
		return nil, err
	}

	rental.StartDate = start
	rental.EndDate = end
	rental.Tier = tier
	rental.DailyRateCents = dailyRate
	rental.TotalPriceCents = total
	rental.UpdatedOn = s.clock.Now()

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental updated", "rental_id", rental.ID, "total_price_cents", total)
	return rental, nil
}

// Cancel releases the vehicle and voids the charge. Zeroing the total on
// cancellation is deliberate; there is no partial-refund or fee concept.
// Only PENDING and ACTIVE rentals hold the reservation; a terminal rental
// must not release a vehicle a later booking may hold.
func (s *rentalService) Cancel(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusPending && rental.Status != domain.RentalStatusActive {
		return nil, domain.BadRequestError("rental is " + string(rental.Status))
	}

	vehicle, err := s.inventory.Release(ctx, rental.VehicleID)
	if err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusCancelled
	rental.TotalPriceCents = 0
	rental.UpdatedOn = s.clock.Now()
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental cancelled", "rental_id", rental.ID, "vehicle_id", rental.VehicleID)

	if s.notifier != nil {
		if customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID); err == nil {
			if err := s.notifier.SendBookingCancellation(ctx, customer.Email, customer.Name, vehicle.Plate); err != nil {
				logger.Warn("Failed to send cancellation notice", "rental_id", rental.ID, "error", err)
			}
		}
	}

	return rental, nil
}

// Complete closes out an active rental at return time and frees the vehicle.
func (s *rentalService) Complete(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.BadRequestError("rental is " + string(rental.Status))
	}

	if _, err := s.inventory.Release(ctx, rental.VehicleID); err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusCompleted
	rental.UpdatedOn = s.clock.Now()
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental completed", "rental_id", rental.ID, "vehicle_id", rental.VehicleID)
	return rental, nil
}

// Delete removes the rental record permanently, releasing the vehicle first
// if the rental still holds the reservation. Deleting a terminal rental
// leaves the vehicle alone; its reservation already ended or moved on.
func (s *rentalService) Delete(ctx context.Context, rentalID int32) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}

	if rental.Status == domain.RentalStatusPending || rental.Status == domain.RentalStatusActive {
		if _, err := s.inventory.Release(ctx, rental.VehicleID); err != nil {
			return err
		}
	}

	if err := s.rentalRepo.Delete(ctx, rental.ID); err != nil {
		return err
	}

	logger.Info("Rental deleted", "rental_id", rental.ID, "vehicle_id", rental.VehicleID)
	return nil
}

func (s *rentalService) GetByID(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.List(ctx, customerID, status, page, pageSize)
}
