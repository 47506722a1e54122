package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRentalFixture() (*MockRentalRepo, *MockCustomerRepo, *MockVehicleRepo, *MockInventory, *MockNotifier, RentalService) {
	rentalRepo := new(MockRentalRepo)
	customerRepo := new(MockCustomerRepo)
	vehicleRepo := new(MockVehicleRepo)
	inv := new(MockInventory)
	notifier := new(MockNotifier)
	clock := fixedClock{now: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}

	svc := NewRentalService(rentalRepo, customerRepo, vehicleRepo, inv, pricing.NewCalculator(pricing.NewTable()), notifier, clock)
	return rentalRepo, customerRepo, vehicleRepo, inv, notifier, svc
}

func TestRentalService_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)

	customer := &domain.Customer{ID: 1, Name: "Ana", Email: "ana@test.com", Status: domain.CustomerStatusActive}
	vehicle := &domain.Vehicle{ID: 2, Plate: "XYZ-9876", Type: domain.VehicleTypeSedan, Status: domain.VehicleStatusAvailable}
	rented := &domain.Vehicle{ID: 2, Plate: "XYZ-9876", Type: domain.VehicleTypeSedan, Status: domain.VehicleStatusRented}

	t.Run("Success", func(t *testing.T) {
		rentalRepo, customerRepo, vehicleRepo, inv, notifier, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		inv.On("Reserve", ctx, int32(2)).Return(rented, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		notifier.On("SendBookingConfirmation", ctx, "ana@test.com", "Ana", "XYZ-9876", start, end, int64(8000)).Return(nil)

		rt, err := svc.Create(ctx, 1, 2, start, end, domain.PricingTierStandard)
		assert.NoError(t, err)
		assert.NotNil(t, rt)
		assert.Equal(t, domain.RentalStatusActive, rt.Status)
		assert.Equal(t, int64(4000), rt.DailyRateCents)
		assert.Equal(t, int64(8000), rt.TotalPriceCents) // 2 days * 40.00
		assert.NotEmpty(t, rt.Code)
		assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), rt.CreatedOn)
		notifier.AssertExpectations(t)
	})

	t.Run("Start after end performs no mutation", func(t *testing.T) {
		rentalRepo, customerRepo, _, inv, _, svc := newRentalFixture()

		rt, err := svc.Create(ctx, 1, 2, end, start, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
		customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		inv.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Start equal to end fails", func(t *testing.T) {
		_, _, _, _, _, svc := newRentalFixture()

		rt, err := svc.Create(ctx, 1, 2, start, start, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("Missing pricing tier fails", func(t *testing.T) {
		_, _, _, inv, _, svc := newRentalFixture()

		rt, err := svc.Create(ctx, 1, 2, start, end, "")
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
		inv.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	})

	t.Run("Customer not found", func(t *testing.T) {
		_, customerRepo, _, inv, _, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, int32(1)).Return(nil, domain.NotFoundError("customer", 1))

		rt, err := svc.Create(ctx, 1, 2, start, end, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsNotFound(err))
		inv.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle not found", func(t *testing.T) {
		_, customerRepo, vehicleRepo, inv, _, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(nil, domain.NotFoundError("vehicle", 2))

		rt, err := svc.Create(ctx, 1, 2, start, end, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsNotFound(err))
		inv.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle not available", func(t *testing.T) {
		rentalRepo, customerRepo, vehicleRepo, inv, _, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		inv.On("Reserve", ctx, int32(2)).Return(nil, domain.ErrVehicleNotAvailable)

		rt, err := svc.Create(ctx, 1, 2, start, end, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsVehicleNotAvailable(err))
		assert.True(t, domain.IsBadRequest(err))
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed insert releases the vehicle", func(t *testing.T) {
		rentalRepo, customerRepo, vehicleRepo, inv, _, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		inv.On("Reserve", ctx, int32(2)).Return(rented, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(errors.New("connection reset"))
		inv.On("Release", ctx, int32(2)).Return(vehicle, nil)

		rt, err := svc.Create(ctx, 1, 2, start, end, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.Error(t, err)
		inv.AssertCalled(t, "Release", ctx, int32(2))
	})

	t.Run("Notifier failure does not fail the booking", func(t *testing.T) {
		rentalRepo, customerRepo, vehicleRepo, inv, notifier, svc := newRentalFixture()
		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		inv.On("Reserve", ctx, int32(2)).Return(rented, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		notifier.On("SendBookingConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sendgrid down"))

		rt, err := svc.Create(ctx, 1, 2, start, end, domain.PricingTierStandard)
		assert.NoError(t, err)
		assert.NotNil(t, rt)
	})
}

func TestRentalService_Update(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)
	vehicle := &domain.Vehicle{ID: 2, Type: domain.VehicleTypeSedan, Status: domain.VehicleStatusRented}

	active := func() *domain.Rental {
		return &domain.Rental{
			ID:              7,
			CustomerID:      1,
			VehicleID:       2,
			Status:          domain.RentalStatusActive,
			StartDate:       start,
			EndDate:         end,
			Tier:            domain.PricingTierStandard,
			DailyRateCents:  4000,
			TotalPriceCents: 8000,
		}
	}

	t.Run("Recomputes price for new dates and tier", func(t *testing.T) {
		rentalRepo, _, vehicleRepo, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(active(), nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		newEnd := start.Add(4 * 24 * time.Hour)
		rt, err := svc.Update(ctx, 7, start, newEnd, domain.PricingTierPremium)
		assert.NoError(t, err)
		assert.Equal(t, int64(4600), rt.DailyRateCents)
		assert.Equal(t, int64(18400), rt.TotalPriceCents) // 4 days * 46.00
		assert.Equal(t, domain.PricingTierPremium, rt.Tier)
		// Inventory is untouched by updates.
		inv.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
		inv.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("Empty tier keeps the existing one", func(t *testing.T) {
		rentalRepo, _, vehicleRepo, _, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(active(), nil)
		vehicleRepo.On("GetByID", ctx, int32(2)).Return(vehicle, nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rt, err := svc.Update(ctx, 7, start, end.Add(24*time.Hour), "")
		assert.NoError(t, err)
		assert.Equal(t, domain.PricingTierStandard, rt.Tier)
		assert.Equal(t, int64(12000), rt.TotalPriceCents) // 3 days * 40.00
	})

	t.Run("Invalid dates perform no persist", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(active(), nil)

		rt, err := svc.Update(ctx, 7, end, start, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
		rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Cancelled rental cannot be updated", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newRentalFixture()
		cancelled := active()
		cancelled.Status = domain.RentalStatusCancelled
		rentalRepo.On("GetByID", ctx, int32(7)).Return(cancelled, nil)

		rt, err := svc.Update(ctx, 7, start, end, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
	})

	t.Run("Rental not found", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(nil, domain.NotFoundError("rental", 7))

		rt, err := svc.Update(ctx, 7, start, end, domain.PricingTierStandard)
		assert.Nil(t, rt)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRentalService_Cancel(t *testing.T) {
	ctx := context.Background()
	vehicle := &domain.Vehicle{ID: 2, Plate: "XYZ-9876", Status: domain.VehicleStatusAvailable}
	customer := &domain.Customer{ID: 1, Name: "Ana", Email: "ana@test.com"}

	t.Run("Zeroes price and frees vehicle", func(t *testing.T) {
		rentalRepo, customerRepo, _, inv, notifier, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{
			ID: 7, CustomerID: 1, VehicleID: 2,
			Status:          domain.RentalStatusActive,
			TotalPriceCents: 8000,
		}, nil)
		inv.On("Release", ctx, int32(2)).Return(vehicle, nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		customerRepo.On("GetByID", ctx, int32(1)).Return(customer, nil)
		notifier.On("SendBookingCancellation", ctx, "ana@test.com", "Ana", "XYZ-9876").Return(nil)

		rt, err := svc.Cancel(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCancelled, rt.Status)
		assert.Equal(t, int64(0), rt.TotalPriceCents)
		inv.AssertCalled(t, "Release", ctx, int32(2))
	})

	t.Run("Cancelled rental cannot cancel again", func(t *testing.T) {
		rentalRepo, _, _, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{
			ID: 7, VehicleID: 2, Status: domain.RentalStatusCancelled,
		}, nil)

		rt, err := svc.Cancel(ctx, 7)
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
		// The vehicle may be held by a newer rental; never release it here.
		inv.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("Completed rental cannot cancel", func(t *testing.T) {
		rentalRepo, _, _, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{
			ID: 7, VehicleID: 2, Status: domain.RentalStatusCompleted, TotalPriceCents: 8000,
		}, nil)

		rt, err := svc.Cancel(ctx, 7)
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
		inv.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
		rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Rental not found", func(t *testing.T) {
		rentalRepo, _, _, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(nil, domain.NotFoundError("rental", 7))

		rt, err := svc.Cancel(ctx, 7)
		assert.Nil(t, rt)
		assert.True(t, domain.IsNotFound(err))
		inv.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}

func TestRentalService_Complete(t *testing.T) {
	ctx := context.Background()
	vehicle := &domain.Vehicle{ID: 2, Status: domain.VehicleStatusAvailable}

	t.Run("Active rental completes and frees vehicle", func(t *testing.T) {
		rentalRepo, _, _, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{
			ID: 7, VehicleID: 2, Status: domain.RentalStatusActive, TotalPriceCents: 8000,
		}, nil)
		inv.On("Release", ctx, int32(2)).Return(vehicle, nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rt, err := svc.Complete(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCompleted, rt.Status)
		// Completion keeps the charge.
		assert.Equal(t, int64(8000), rt.TotalPriceCents)
	})

	t.Run("Cancelled rental cannot complete", func(t *testing.T) {
		rentalRepo, _, _, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{
			ID: 7, VehicleID: 2, Status: domain.RentalStatusCancelled,
		}, nil)

		rt, err := svc.Complete(ctx, 7)
		assert.Nil(t, rt)
		assert.True(t, domain.IsBadRequest(err))
		inv.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}

func TestRentalService_Delete(t *testing.T) {
	ctx := context.Background()
	vehicle := &domain.Vehicle{ID: 2, Status: domain.VehicleStatusAvailable}

	t.Run("Releases vehicle and removes record", func(t *testing.T) {
		rentalRepo, _, _, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{ID: 7, VehicleID: 2, Status: domain.RentalStatusActive}, nil)
		inv.On("Release", ctx, int32(2)).Return(vehicle, nil)
		rentalRepo.On("Delete", ctx, int32(7)).Return(nil)

		err := svc.Delete(ctx, 7)
		assert.NoError(t, err)
		rentalRepo.AssertCalled(t, "Delete", ctx, int32(7))
	})

	t.Run("Terminal rental deletes without releasing", func(t *testing.T) {
		rentalRepo, _, _, inv, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(&domain.Rental{ID: 7, VehicleID: 2, Status: domain.RentalStatusCancelled}, nil)
		rentalRepo.On("Delete", ctx, int32(7)).Return(nil)

		err := svc.Delete(ctx, 7)
		assert.NoError(t, err)
		inv.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
		rentalRepo.AssertCalled(t, "Delete", ctx, int32(7))
	})

	t.Run("Rental not found", func(t *testing.T) {
		rentalRepo, _, _, _, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, int32(7)).Return(nil, domain.NotFoundError("rental", 7))

		err := svc.Delete(ctx, 7)
		assert.True(t, domain.IsNotFound(err))
	})
}
