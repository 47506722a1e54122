package inventory

import (
	"context"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

// Inventory is the sole mutation point for vehicle status in the booking
// path. Reserve and Release serialize per vehicle id, so two concurrent
// reservations of the same vehicle can never both observe AVAILABLE.
type Inventory struct {
	vehicleRepo repository.VehicleRepository

	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func New(vehicleRepo repository.VehicleRepository) *Inventory {
	return &Inventory{
		vehicleRepo: vehicleRepo,
		locks:       make(map[int32]*sync.Mutex),
	}
}

// vehicleLock returns the mutex guarding one vehicle id, creating it on
// first use. Locks are never removed; the fleet is small and bounded.
func (i *Inventory) vehicleLock(vehicleID int32) *sync.Mutex {
	i.mu.Lock()
	defer i.mu.Unlock()
	l, ok := i.locks[vehicleID]
	if !ok {
		l = &sync.Mutex{}
		i.locks[vehicleID] = l
	}
	return l
}

// Reserve atomically checks that the vehicle is AVAILABLE and flips it to
// RENTED. A vehicle in any other status fails with ErrVehicleNotAvailable
// and no mutation is observable to other callers.
func (i *Inventory) Reserve(ctx context.Context, vehicleID int32) (*domain.Vehicle, error) {
	l := i.vehicleLock(vehicleID)
	l.Lock()
	defer l.Unlock()

	vehicle, err := i.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.ErrVehicleNotAvailable
	}

	vehicle.Status = domain.VehicleStatusRented
	if err := i.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Debug("Vehicle reserved", "vehicle_id", vehicleID, "plate", vehicle.Plate)
	return vehicle, nil
}

// Release reverts RENTED back to AVAILABLE. It is idempotent: releasing an
// already-available vehicle is a no-op success. Vehicles in MAINTENANCE or
// OUT_OF_SERVICE are left unchanged; a rental ending never silently returns
// a vehicle pulled from the fleet.
func (i *Inventory) Release(ctx context.Context, vehicleID int32) (*domain.Vehicle, error) {
	l := i.vehicleLock(vehicleID)
	l.Lock()
	defer l.Unlock()

	vehicle, err := i.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusRented {
		return vehicle, nil
	}

	vehicle.Status = domain.VehicleStatusAvailable
	if err := i.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Debug("Vehicle released", "vehicle_id", vehicleID, "plate", vehicle.Plate)
	return vehicle, nil
}
