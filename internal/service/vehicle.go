package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	clock       Clock
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, clock Clock) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, clock: clock}
}

func (s *vehicleService) Add(ctx context.Context, brand, model string, year int32, plate string, vehicleType domain.VehicleType) (*domain.Vehicle, error) {
	if brand == "" || model == "" || plate == "" {
		return nil, domain.BadRequestError("brand, model and plate are required")
	}
	if !vehicleType.Valid() {
		return nil, domain.BadRequestError("unknown vehicle type: " + string(vehicleType))
	}
	if _, err := s.vehicleRepo.GetByPlate(ctx, plate); err == nil {
		return nil, domain.BadRequestError("plate already registered")
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	vehicle := &domain.Vehicle{
		Brand:     brand,
		Model:     model,
		Year:      year,
		Plate:     plate,
		Type:      vehicleType,
		Status:    domain.VehicleStatusAvailable,
		CreatedOn: s.clock.Now(),
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("Vehicle added", "vehicle_id", vehicle.ID, "plate", plate, "type", vehicleType)
	return vehicle, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.List(ctx, status, page, pageSize)
}

// SetMaintenance pulls an available vehicle from rotation. A rented vehicle
// cannot be flagged until its rental ends.
func (s *vehicleService) SetMaintenance(ctx context.Context, id int32, outOfService bool) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.Status == domain.VehicleStatusRented {
		return nil, domain.BadRequestError("vehicle is rented")
	}

	if outOfService {
		vehicle.Status = domain.VehicleStatusOutOfService
	} else {
		vehicle.Status = domain.VehicleStatusMaintenance
	}
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("Vehicle pulled from rotation", "vehicle_id", id, "status", vehicle.Status)
	return vehicle, nil
}

func (s *vehicleService) ReturnToService(ctx context.Context, id int32) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusMaintenance && vehicle.Status != domain.VehicleStatusOutOfService {
		return nil, domain.BadRequestError("vehicle is " + string(vehicle.Status))
	}

	vehicle.Status = domain.VehicleStatusAvailable
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("Vehicle returned to service", "vehicle_id", id)
	return vehicle, nil
}
