package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[int32]domain.Vehicle
	nextID   int32
}

func NewVehicleRepository() repository.VehicleRepository {
	return &vehicleRepository{
		vehicles: make(map[int32]domain.Vehicle),
		nextID:   1,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vehicles {
		if strings.EqualFold(v.Plate, vehicle.Plate) {
			return domain.BadRequestError("plate already registered")
		}
	}
	vehicle.ID = r.nextID
	r.nextID++
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domain.NotFoundError("vehicle", id)
	}
	return &v, nil
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.vehicles {
		if strings.EqualFold(v.Plate, plate) {
			found := v
			return &found, nil
		}
	}
	return nil, domain.NotFoundError("vehicle", 0)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return domain.NotFoundError("vehicle", vehicle.ID)
	}
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []domain.Vehicle
	for _, v := range r.vehicles {
		if status != "" && string(v.Status) != status {
			continue
		}
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int32(len(all))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return nil, total, nil
	}
	start := (page - 1) * pageSize
	if start >= total {
		return nil, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}
