package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentalRepository struct {
	mu      sync.RWMutex
	rentals map[int32]domain.Rental
	nextID  int32
}

func NewRentalRepository() repository.RentalRepository {
	return &rentalRepository{
		rentals: make(map[int32]domain.Rental),
		nextID:  1,
	}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rental.ID = r.nextID
	r.nextID++
	r.rentals[rental.ID] = *rental
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.rentals[id]
	if !ok {
		return nil, domain.NotFoundError("rental", id)
	}
	return &rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rentals[rental.ID]; !ok {
		return domain.NotFoundError("rental", rental.ID)
	}
	r.rentals[rental.ID] = *rental
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rentals[id]; !ok {
		return domain.NotFoundError("rental", id)
	}
	delete(r.rentals, id)
	return nil
}

func (r *rentalRepository) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []domain.Rental
	for _, rt := range r.rentals {
		if customerID != 0 && rt.CustomerID != customerID {
			continue
		}
		if status != "" && string(rt.Status) != status {
			continue
		}
		all = append(all, rt)
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

func (r *rentalRepository) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []domain.Rental
	for _, rt := range r.rentals {
		if rt.Status == domain.RentalStatusActive && rt.EndDate.Before(cutoff) {
			due = append(due, rt)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	return due, nil
}
