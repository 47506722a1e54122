package memory

import (
	"context"
	"strings"
	"sync"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type customerRepository struct {
	mu        sync.RWMutex
	customers map[int32]domain.Customer
	nextID    int32
}

func NewCustomerRepository() repository.CustomerRepository {
	return &customerRepository{
		customers: make(map[int32]domain.Customer),
		nextID:    1,
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if strings.EqualFold(c.Email, customer.Email) {
			return domain.BadRequestError("email already registered")
		}
		if c.LicenseNumber == customer.LicenseNumber {
			return domain.BadRequestError("license number already registered")
		}
	}
	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = *customer
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.NotFoundError("customer", id)
	}
	return &c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if strings.EqualFold(c.Email, email) {
			found := c
			return &found, nil
		}
	}
	return nil, domain.NotFoundError("customer", 0)
}

func (r *customerRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.LicenseNumber == licenseNumber {
			found := c
			return &found, nil
		}
	}
	return nil, domain.NotFoundError("customer", 0)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return domain.NotFoundError("customer", customer.ID)
	}
	r.customers[customer.ID] = *customer
	return nil
}
