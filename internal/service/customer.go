package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	clock        Clock
}

func NewCustomerService(customerRepo repository.CustomerRepository, clock Clock) CustomerService {
	return &customerService{customerRepo: customerRepo, clock: clock}
}

func (s *customerService) Register(ctx context.Context, name, email, licenseNumber, phone string) (*domain.Customer, error) {
	if name == "" || email == "" || licenseNumber == "" {
		return nil, domain.BadRequestError("name, email and license number are required")
	}
	if _, err := s.customerRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.BadRequestError("email already registered")
	} else if !domain.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.customerRepo.GetByLicenseNumber(ctx, licenseNumber); err == nil {
		return nil, domain.BadRequestError("license number already registered")
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	now := s.clock.Now()
	customer := &domain.Customer{
		Name:          name,
		Email:         email,
		LicenseNumber: licenseNumber,
		Phone:         phone,
		Status:        domain.CustomerStatusActive,
		CreatedOn:     now,
		UpdatedOn:     now,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	logger.Info("Customer registered", "customer_id", customer.ID, "email", email)
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// UpdateContact mutates contact fields only. Identity (license number) is
// immutable after registration.
func (s *customerService) UpdateContact(ctx context.Context, id int32, name, email, phone string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email != "" && email != customer.Email {
		if _, err := s.customerRepo.GetByEmail(ctx, email); err == nil {
			return nil, domain.BadRequestError("email already registered")
		} else if !domain.IsNotFound(err) {
			return nil, err
		}
		customer.Email = email
	}
	if name != "" {
		customer.Name = name
	}
	if phone != "" {
		customer.Phone = phone
	}
	customer.UpdatedOn = s.clock.Now()

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Deactivate marks the customer INACTIVE. Customers are never hard-deleted.
func (s *customerService) Deactivate(ctx context.Context, id int32) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Status = domain.CustomerStatusInactive
	customer.UpdatedOn = s.clock.Now()
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	logger.Info("Customer deactivated", "customer_id", id)
	return customer, nil
}
