// Package memory provides in-process store implementations used by tests and
// by the server's "memory" database driver. Behavior mirrors the postgres
// implementations, including uniqueness checks and not-found errors.
package memory

import (
	"carrental-backend/internal/repository"
)

type Store struct {
	repository.CustomerRepository
	repository.VehicleRepository
	repository.RentalRepository
}

func NewStore() *Store {
	return &Store{
		CustomerRepository: NewCustomerRepository(),
		VehicleRepository:  NewVehicleRepository(),
		RentalRepository:   NewRentalRepository(),
	}
}
