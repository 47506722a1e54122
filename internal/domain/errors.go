package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")

	// ErrVehicleNotAvailable is a specialization of ErrBadRequest: the vehicle
	// is already reserved, in maintenance, or out of service. Callers can
	// re-prompt the user for another vehicle or time window.
	ErrVehicleNotAvailable = fmt.Errorf("%w: vehicle not available", ErrBadRequest)
)

func NotFoundError(entity string, id int32) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func BadRequestError(details string) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, details)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsVehicleNotAvailable(err error) bool {
	return errors.Is(err, ErrVehicleNotAvailable)
}
