package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RoleFleetManager guards vehicle fleet and rental administration endpoints.
const RoleFleetManager = "fleet_manager"

// NewRouter wires all handlers behind the auth middleware.
func NewRouter(
	auth *AuthMiddleware,
	rentals *RentalHandler,
	customers *CustomerHandler,
	vehicles *VehicleHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(auth.Handler)

	// Rentals
	r.HandleFunc("/rentals", rentals.Create).Methods(http.MethodPost)
	r.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{id:[0-9]+}", rentals.Get).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{id:[0-9]+}", rentals.Update).Methods(http.MethodPut)
	r.HandleFunc("/rentals/{id:[0-9]+}", RequireRole(RoleFleetManager, rentals.Delete)).Methods(http.MethodDelete)
	r.HandleFunc("/rentals/{id:[0-9]+}/cancel", rentals.Cancel).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id:[0-9]+}/complete", rentals.Complete).Methods(http.MethodPost)

	// Customers
	r.HandleFunc("/customers", customers.Register).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id:[0-9]+}", customers.Get).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}", customers.Update).Methods(http.MethodPut)
	r.HandleFunc("/customers/{id:[0-9]+}/deactivate", RequireRole(RoleFleetManager, customers.Deactivate)).Methods(http.MethodPost)

	// Vehicles
	r.HandleFunc("/vehicles", RequireRole(RoleFleetManager, vehicles.Add)).Methods(http.MethodPost)
	r.HandleFunc("/vehicles", vehicles.List).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id:[0-9]+}", vehicles.Get).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id:[0-9]+}/maintenance", RequireRole(RoleFleetManager, vehicles.SetMaintenance)).Methods(http.MethodPost)
	r.HandleFunc("/vehicles/{id:[0-9]+}/return-to-service", RequireRole(RoleFleetManager, vehicles.ReturnToService)).Methods(http.MethodPost)

	return r
}
