package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors to HTTP status codes. A lost reservation
// race maps to 409 so the caller can re-prompt for another vehicle or time.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case domain.IsVehicleNotAvailable(err):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case domain.IsBadRequest(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// formatCents renders fixed-point cents as a two-decimal string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

type rentalResponse struct {
	ID         int32  `json:"id"`
	Code       string `json:"code"`
	CustomerID int32  `json:"customer_id"`
	VehicleID  int32  `json:"vehicle_id"`
	Status     string `json:"status"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Tier       string `json:"tier"`
	DailyRate  string `json:"daily_rate"`
	TotalPrice string `json:"total_price"`
	CreatedOn  string `json:"created_on"`
	UpdatedOn  string `json:"updated_on"`
}

func toRentalResponse(rt *domain.Rental) rentalResponse {
	return rentalResponse{
		ID:         rt.ID,
		Code:       rt.Code,
		CustomerID: rt.CustomerID,
		VehicleID:  rt.VehicleID,
		Status:     string(rt.Status),
		StartDate:  rt.StartDate.Format(time.RFC3339),
		EndDate:    rt.EndDate.Format(time.RFC3339),
		Tier:       string(rt.Tier),
		DailyRate:  formatCents(rt.DailyRateCents),
		TotalPrice: formatCents(rt.TotalPriceCents),
		CreatedOn:  rt.CreatedOn.Format(time.RFC3339),
		UpdatedOn:  rt.UpdatedOn.Format(time.RFC3339),
	}
}
