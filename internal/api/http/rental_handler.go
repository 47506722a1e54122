package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CustomerID int32  `json:"customer_id"`
	VehicleID  int32  `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Tier       string `json:"tier"`
}

type updateRentalRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Tier      string `json:"tier"`
}

func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.BadRequestError("invalid " + field + ": expected RFC 3339 timestamp")
	}
	return t, nil
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, domain.BadRequestError("invalid id")
	}
	return int32(id), nil
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.BadRequestError("invalid request body"))
		return
	}
	start, err := parseTimestamp("start_date", req.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseTimestamp("end_date", req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.Create(r.Context(), req.CustomerID, req.VehicleID, start, end, domain.PricingTier(req.Tier))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRentalResponse(rental))
}

func (h *RentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.BadRequestError("invalid request body"))
		return
	}
	start, err := parseTimestamp("start_date", req.StartDate)
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseTimestamp("end_date", req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	rental, err := h.rentalSvc.Update(r.Context(), id, start, end, domain.PricingTier(req.Tier))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentalSvc.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentalSvc.Complete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.rentalSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := h.rentalSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	customerID, _ := strconv.ParseInt(q.Get("customer_id"), 10, 32)
	page, _ := strconv.ParseInt(q.Get("page"), 10, 32)
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.ParseInt(q.Get("page_size"), 10, 32)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	rentals, total, err := h.rentalSvc.List(r.Context(), int32(customerID), q.Get("status"), int32(page), int32(pageSize))
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]rentalResponse, 0, len(rentals))
	for i := range rentals {
		items = append(items, toRentalResponse(&rentals[i]))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rentals": items,
		"total":   total,
	})
}
