package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

type addVehicleRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int32  `json:"year"`
	Plate string `json:"plate"`
	Type  string `json:"type"`
}

type vehicleStatusRequest struct {
	OutOfService bool `json:"out_of_service"`
}

func (h *VehicleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.BadRequestError("invalid request body"))
		return
	}
	vehicle, err := h.vehicleSvc.Add(r.Context(), req.Brand, req.Model, req.Year, req.Plate, domain.VehicleType(req.Type))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.vehicleSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 32)
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.ParseInt(q.Get("page_size"), 10, 32)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	vehicles, total, err := h.vehicleSvc.List(r.Context(), q.Get("status"), int32(page), int32(pageSize))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"total":    total,
	})
}

func (h *VehicleHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req vehicleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.BadRequestError("invalid request body"))
		return
	}
	vehicle, err := h.vehicleSvc.SetMaintenance(r.Context(), id, req.OutOfService)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) ReturnToService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.vehicleSvc.ReturnToService(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}
