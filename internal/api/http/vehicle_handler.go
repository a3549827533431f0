package http

import (
	"net/http"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/service"

	"github.com/gorilla/mux"
)

type vehicleHandler struct {
	svc service.VehicleService
}

type setStatusRequest struct {
	Status      string `json:"status"`
	Description string `json:"descricao"`
}

func (h *vehicleHandler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.VehicleFilter{Query: query.Get("q"), Brand: query.Get("brand")}
	if status := query.Get("status"); status != "" {
		parsed, err := domain.ParseVehicleStatus(status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		filter.Status = parsed
	}

	vehicles, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *vehicleHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	status, err := domain.ParseVehicleStatus(req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	vehicle, err := h.svc.SetStatus(r.Context(), mux.Vars(r)["id"], status, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}
