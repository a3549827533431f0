package http

import (
	"net/http"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/service"

	"github.com/gorilla/mux"
)

type stockHandler struct {
	svc service.StockService
}

func (h *stockHandler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	storeID, vehicleID := query.Get("store_id"), query.Get("vehicle_id")

	var entries []domain.StockEntry
	var err error
	switch {
	case storeID != "" && vehicleID != "":
		err = &domain.ValidationError{Field: "store_id", Reason: "cannot be combined with vehicle_id"}
	case storeID != "":
		entries, err = h.svc.ListByStore(r.Context(), storeID)
	case vehicleID != "":
		entries, err = h.svc.ListByVehicle(r.Context(), vehicleID)
	default:
		err = &domain.ValidationError{Field: "store_id", Reason: "store_id or vehicle_id is required"}
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *stockHandler) get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *stockHandler) create(w http.ResponseWriter, r *http.Request) {
	var entry domain.StockEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.Create(r.Context(), &entry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *stockHandler) update(w http.ResponseWriter, r *http.Request) {
	var entry domain.StockEntry
	if err := decodeJSON(r, &entry); err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], &entry)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *stockHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *stockHandler) transfer(w http.ResponseWriter, r *http.Request) {
	var transfer domain.StockTransfer
	if err := decodeJSON(r, &transfer); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Transfer(r.Context(), &transfer); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
