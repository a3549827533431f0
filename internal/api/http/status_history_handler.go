package http

import (
	"net/http"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/service"

	"github.com/gorilla/mux"
)

type statusHistoryHandler struct {
	svc service.StatusHistoryService
}

func (h *statusHistoryHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context(), r.URL.Query().Get("vehicle_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *statusHistoryHandler) get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *statusHistoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var entry domain.StatusHistoryEntry
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
