package http

import (
	"net/http"

	"locadora-admin/internal/service"
)

type statsHandler struct {
	svc service.StatsService
}

func (h *statsHandler) summary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Summary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
