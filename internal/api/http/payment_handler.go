package http

import (
	"net/http"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/service"
)

type paymentHandler struct {
	svc service.PaymentService
}

func (h *paymentHandler) list(w http.ResponseWriter, r *http.Request) {
	var status domain.PaymentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParsePaymentStatus(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		status = parsed
	}

	payments, err := h.svc.ListByStatus(r.Context(), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
