package http

import (
	"net/http"
	"strings"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/pricing"
	"locadora-admin/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type reservationHandler struct {
	svc service.ReservationService
}

type quoteResponse struct {
	StartDate  string          `json:"data_inicio,omitempty"`
	EndDate    string          `json:"data_fim,omitempty"`
	DailyRate  decimal.Decimal `json:"diaria"`
	PeriodDays int             `json:"periodo"`
	Total      decimal.Decimal `json:"valor_total"`
}

func newQuoteResponse(q pricing.Quote) quoteResponse {
	resp := quoteResponse{DailyRate: q.DailyRate, PeriodDays: q.PeriodDays, Total: q.Total}
	if !q.Start.IsZero() {
		resp.StartDate = q.Start.String()
	}
	if !q.End.IsZero() {
		resp.EndDate = q.End.String()
	}
	return resp
}

type actionsResponse struct {
	ID      string                   `json:"id"`
	Status  domain.ReservationStatus `json:"status"`
	Actions []lifecycle.Action       `json:"actions"`
}

// quote prices an in-progress form. An explicit daily_rate takes precedence over vehicle_id.
func (h *reservationHandler) quote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start, end := query.Get("start"), query.Get("end")

	var q pricing.Quote
	var err error
	if rate := query.Get("daily_rate"); strings.TrimSpace(rate) != "" {
		q, err = pricing.QuoteFromStrings(start, end, rate)
	} else {
		q, err = h.svc.Quote(r.Context(), start, end, query.Get("vehicle_id"))
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newQuoteResponse(q))
}

func (h *reservationHandler) list(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *reservationHandler) get(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *reservationHandler) create(w http.ResponseWriter, r *http.Request) {
	var draft domain.ReservationDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.Create(r.Context(), &draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *reservationHandler) update(w http.ResponseWriter, r *http.Request) {
	var draft domain.ReservationDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := h.svc.Update(r.Context(), mux.Vars(r)["id"], &draft)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *reservationHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *reservationHandler) confirm(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.svc.Confirm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *reservationHandler) cancel(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.svc.Cancel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *reservationHandler) actions(w http.ResponseWriter, r *http.Request) {
	reservation, actions, err := h.svc.AvailableActions(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actionsResponse{ID: reservation.ID, Status: reservation.Status, Actions: actions})
}
