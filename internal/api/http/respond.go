package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/pricing"
	"locadora-admin/internal/repository"
	"locadora-admin/internal/repository/remote"
	"locadora-admin/internal/service"
)

// maxBodyBytes bounds request bodies accepted by the admin API.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string                   `json:"error"`
	Status domain.ReservationStatus `json:"status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	var rejected *service.TransitionRejectedError
	var apiErr *remote.APIError

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, pricing.ErrInvalidRange),
		errors.Is(err, pricing.ErrInvalidRate),
		errors.Is(err, pricing.ErrDateFormat),
		errors.Is(err, pricing.ErrRateFormat),
		errors.Is(err, lifecycle.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.As(err, &rejected), errors.Is(err, lifecycle.ErrTerminalState):
		return http.StatusConflict
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	body := errorResponse{Error: err.Error()}

	var rejected *service.TransitionRejectedError
	if errors.As(err, &rejected) {
		body.Status = rejected.Status
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	} else {
		logger.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a single JSON document into dst. Malformed bodies are reported as validation errors.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &domain.ValidationError{Field: "body", Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	return nil
}
