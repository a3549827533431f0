// Package http exposes the admin JSON API consumed by the back-office dashboard.
package http

import (
	"context"
	"net/http"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/service"

	"github.com/gorilla/mux"
)

// Pinger reports whether the rental API answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services groups the dependencies of the admin API.
type Services struct {
	Reservations  service.ReservationService
	Vehicles      service.VehicleService
	Payments      service.PaymentService
	Stock         service.StockService
	StatusHistory service.StatusHistoryService
	Addresses     service.CatalogService[domain.Address]
	Stores        service.CatalogService[domain.Store]
	Categories    service.CatalogService[domain.Category]
	Customers     service.CatalogService[domain.Customer]
	Stats         service.StatsService
	Upstream      Pinger
}

// NewRouter builds the admin API router with logging and panic recovery.
func NewRouter(svcs Services) *mux.Router {
	router := mux.NewRouter()
	// Logging wraps recovery so a panicking request is still logged with its 500.
	router.Use(loggingMiddleware, recoveryMiddleware)
	RegisterRoutes(router, svcs)
	return router
}

func RegisterRoutes(router *mux.Router, svcs Services) {
	router.HandleFunc("/healthz", healthHandler(svcs.Upstream)).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	stats := &statsHandler{svc: svcs.Stats}
	api.HandleFunc("/stats", stats.summary).Methods(http.MethodGet)

	registerCatalog(api, "/addresses", svcs.Addresses, true)
	registerCatalog(api, "/stores", svcs.Stores, true)
	registerCatalog(api, "/categories", svcs.Categories, true)
	registerCatalog(api, "/customers", svcs.Customers, true)

	vehicles := &vehicleHandler{svc: svcs.Vehicles}
	api.HandleFunc("/vehicles", vehicles.search).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/status", vehicles.setStatus).Methods(http.MethodPatch)
	registerCatalog[domain.Vehicle](api, "/vehicles", svcs.Vehicles, false)

	payments := &paymentHandler{svc: svcs.Payments}
	api.HandleFunc("/payments", payments.list).Methods(http.MethodGet)
	registerCatalog[domain.Payment](api, "/payments", svcs.Payments, false)

	history := &statusHistoryHandler{svc: svcs.StatusHistory}
	api.HandleFunc("/status-history", history.list).Methods(http.MethodGet)
	api.HandleFunc("/status-history", history.create).Methods(http.MethodPost)
	api.HandleFunc("/status-history/{id}", history.get).Methods(http.MethodGet)

	stock := &stockHandler{svc: svcs.Stock}
	api.HandleFunc("/stock", stock.list).Methods(http.MethodGet)
	api.HandleFunc("/stock", stock.create).Methods(http.MethodPost)
	api.HandleFunc("/stock/transfer", stock.transfer).Methods(http.MethodPost)
	api.HandleFunc("/stock/{id}", stock.get).Methods(http.MethodGet)
	api.HandleFunc("/stock/{id}", stock.update).Methods(http.MethodPut)
	api.HandleFunc("/stock/{id}", stock.delete).Methods(http.MethodDelete)

	reservations := &reservationHandler{svc: svcs.Reservations}
	api.HandleFunc("/quote", reservations.quote).Methods(http.MethodGet)
	api.HandleFunc("/reservations", reservations.list).Methods(http.MethodGet)
	api.HandleFunc("/reservations", reservations.create).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", reservations.get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", reservations.update).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}", reservations.delete).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{id}/confirm", reservations.confirm).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/cancel", reservations.cancel).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}/actions", reservations.actions).Methods(http.MethodGet)
}

type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
}

// healthHandler always answers 200 while the process is up; upstream reachability is informational.
func healthHandler(upstream Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Upstream: "unknown"}
		if upstream != nil {
			if err := upstream.Ping(r.Context()); err != nil {
				resp.Upstream = "unavailable"
			} else {
				resp.Upstream = "ok"
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
