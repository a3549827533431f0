package remote

import (
	"time"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/repository"
)

// Store groups every repository backed by the rental API.
type Store struct {
	*Client
	Addresses     repository.AddressRepository
	Stores        repository.StoreRepository
	Categories    repository.CategoryRepository
	Customers     repository.CustomerRepository
	Vehicles      repository.VehicleRepository
	Reservations  repository.ReservationRepository
	Payments      repository.PaymentRepository
	StatusHistory repository.StatusHistoryRepository
	Stock         repository.StockRepository
}

func NewStore(baseURL string, timeout time.Duration, opts ...Option) *Store {
	c := NewClient(baseURL, timeout, opts...)
	return &Store{
		Client:        c,
		Addresses:     newResource[domain.Address](c, "/enderecos/"),
		Stores:        newResource[domain.Store](c, "/lojas/"),
		Categories:    newResource[domain.Category](c, "/categorias/"),
		Customers:     newResource[domain.Customer](c, "/clientes/"),
		Vehicles:      NewVehicleRepository(c),
		Reservations:  NewReservationRepository(c),
		Payments:      NewPaymentRepository(c),
		StatusHistory: NewStatusHistoryRepository(c),
		Stock:         NewStockRepository(c),
	}
}
