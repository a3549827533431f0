package remote

import (
	"context"
	"net/http"
	"net/url"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/repository"
)

type vehicleRepository struct {
	resource[domain.Vehicle]
}

func NewVehicleRepository(c *Client) repository.VehicleRepository {
	return &vehicleRepository{newResource[domain.Vehicle](c, "/veiculos/")}
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus) error {
	body := map[string]domain.VehicleStatus{"status": status}
	_, err := r.client.do(ctx, http.MethodPatch, r.item(id)+"/status", body, nil)
	return err
}

type reservationRepository struct {
	resource[domain.Reservation]
}

func NewReservationRepository(c *Client) repository.ReservationRepository {
	return &reservationRepository{newResource[domain.Reservation](c, "/reservas/")}
}

func (r *reservationRepository) Confirm(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodPatch, r.item(id)+"/confirmar", struct{}{}, nil)
	return err
}

func (r *reservationRepository) Cancel(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodPatch, r.item(id)+"/cancelar", struct{}{}, nil)
	return err
}

type paymentRepository struct {
	resource[domain.Payment]
}

func NewPaymentRepository(c *Client) repository.PaymentRepository {
	return &paymentRepository{newResource[domain.Payment](c, "/pagamentos/")}
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	return r.list(ctx, r.path+"?status="+url.QueryEscape(string(status)))
}

type statusHistoryRepository struct {
	resource[domain.StatusHistoryEntry]
}

func NewStatusHistoryRepository(c *Client) repository.StatusHistoryRepository {
	return &statusHistoryRepository{newResource[domain.StatusHistoryEntry](c, "/historico-status-veiculo/")}
}

func (r *statusHistoryRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StatusHistoryEntry, error) {
	return r.list(ctx, r.path+"veiculo/"+url.PathEscape(vehicleID))
}

type stockRepository struct {
	resource[domain.StockEntry]
}

func NewStockRepository(c *Client) repository.StockRepository {
	return &stockRepository{newResource[domain.StockEntry](c, "/estoque/")}
}

func (r *stockRepository) ListByStore(ctx context.Context, storeID string) ([]domain.StockEntry, error) {
	return r.list(ctx, r.path+"loja/"+url.PathEscape(storeID))
}

func (r *stockRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StockEntry, error) {
	return r.list(ctx, r.path+"veiculo/"+url.PathEscape(vehicleID))
}

func (r *stockRepository) Transfer(ctx context.Context, transfer *domain.StockTransfer) error {
	_, err := r.client.do(ctx, http.MethodPost, r.path+"transfer", transfer, nil)
	return err
}
