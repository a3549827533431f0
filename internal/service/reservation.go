package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/notify"
	"locadora-admin/internal/pricing"
	"locadora-admin/internal/repository"

	"github.com/shopspring/decimal"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	customerRepo    repository.CustomerRepository
	notifier        notify.Notifier
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	notifier notify.Notifier,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		customerRepo:    customerRepo,
		notifier:        notifier,
	}
}

// Quote prices a possibly incomplete form. Without a vehicle the daily rate is zero.
func (s *reservationService) Quote(ctx context.Context, startDate, endDate, vehicleID string) (pricing.Quote, error) {
	quote, err := pricing.QuoteFromStrings(startDate, endDate, "")
	if err != nil || strings.TrimSpace(vehicleID) == "" {
		return quote, err
	}

	rate, err := s.dailyRate(ctx, vehicleID)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.ComputeQuote(quote.Start, quote.End, rate)
}

func (s *reservationService) dailyRate(ctx context.Context, vehicleID string) (decimal.Decimal, error) {
	if err := domain.ValidateID("veiculo_id", vehicleID); err != nil {
		return decimal.Zero, err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load vehicle %s: %w", vehicleID, err)
	}
	return vehicle.DailyRate, nil
}

func (s *reservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *reservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	return s.reservationRepo.GetByID(ctx, id)
}

// build validates the draft and prices it against the vehicle's current daily rate.
func (s *reservationService) build(ctx context.Context, draft *domain.ReservationDraft) (*domain.Reservation, error) {
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	start, err := pricing.ParseDate(draft.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := pricing.ParseDate(draft.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, &pricing.InvalidRangeError{Start: start, End: end}
	}

	rate, err := s.dailyRate(ctx, draft.VehicleID)
	if err != nil {
		return nil, err
	}
	quote, err := pricing.ComputeQuote(start, end, rate)
	if err != nil {
		return nil, err
	}
	return draft.Reservation(quote.PeriodDays, quote.Total), nil
}

func (s *reservationService) Create(ctx context.Context, draft *domain.ReservationDraft) (*domain.Reservation, error) {
	logger.EnterMethod("reservationService.Create", "vehicleID", draft.VehicleID, "customerID", draft.CustomerID)

	reservation, err := s.build(ctx, draft)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Create", err, "vehicleID", draft.VehicleID)
		return nil, err
	}

	created, err := s.reservationRepo.Create(ctx, reservation)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Create", err, "vehicleID", draft.VehicleID)
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	logger.ExitMethod("reservationService.Create", "reservationID", created.ID,
		"periodDays", created.PeriodDays, "total", created.TotalAmount.StringFixed(2))
	return created, nil
}

func (s *reservationService) Update(ctx context.Context, id string, draft *domain.ReservationDraft) (*domain.Reservation, error) {
	logger.EnterMethod("reservationService.Update", "reservationID", id)

	if err := domain.ValidateID("id", id); err != nil {
		logger.ExitMethodWithError("reservationService.Update", err, "reservationID", id)
		return nil, err
	}
	keepStored := strings.TrimSpace(string(draft.Status)) == ""
	reservation, err := s.build(ctx, draft)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Update", err, "reservationID", id)
		return nil, err
	}

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Update", err, "reservationID", id)
		return nil, err
	}
	requested := reservation.Status
	if keepStored {
		requested = current.Status
	}
	if err := checkStatusEdit(current.Status, requested); err != nil {
		logger.ExitMethodWithError("reservationService.Update", err, "reservationID", id, "status", current.Status)
		return nil, err
	}
	reservation.ID = id
	reservation.Status = current.Status

	updated, err := s.reservationRepo.Update(ctx, id, reservation)
	if err != nil {
		logger.ExitMethodWithError("reservationService.Update", err, "reservationID", id)
		return nil, fmt.Errorf("failed to update reservation %s: %w", id, err)
	}

	logger.ExitMethod("reservationService.Update", "reservationID", id,
		"periodDays", updated.PeriodDays, "total", updated.TotalAmount.StringFixed(2))
	return updated, nil
}

// checkStatusEdit rejects edits that would move the status. Status only changes through
// Confirm and Cancel, or on the rental API's side.
func checkStatusEdit(current, requested domain.ReservationStatus) error {
	if requested == current {
		return nil
	}
	if lifecycle.IsTerminal(current) {
		return &lifecycle.TerminalStateError{Status: current, Action: lifecycle.ActionEdit}
	}
	return &domain.ValidationError{
		Field:  "status",
		Reason: fmt.Sprintf("cannot change status from %s to %s by editing; use confirm or cancel", current, requested),
	}
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", id, err)
	}
	logger.Info("Reservation deleted", "reservationID", id)
	return nil
}

func (s *reservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, "reservationService.Confirm", id, lifecycle.ActionConfirm, s.reservationRepo.Confirm)
}

func (s *reservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, "reservationService.Cancel", id, lifecycle.ActionCancel, s.reservationRepo.Cancel)
}

func (s *reservationService) transition(
	ctx context.Context,
	method, id string,
	action lifecycle.Action,
	apply func(ctx context.Context, id string) error,
) (*domain.Reservation, error) {
	logger.EnterMethod(method, "reservationID", id)

	current, err := s.Get(ctx, id)
	if err != nil {
		logger.ExitMethodWithError(method, err, "reservationID", id)
		return nil, err
	}

	next, err := lifecycle.NextStatus(current.Status, action)
	if err != nil {
		logger.ExitMethodWithError(method, err, "reservationID", id, "status", current.Status)
		return nil, err
	}
	if next == current.Status {
		logger.ExitMethod(method, "reservationID", id, "status", current.Status, "noop", true)
		return current, nil
	}

	if err := apply(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRejected) {
			err = s.rejected(ctx, id, current.Status, action, err)
		} else {
			err = fmt.Errorf("failed to %s reservation %s: %w", action, id, err)
		}
		logger.ExitMethodWithError(method, err, "reservationID", id)
		return nil, err
	}

	updated, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Warn("Failed to reload reservation after transition", "reservationID", id, "error", err)
		copied := *current
		copied.Status = next
		updated = &copied
	}

	s.notifyCustomer(ctx, updated)

	logger.ExitMethod(method, "reservationID", id, "from", current.Status, "to", updated.Status)
	return updated, nil
}

// rejected re-reads the reservation so the caller sees the status the rental API holds.
func (s *reservationService) rejected(ctx context.Context, id string, status domain.ReservationStatus, action lifecycle.Action, cause error) error {
	if fresh, err := s.reservationRepo.GetByID(ctx, id); err == nil {
		status = fresh.Status
	} else {
		logger.Warn("Failed to reload rejected reservation", "reservationID", id, "error", err)
	}
	return &TransitionRejectedError{
		ReservationID: id,
		Action:        action,
		Status:        status,
		Err:           cause,
	}
}

func (s *reservationService) notifyCustomer(ctx context.Context, r *domain.Reservation) {
	if s.notifier == nil || r.CustomerID == "" {
		return
	}
	customer, err := s.customerRepo.GetByID(ctx, r.CustomerID)
	if err != nil {
		logger.Warn("Failed to load customer for notification", "reservationID", r.ID, "customerID", r.CustomerID, "error", err)
		return
	}
	if err := s.notifier.ReservationStatusChanged(ctx, customer, r); err != nil {
		logger.Error("Failed to notify customer", "reservationID", r.ID, "customerID", r.CustomerID, "error", err)
	}
}

func (s *reservationService) AvailableActions(ctx context.Context, id string) (*domain.Reservation, []lifecycle.Action, error) {
	reservation, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return reservation, lifecycle.Available(reservation.Status), nil
}
