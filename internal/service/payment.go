package service

import (
	"context"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/repository"
)

type paymentService struct {
	CatalogService[domain.Payment]
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{
		CatalogService: NewCatalogService[domain.Payment]("payment", paymentRepo),
		paymentRepo:    paymentRepo,
	}
}

func (s *paymentService) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	if status == "" {
		return s.List(ctx)
	}
	if !status.IsValid() {
		return nil, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown payment status %q", status)}
	}
	payments, err := s.paymentRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments with status %s: %w", status, err)
	}
	return payments, nil
}
