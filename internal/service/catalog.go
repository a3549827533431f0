package service

import (
	"context"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/repository"
)

// validatable is satisfied by pointers to records that check their own fields.
type validatable[T any] interface {
	*T
	Validate() error
}

type catalogService[T any, PT validatable[T]] struct {
	name string
	repo repository.CRUD[T]
}

// NewCatalogService returns a CatalogService that validates records before they are sent to repo.
// name is used in logs and error messages.
func NewCatalogService[T any, PT validatable[T]](name string, repo repository.CRUD[T]) CatalogService[T] {
	return &catalogService[T, PT]{name: name, repo: repo}
}

func (s *catalogService[T, PT]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.name, err)
	}
	return items, nil
}

func (s *catalogService[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *catalogService[T, PT]) Create(ctx context.Context, item *T) (*T, error) {
	method := s.name + ".Create"
	logger.EnterMethod(method)

	if err := PT(item).Validate(); err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, err
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, fmt.Errorf("failed to create %s: %w", s.name, err)
	}

	logger.ExitMethod(method)
	return created, nil
}

func (s *catalogService[T, PT]) Update(ctx context.Context, id string, item *T) (*T, error) {
	method := s.name + ".Update"
	logger.EnterMethod(method, "id", id)

	if err := domain.ValidateID("id", id); err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return nil, err
	}
	if err := PT(item).Validate(); err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, item)
	if err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return nil, fmt.Errorf("failed to update %s %s: %w", s.name, id, err)
	}

	logger.ExitMethod(method, "id", id)
	return updated, nil
}

func (s *catalogService[T, PT]) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", s.name, id, err)
	}
	logger.Info("Record deleted", "kind", s.name, "id", id)
	return nil
}
