// Package wine exposes read access to the wine catalog.
package wine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

// Service handles catalog reads.
type Service struct {
	repo Repository
}

// New creates a wine service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves a wine by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Wine, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get wine: %w", err)
	}
	return w, nil
}

// List returns all catalog wines.
func (s *Service) List(ctx context.Context) ([]*domain.Wine, error) {
	wines, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}
	return wines, nil
}
