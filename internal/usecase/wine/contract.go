package wine

import (
	"context"

	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

// Repository defines the storage contract for the catalog.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Wine, error)
	List(ctx context.Context) ([]*domain.Wine, error)
}
