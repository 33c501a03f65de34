package comparison

import (
	"context"

	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
)

// WineReader resolves generation subjects from the catalog.
type WineReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Wine, error)
}

// RecordStore defines the persistence contract for comparison records.
type RecordStore interface {
	Get(ctx context.Context, key narrative.Key) (narrative.Record, error)
	Create(ctx context.Context, rec narrative.Record) error
	Replace(ctx context.Context, rec narrative.Record) error
	Exists(ctx context.Context, key narrative.Key) (bool, error)
	Languages(ctx context.Context, key narrative.Key) ([]string, error)
}

// Generator produces comparison documents.
type Generator interface {
	GenerateComparison(ctx context.Context, wineA, wineB *domain.Wine, language string) (narrative.Document, error)
}
