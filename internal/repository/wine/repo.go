// Package wine reads the wine catalog from the key-value store. The catalog
// is reference data: it is seeded at startup and never mutated by requests.
package wine

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/db"
	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

// store is the consumer interface for the catalog (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the wine reader used by the usecases.
type Repo struct {
	store store
}

// New creates a wine repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// FindByID retrieves a wine by its identifier.
func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Wine, error) {
	raw, err := r.store.Get(ctx, wineKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("wine %s: %w", id, domain.ErrWineNotFound)
		}
		return nil, fmt.Errorf("get wine %s: %w", id, err)
	}
	return wineFromBytes(raw)
}

// List returns all catalog wines sorted by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Wine, error) {
	keys, err := r.store.Scan(ctx, wineKeyPattern())
	if err != nil {
		return nil, fmt.Errorf("scan wines: %w", err)
	}

	wines := make([]*domain.Wine, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.Get(ctx, key)
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				// Deleted between SCAN and GET.
				continue
			}
			return nil, fmt.Errorf("get wine %s: %w", key, err)
		}
		w, err := wineFromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("parse wine %s: %w", key, err)
		}
		wines = append(wines, w)
	}

	sort.Slice(wines, func(i, j int) bool {
		return wines[i].Name < wines[j].Name
	})

	return wines, nil
}

// Save stores a wine, overwriting any previous entry. Used by catalog seeding.
func (r *Repo) Save(ctx context.Context, w *domain.Wine) error {
	raw, err := wineToBytes(w)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, wineKey(w.ID), raw); err != nil {
		return fmt.Errorf("set wine %s: %w", w.ID, err)
	}
	return nil
}

// Valkey key patterns: somm:wine:{id}

func wineKey(id uuid.UUID) string {
	return fmt.Sprintf("%swine:%s", domain.KeyPrefix, id)
}

func wineKeyPattern() string {
	return fmt.Sprintf("%swine:*", domain.KeyPrefix)
}
