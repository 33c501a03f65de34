// Package narrative persists generated records in the key-value store,
// one key per (subject, language).
package narrative

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vinoteca-cloud/sommelier/internal/db"
	"github.com/vinoteca-cloud/sommelier/internal/domain"
	domnar "github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
)

// store is the consumer interface for record persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the record store used by the profile and comparison usecases.
type Repo struct {
	store store
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get retrieves a record by its normalized key.
func (r *Repo) Get(ctx context.Context, key domnar.Key) (domnar.Record, error) {
	raw, err := r.store.Get(ctx, storageKey(key))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domnar.Record{}, domain.ErrRecordNotFound
		}
		return domnar.Record{}, fmt.Errorf("get record %s: %w", storageKey(key), err)
	}
	return recordFromBytes(key, raw)
}

// Create inserts a record, failing if one already exists for the key.
// SET NX is the single serialization point: of two concurrent writers,
// exactly one wins and the loser sees domain.ErrRecordExists.
func (r *Repo) Create(ctx context.Context, rec domnar.Record) error {
	raw, err := recordToBytes(rec)
	if err != nil {
		return err
	}
	if err := r.store.SetNX(ctx, storageKey(rec.Key), raw); err != nil {
		if errors.Is(err, db.ErrKeyExists) {
			return domain.ErrRecordExists
		}
		return fmt.Errorf("setnx record %s: %w", storageKey(rec.Key), err)
	}
	return nil
}

// Replace writes a record unconditionally, overwriting any existing one.
func (r *Repo) Replace(ctx context.Context, rec domnar.Record) error {
	raw, err := recordToBytes(rec)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, storageKey(rec.Key), raw); err != nil {
		return fmt.Errorf("set record %s: %w", storageKey(rec.Key), err)
	}
	return nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (r *Repo) Delete(ctx context.Context, key domnar.Key) error {
	if err := r.store.Del(ctx, storageKey(key)); err != nil {
		return fmt.Errorf("del record %s: %w", storageKey(key), err)
	}
	return nil
}

// Exists reports whether a record is stored for the key.
func (r *Repo) Exists(ctx context.Context, key domnar.Key) (bool, error) {
	ok, err := r.store.Exists(ctx, storageKey(key))
	if err != nil {
		return false, fmt.Errorf("exists record %s: %w", storageKey(key), err)
	}
	return ok, nil
}

// Languages returns the sorted language tags a subject has records for.
// The language is the last key segment, so a wildcard scan over the
// subject's key prefix enumerates them.
func (r *Repo) Languages(ctx context.Context, key domnar.Key) ([]string, error) {
	pattern := subjectPattern(key)
	keys, err := r.store.Scan(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("scan records %s: %w", pattern, err)
	}

	languages := make([]string, 0, len(keys))
	for _, k := range keys {
		if idx := strings.LastIndexByte(k, ':'); idx >= 0 && idx < len(k)-1 {
			languages = append(languages, k[idx+1:])
		}
	}
	sort.Strings(languages)
	return languages, nil
}

// Key patterns: somm:profile:{wineID}:{lang}, somm:comparison:{a}:{b}:{lang}

func storageKey(key domnar.Key) string {
	if key.Kind == domnar.KindComparison {
		return fmt.Sprintf("%scomparison:%s:%s:%s",
			domain.KeyPrefix, key.WineA, key.WineB, key.Language)
	}
	return fmt.Sprintf("%sprofile:%s:%s", domain.KeyPrefix, key.WineA, key.Language)
}

func subjectPattern(key domnar.Key) string {
	if key.Kind == domnar.KindComparison {
		return fmt.Sprintf("%scomparison:%s:%s:*", domain.KeyPrefix, key.WineA, key.WineB)
	}
	return fmt.Sprintf("%sprofile:%s:*", domain.KeyPrefix, key.WineA)
}
