// Package comparison orchestrates head-to-head comparison delivery. Pair
// order is canonicalized before every cache operation, so (A,B) and (B,A)
// resolve to one stored record.
package comparison

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
	"github.com/vinoteca-cloud/sommelier/internal/domain/pair"
	"github.com/vinoteca-cloud/sommelier/internal/metrics"
)

// Service handles comparison operations.
type Service struct {
	wines     WineReader
	records   RecordStore
	generator Generator
	logger    *zap.Logger

	now func() time.Time
}

// New creates a comparison service.
func New(wines WineReader, records RecordStore, generator Generator, logger *zap.Logger) *Service {
	return &Service{
		wines:     wines,
		records:   records,
		generator: generator,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// subjects holds the resolved, normalized inputs of one comparison request.
type subjects struct {
	key   narrative.Key
	wineA *domain.Wine // normalized first
	wineB *domain.Wine // normalized second
}

// GetOrGenerate returns the comparison for (wineAID, wineBID, language),
// generating and caching it on first request. Argument order does not affect
// the result. The returned flag reports whether it was served from cache.
func (s *Service) GetOrGenerate(
	ctx context.Context, wineAID, wineBID uuid.UUID, language string,
) (narrative.Comparison, bool, error) {
	sub, err := s.resolve(ctx, wineAID, wineBID, language)
	if err != nil {
		return narrative.Comparison{}, false, err
	}

	rec, err := s.records.Get(ctx, sub.key)
	if err == nil {
		metrics.NarrativeCacheTotal.WithLabelValues(string(narrative.KindComparison), "hit").Inc()
		return narrative.BuildComparison(rec, sub.wineA.Name, sub.wineB.Name), true, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return narrative.Comparison{}, false, fmt.Errorf("get record: %w", err)
	}

	metrics.NarrativeCacheTotal.WithLabelValues(string(narrative.KindComparison), "miss").Inc()
	s.logger.Info("Generating comparison",
		zap.String("wine_a", sub.key.WineA.String()),
		zap.String("wine_b", sub.key.WineB.String()),
		zap.String("language", sub.key.Language),
	)

	doc, err := s.generator.GenerateComparison(ctx, sub.wineA, sub.wineB, sub.key.Language)
	if err != nil {
		return narrative.Comparison{}, false, fmt.Errorf("generate comparison: %w", err)
	}

	rec = narrative.Record{Key: sub.key, Document: doc, CreatedAt: s.now()}

	if err := s.records.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrRecordExists) {
			// Concurrent duplicate: serve the winning insert.
			winner, getErr := s.records.Get(ctx, sub.key)
			if getErr != nil {
				return narrative.Comparison{}, false, fmt.Errorf("reread record after race: %w", getErr)
			}
			return narrative.BuildComparison(winner, sub.wineA.Name, sub.wineB.Name), true, nil
		}
		return narrative.Comparison{}, false, fmt.Errorf("store record: %w", err)
	}

	return narrative.BuildComparison(rec, sub.wineA.Name, sub.wineB.Name), false, nil
}

// Regenerate discards any cached comparison and generates a fresh one.
func (s *Service) Regenerate(
	ctx context.Context, wineAID, wineBID uuid.UUID, language string,
) (narrative.Comparison, error) {
	sub, err := s.resolve(ctx, wineAID, wineBID, language)
	if err != nil {
		return narrative.Comparison{}, err
	}

	s.logger.Info("Regenerating comparison",
		zap.String("wine_a", sub.key.WineA.String()),
		zap.String("wine_b", sub.key.WineB.String()),
		zap.String("language", sub.key.Language),
	)

	doc, err := s.generator.GenerateComparison(ctx, sub.wineA, sub.wineB, sub.key.Language)
	if err != nil {
		return narrative.Comparison{}, fmt.Errorf("regenerate comparison: %w", err)
	}

	rec := narrative.Record{Key: sub.key, Document: doc, CreatedAt: s.now()}
	if err := s.records.Replace(ctx, rec); err != nil {
		return narrative.Comparison{}, fmt.Errorf("store record: %w", err)
	}

	return narrative.BuildComparison(rec, sub.wineA.Name, sub.wineB.Name), nil
}

// Exists reports whether a cached comparison exists, without generating.
func (s *Service) Exists(ctx context.Context, wineAID, wineBID uuid.UUID, language string) (bool, error) {
	sub, err := s.resolve(ctx, wineAID, wineBID, language)
	if err != nil {
		return false, err
	}
	ok, err := s.records.Exists(ctx, sub.key)
	if err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return ok, nil
}

// CacheStatus reports the cache metadata for the normalized pair. Never
// triggers generation.
func (s *Service) CacheStatus(
	ctx context.Context, wineAID, wineBID uuid.UUID, language string,
) (narrative.CacheStatus, error) {
	sub, err := s.resolve(ctx, wineAID, wineBID, language)
	if err != nil {
		return narrative.CacheStatus{}, err
	}

	status := narrative.CacheStatus{
		Status:             narrative.StatusNotRequested,
		RequestedLanguage:  sub.key.Language,
		AvailableLanguages: []string{},
	}

	rec, err := s.records.Get(ctx, sub.key)
	switch {
	case err == nil:
		status.Status = narrative.StatusGenerated
		generatedAt := rec.CreatedAt
		status.GeneratedAt = &generatedAt
	case !errors.Is(err, domain.ErrRecordNotFound):
		return narrative.CacheStatus{}, fmt.Errorf("get record: %w", err)
	}

	languages, err := s.records.Languages(ctx, sub.key)
	if err != nil {
		return narrative.CacheStatus{}, fmt.Errorf("list languages: %w", err)
	}
	if len(languages) > 0 {
		status.AvailableLanguages = languages
	}

	return status, nil
}

// resolve validates the language, normalizes the pair, and loads both wines.
// Both must exist before any cache access.
func (s *Service) resolve(
	ctx context.Context, wineAID, wineBID uuid.UUID, language string,
) (subjects, error) {
	if !narrative.ValidLanguageTag(language) {
		return subjects{}, fmt.Errorf("language %q: %w", language, domain.ErrInvalidLanguage)
	}
	lang := narrative.NormalizeLanguage(language)

	p, err := pair.Normalize(wineAID, wineBID)
	if err != nil {
		return subjects{}, err
	}

	wineA, err := s.wines.FindByID(ctx, p.First)
	if err != nil {
		return subjects{}, fmt.Errorf("find wine: %w", err)
	}
	wineB, err := s.wines.FindByID(ctx, p.Second)
	if err != nil {
		return subjects{}, fmt.Errorf("find wine: %w", err)
	}

	return subjects{
		key:   narrative.ComparisonKey(p.First, p.Second, lang),
		wineA: wineA,
		wineB: wineB,
	}, nil
}
