// Package profile orchestrates tasting profile delivery: serve the cached
// record when one exists, otherwise generate, persist, and serve.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
	"github.com/vinoteca-cloud/sommelier/internal/metrics"
)

// Service handles profile operations.
type Service struct {
	wines     WineReader
	records   RecordStore
	generator Generator
	logger    *zap.Logger

	now func() time.Time
}

// New creates a profile service.
func New(wines WineReader, records RecordStore, generator Generator, logger *zap.Logger) *Service {
	return &Service{
		wines:     wines,
		records:   records,
		generator: generator,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetOrGenerate returns the profile for (wineID, language), generating and
// caching it on first request. The returned flag reports whether the profile
// was served from cache.
func (s *Service) GetOrGenerate(
	ctx context.Context, wineID uuid.UUID, language string,
) (narrative.Profile, bool, error) {
	lang, err := resolveLanguage(language)
	if err != nil {
		return narrative.Profile{}, false, err
	}

	wine, err := s.wines.FindByID(ctx, wineID)
	if err != nil {
		return narrative.Profile{}, false, fmt.Errorf("find wine: %w", err)
	}

	key := narrative.ProfileKey(wineID, lang)

	rec, err := s.records.Get(ctx, key)
	if err == nil {
		metrics.NarrativeCacheTotal.WithLabelValues(string(narrative.KindProfile), "hit").Inc()
		return narrative.BuildProfile(rec, wine.Name), true, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return narrative.Profile{}, false, fmt.Errorf("get record: %w", err)
	}

	metrics.NarrativeCacheTotal.WithLabelValues(string(narrative.KindProfile), "miss").Inc()
	s.logger.Info("Generating profile",
		zap.String("wine_id", wineID.String()),
		zap.String("language", lang),
	)

	doc, err := s.generator.GenerateProfile(ctx, wine, lang)
	if err != nil {
		return narrative.Profile{}, false, fmt.Errorf("generate profile: %w", err)
	}

	rec = narrative.Record{Key: key, Document: doc, CreatedAt: s.now()}

	if err := s.records.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrRecordExists) {
			// A concurrent request won the insert race. Serve its record so
			// every caller sees one canonical document per key.
			winner, getErr := s.records.Get(ctx, key)
			if getErr != nil {
				return narrative.Profile{}, false, fmt.Errorf("reread record after race: %w", getErr)
			}
			return narrative.BuildProfile(winner, wine.Name), true, nil
		}
		return narrative.Profile{}, false, fmt.Errorf("store record: %w", err)
	}

	return narrative.BuildProfile(rec, wine.Name), false, nil
}

// Regenerate discards any cached profile and generates a fresh one. The old
// record stays readable until the new document has been parsed and stored.
func (s *Service) Regenerate(
	ctx context.Context, wineID uuid.UUID, language string,
) (narrative.Profile, error) {
	lang, err := resolveLanguage(language)
	if err != nil {
		return narrative.Profile{}, err
	}

	wine, err := s.wines.FindByID(ctx, wineID)
	if err != nil {
		return narrative.Profile{}, fmt.Errorf("find wine: %w", err)
	}

	s.logger.Info("Regenerating profile",
		zap.String("wine_id", wineID.String()),
		zap.String("language", lang),
	)

	doc, err := s.generator.GenerateProfile(ctx, wine, lang)
	if err != nil {
		return narrative.Profile{}, fmt.Errorf("regenerate profile: %w", err)
	}

	rec := narrative.Record{
		Key:       narrative.ProfileKey(wineID, lang),
		Document:  doc,
		CreatedAt: s.now(),
	}
	if err := s.records.Replace(ctx, rec); err != nil {
		return narrative.Profile{}, fmt.Errorf("store record: %w", err)
	}

	return narrative.BuildProfile(rec, wine.Name), nil
}

// Exists reports whether a cached profile exists, without generating.
func (s *Service) Exists(ctx context.Context, wineID uuid.UUID, language string) (bool, error) {
	lang, err := resolveLanguage(language)
	if err != nil {
		return false, err
	}
	if _, err := s.wines.FindByID(ctx, wineID); err != nil {
		return false, fmt.Errorf("find wine: %w", err)
	}
	ok, err := s.records.Exists(ctx, narrative.ProfileKey(wineID, lang))
	if err != nil {
		return false, fmt.Errorf("check record: %w", err)
	}
	return ok, nil
}

// CacheStatus reports the cache metadata for (wineID, language): whether the
// requested language is generated, when, and which languages exist. Never
// triggers generation.
func (s *Service) CacheStatus(
	ctx context.Context, wineID uuid.UUID, language string,
) (narrative.CacheStatus, error) {
	lang, err := resolveLanguage(language)
	if err != nil {
		return narrative.CacheStatus{}, err
	}
	if _, err := s.wines.FindByID(ctx, wineID); err != nil {
		return narrative.CacheStatus{}, fmt.Errorf("find wine: %w", err)
	}

	key := narrative.ProfileKey(wineID, lang)
	status := narrative.CacheStatus{
		Status:             narrative.StatusNotRequested,
		RequestedLanguage:  lang,
		AvailableLanguages: []string{},
	}

	rec, err := s.records.Get(ctx, key)
	switch {
	case err == nil:
		status.Status = narrative.StatusGenerated
		generatedAt := rec.CreatedAt
		status.GeneratedAt = &generatedAt
	case !errors.Is(err, domain.ErrRecordNotFound):
		return narrative.CacheStatus{}, fmt.Errorf("get record: %w", err)
	}

	languages, err := s.records.Languages(ctx, key)
	if err != nil {
		return narrative.CacheStatus{}, fmt.Errorf("list languages: %w", err)
	}
	if len(languages) > 0 {
		status.AvailableLanguages = languages
	}

	return status, nil
}

// resolveLanguage validates and normalizes the request's language tag.
func resolveLanguage(language string) (string, error) {
	if !narrative.ValidLanguageTag(language) {
		return "", fmt.Errorf("language %q: %w", language, domain.ErrInvalidLanguage)
	}
	return narrative.NormalizeLanguage(language), nil
}
