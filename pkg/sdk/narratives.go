package sommelier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wines lists the catalog sorted by name.
func (c *Client) Wines(ctx context.Context) (wines []*Wine, err error) {
	start := time.Now()
	defer func() { c.obs.observe("wines.list", start, err) }()

	wines, err = c.wineSvc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}
	return wines, nil
}

// Wine fetches a single wine by id.
func (c *Client) Wine(ctx context.Context, id uuid.UUID) (w *Wine, err error) {
	start := time.Now()
	defer func() { c.obs.observe("wines.get", start, err) }()

	w, err = c.wineSvc.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get wine: %w", err)
	}
	return w, nil
}

// SaveWine inserts or replaces a catalog wine.
func (c *Client) SaveWine(ctx context.Context, w *Wine) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("wines.save", start, err) }()

	if err = c.wines.Save(ctx, w); err != nil {
		return fmt.Errorf("save wine: %w", err)
	}
	return nil
}

// Profile returns the tasting profile for a wine in the given language,
// generating and caching it on first request. An empty language selects the
// default (es-AR). cached reports whether the profile came from the cache.
func (c *Client) Profile(
	ctx context.Context, wineID uuid.UUID, language string,
) (p Profile, cached bool, err error) {
	start := time.Now()
	defer func() { c.obs.observe("profile.get", start, err) }()

	return c.profileSvc.GetOrGenerate(ctx, wineID, language)
}

// RegenerateProfile discards the cached profile and generates a fresh one.
func (c *Client) RegenerateProfile(
	ctx context.Context, wineID uuid.UUID, language string,
) (p Profile, err error) {
	start := time.Now()
	defer func() { c.obs.observe("profile.regenerate", start, err) }()

	return c.profileSvc.Regenerate(ctx, wineID, language)
}

// ProfileStatus reports cache metadata for a wine's profile without
// triggering generation.
func (c *Client) ProfileStatus(
	ctx context.Context, wineID uuid.UUID, language string,
) (s CacheStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("profile.status", start, err) }()

	return c.profileSvc.CacheStatus(ctx, wineID, language)
}

// Compare returns the head-to-head comparison of two wines, generating and
// caching it on first request. The pair is unordered: Compare(a, b, lang)
// and Compare(b, a, lang) share one cached document.
func (c *Client) Compare(
	ctx context.Context, wineAID, wineBID uuid.UUID, language string,
) (cmp Comparison, cached bool, err error) {
	start := time.Now()
	defer func() { c.obs.observe("comparison.get", start, err) }()

	return c.comparisonSvc.GetOrGenerate(ctx, wineAID, wineBID, language)
}

// RegenerateComparison discards the cached comparison and generates a fresh one.
func (c *Client) RegenerateComparison(
	ctx context.Context, wineAID, wineBID uuid.UUID, language string,
) (cmp Comparison, err error) {
	start := time.Now()
	defer func() { c.obs.observe("comparison.regenerate", start, err) }()

	return c.comparisonSvc.Regenerate(ctx, wineAID, wineBID, language)
}

// ComparisonStatus reports cache metadata for a pair without triggering
// generation.
func (c *Client) ComparisonStatus(
	ctx context.Context, wineAID, wineBID uuid.UUID, language string,
) (s CacheStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("comparison.status", start, err) }()

	return c.comparisonSvc.CacheStatus(ctx, wineAID, wineBID, language)
}
