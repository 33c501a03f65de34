package domain

import (
	"context"

	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
)

// Generator produces narrative documents for wines. The real provider and the
// deterministic mock are interchangeable implementations selected once at startup.
type Generator interface {
	// GenerateProfile returns a tasting profile document in the given language.
	GenerateProfile(ctx context.Context, wine *Wine, language string) (narrative.Document, error)
	// GenerateComparison returns a head-to-head comparison document. Callers pass
	// the wines in normalized order; the document's wineA/wineB follow that order.
	GenerateComparison(ctx context.Context, wineA, wineB *Wine, language string) (narrative.Document, error)
	// Name identifies the provider for logging and metrics.
	Name() string
}
