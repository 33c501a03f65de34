package sommelier

import (
	"context"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
)

// Catalog types re-exported from the domain layer.
type (
	Wine   = domain.Wine
	Winery = domain.Winery
)

// Narrative views re-exported from the domain layer. These are the same
// structures the HTTP API serializes.
type (
	Profile     = narrative.Profile
	Comparison  = narrative.Comparison
	CacheStatus = narrative.CacheStatus
)

// Generator produces narrative documents. Implement it to plug a custom
// provider into the client; the returned map must follow the profile and
// comparison JSON shapes.
type Generator interface {
	GenerateProfile(ctx context.Context, wine *Wine, language string) (map[string]any, error)
	GenerateComparison(ctx context.Context, wineA, wineB *Wine, language string) (map[string]any, error)
}

// OpenAIConfig configures the OpenAI-compatible generation provider.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string // empty = api.openai.com
	Model       string // empty = gpt-4o-mini
	MaxTokens   int
	Temperature float64
	MaxRetries  int
}
