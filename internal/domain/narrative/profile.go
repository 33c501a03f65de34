package narrative

import (
	"time"

	"github.com/google/uuid"
)

// TastingNotes describes a wine across the classic tasting stages.
type TastingNotes struct {
	Appearance string `json:"appearance,omitempty"`
	Aroma      string `json:"aroma,omitempty"`
	Palate     string `json:"palate,omitempty"`
	Finish     string `json:"finish,omitempty"`
}

// ServingRecommendations holds serving and storage guidance.
type ServingRecommendations struct {
	Temperature string `json:"temperature,omitempty"`
	Decanting   string `json:"decanting,omitempty"`
	GlassType   string `json:"glassType,omitempty"`
	StorageTips string `json:"storageTips,omitempty"`
}

// Profile is the typed view of a generated tasting profile. Every narrative
// field is optional: the source document may omit any key, and absence maps
// to a zero value, never an error. Raw carries the full document for clients
// that need unmapped fields.
type Profile struct {
	WineID      uuid.UUID               `json:"wineId"`
	WineName    string                  `json:"wineName,omitempty"`
	Language    string                  `json:"language"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Summary     string                  `json:"summary,omitempty"`
	Tasting     *TastingNotes           `json:"tastingNotes,omitempty"`
	Pairings    []string                `json:"foodPairings,omitempty"`
	Occasions   []string                `json:"occasions,omitempty"`
	FunFacts    []string                `json:"funFacts,omitempty"`
	Serving     *ServingRecommendations `json:"servingRecommendations,omitempty"`
	Raw         Document                `json:"rawProfile,omitempty"`
}
