package narrative

import (
	"time"

	"github.com/google/uuid"
)

// Attribute contrasts one tasting dimension between the two wines.
type Attribute struct {
	WineA      string `json:"wineA,omitempty"`
	WineB      string `json:"wineB,omitempty"`
	Comparison string `json:"comparison,omitempty"`
}

// AttributeComparison contrasts the wines dimension by dimension.
type AttributeComparison struct {
	Appearance *Attribute `json:"appearance,omitempty"`
	Aroma      *Attribute `json:"aroma,omitempty"`
	Palate     *Attribute `json:"palate,omitempty"`
	Finish     *Attribute `json:"finish,omitempty"`
	Body       *Attribute `json:"body,omitempty"`
	Acidity    *Attribute `json:"acidity,omitempty"`
	Tannins    *Attribute `json:"tannins,omitempty"`
}

// PairingComparison lists food pairings per wine plus shared suggestions.
type PairingComparison struct {
	WineA  []string `json:"wineA,omitempty"`
	WineB  []string `json:"wineB,omitempty"`
	Shared []string `json:"shared,omitempty"`
}

// OccasionComparison lists suggested occasions per wine.
type OccasionComparison struct {
	WineA []string `json:"wineA,omitempty"`
	WineB []string `json:"wineB,omitempty"`
}

// Recommendation summarizes when to pick which wine.
type Recommendation struct {
	ChooseWineAIf string `json:"chooseWineAIf,omitempty"`
	ChooseWineBIf string `json:"chooseWineBIf,omitempty"`
	OverallNote   string `json:"overallNote,omitempty"`
}

// Comparison is the typed view of a generated head-to-head comparison.
// WineA/WineB follow the normalized storage order, not the caller's order.
type Comparison struct {
	WineAID         uuid.UUID            `json:"wineAId"`
	WineAName       string               `json:"wineAName,omitempty"`
	WineBID         uuid.UUID            `json:"wineBId"`
	WineBName       string               `json:"wineBName,omitempty"`
	Language        string               `json:"language"`
	GeneratedAt     time.Time            `json:"generatedAt"`
	Summary         string               `json:"summary,omitempty"`
	Attributes      *AttributeComparison `json:"attributeComparison,omitempty"`
	Similarities    []string             `json:"similarities,omitempty"`
	Differences     []string             `json:"differences,omitempty"`
	Pairings        *PairingComparison   `json:"foodPairings,omitempty"`
	Occasions       *OccasionComparison  `json:"occasions,omitempty"`
	ValueAssessment string               `json:"valueAssessment,omitempty"`
	Recommendation  *Recommendation      `json:"recommendation,omitempty"`
	Raw             Document             `json:"rawComparison,omitempty"`
}
