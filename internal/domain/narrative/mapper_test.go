package narrative

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	wineAID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	wineBID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func profileRecord(doc Document) Record {
	return Record{
		Key:       ProfileKey(wineAID, "es-AR"),
		Document:  doc,
		CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildProfile_FullDocument(t *testing.T) {
	rec := profileRecord(Document{
		"summary": "Un Malbec excepcional",
		"tastingNotes": map[string]any{
			"appearance": "Rojo profundo",
			"aroma":      "Ciruela y vainilla",
			"palate":     "Taninos sedosos",
			"finish":     "Largo y especiado",
		},
		"foodPairings": []any{"Asado", "Empanadas"},
		"occasions":    []any{"Cena formal"},
		"funFacts":     []any{"El Malbec llegó a Argentina en 1853"},
		"servingRecommendations": map[string]any{
			"temperature": "16-18°C",
			"decanting":   "30 minutos",
			"glassType":   "Copa Burdeos",
			"storageTips": "Lugar fresco y oscuro",
		},
	})

	p := BuildProfile(rec, "Malbec Reserva")

	if p.WineID != wineAID {
		t.Errorf("WineID = %s", p.WineID)
	}
	if p.WineName != "Malbec Reserva" {
		t.Errorf("WineName = %q", p.WineName)
	}
	if p.Language != "es-AR" {
		t.Errorf("Language = %q", p.Language)
	}
	if p.Summary != "Un Malbec excepcional" {
		t.Errorf("Summary = %q", p.Summary)
	}
	if p.Tasting == nil || p.Tasting.Aroma != "Ciruela y vainilla" {
		t.Errorf("Tasting = %+v", p.Tasting)
	}
	if len(p.Pairings) != 2 || p.Pairings[0] != "Asado" {
		t.Errorf("Pairings = %v", p.Pairings)
	}
	if p.Serving == nil || p.Serving.Temperature != "16-18°C" {
		t.Errorf("Serving = %+v", p.Serving)
	}
	if p.GeneratedAt != rec.CreatedAt {
		t.Errorf("GeneratedAt = %v", p.GeneratedAt)
	}
}

func TestBuildProfile_EmptyDocument(t *testing.T) {
	p := BuildProfile(profileRecord(Document{}), "Malbec Reserva")

	if p.Summary != "" {
		t.Errorf("Summary = %q", p.Summary)
	}
	if p.Tasting != nil {
		t.Errorf("Tasting = %+v, want nil", p.Tasting)
	}
	if p.Serving != nil {
		t.Errorf("Serving = %+v, want nil", p.Serving)
	}
	if p.Pairings != nil {
		t.Errorf("Pairings = %v, want nil", p.Pairings)
	}
}

func TestBuildProfile_IllTypedFields(t *testing.T) {
	// Wrong types map to zero values, never panic.
	p := BuildProfile(profileRecord(Document{
		"summary":      42,
		"tastingNotes": "not an object",
		"foodPairings": []any{"Asado", 7, "Queso"},
		"occasions":    "not a list",
	}), "Malbec Reserva")

	if p.Summary != "" {
		t.Errorf("Summary = %q", p.Summary)
	}
	if p.Tasting != nil {
		t.Errorf("Tasting = %+v, want nil", p.Tasting)
	}
	if len(p.Pairings) != 2 {
		t.Errorf("Pairings = %v, want non-string elements skipped", p.Pairings)
	}
	if p.Occasions != nil {
		t.Errorf("Occasions = %v, want nil", p.Occasions)
	}
}

func TestBuildProfile_PreservesRawDocument(t *testing.T) {
	doc := Document{
		"summary":     "ok",
		"customField": map[string]any{"anything": "goes"},
	}
	p := BuildProfile(profileRecord(doc), "Malbec Reserva")

	if _, ok := p.Raw["customField"]; !ok {
		t.Error("Raw dropped an unmapped field")
	}
}

func TestBuildComparison_FullDocument(t *testing.T) {
	rec := Record{
		Key: ComparisonKey(wineAID, wineBID, "en-US"),
		Document: Document{
			"summary": "Two very different wines",
			"attributeComparison": map[string]any{
				"appearance": map[string]any{
					"wineA":      "Deep red",
					"wineB":      "Pale gold",
					"comparison": "Opposite ends of the spectrum",
				},
				"aroma": "not an object",
			},
			"similarities": []any{"Both from Mendoza"},
			"differences":  []any{"Color", "Body"},
			"foodPairings": map[string]any{
				"wineA":  []any{"Steak"},
				"wineB":  []any{"Seafood"},
				"shared": []any{"Hard cheese"},
			},
			"occasions": map[string]any{
				"wineA": []any{"Winter dinners"},
				"wineB": []any{"Summer lunches"},
			},
			"valueAssessment": "Comparable value",
			"recommendation": map[string]any{
				"chooseWineAIf": "You want structure",
				"chooseWineBIf": "You want freshness",
				"overallNote":   "Both excellent",
			},
		},
		CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	c := BuildComparison(rec, "Malbec Reserva", "Chardonnay Gran Reserva")

	if c.WineAID != wineAID || c.WineBID != wineBID {
		t.Errorf("pair = (%s, %s)", c.WineAID, c.WineBID)
	}
	if c.WineAName != "Malbec Reserva" || c.WineBName != "Chardonnay Gran Reserva" {
		t.Errorf("names = (%q, %q)", c.WineAName, c.WineBName)
	}
	if c.Attributes == nil || c.Attributes.Appearance == nil {
		t.Fatalf("Attributes = %+v", c.Attributes)
	}
	if c.Attributes.Appearance.WineB != "Pale gold" {
		t.Errorf("appearance.wineB = %q", c.Attributes.Appearance.WineB)
	}
	if c.Attributes.Aroma != nil {
		t.Errorf("ill-typed aroma = %+v, want nil", c.Attributes.Aroma)
	}
	if c.Pairings == nil || len(c.Pairings.Shared) != 1 {
		t.Errorf("Pairings = %+v", c.Pairings)
	}
	if c.Occasions == nil || c.Occasions.WineA[0] != "Winter dinners" {
		t.Errorf("Occasions = %+v", c.Occasions)
	}
	if c.Recommendation == nil || c.Recommendation.OverallNote != "Both excellent" {
		t.Errorf("Recommendation = %+v", c.Recommendation)
	}
}

func TestBuildComparison_EmptyDocument(t *testing.T) {
	rec := Record{Key: ComparisonKey(wineAID, wineBID, "es-AR"), Document: Document{}}

	c := BuildComparison(rec, "A", "B")

	if c.Attributes != nil || c.Pairings != nil || c.Occasions != nil || c.Recommendation != nil {
		t.Errorf("empty document produced non-nil sections: %+v", c)
	}
}

func TestProfileKey(t *testing.T) {
	k := ProfileKey(wineAID, "es-AR")
	if k.Kind != KindProfile {
		t.Errorf("Kind = %q", k.Kind)
	}
	if k.WineB != (uuid.UUID{}) {
		t.Errorf("WineB = %s, want zero", k.WineB)
	}
}

func TestComparisonKey(t *testing.T) {
	k := ComparisonKey(wineAID, wineBID, "en-US")
	if k.Kind != KindComparison {
		t.Errorf("Kind = %q", k.Kind)
	}
	if k.WineA != wineAID || k.WineB != wineBID {
		t.Errorf("pair = (%s, %s)", k.WineA, k.WineB)
	}
}
