// Package mockai is a deterministic generation provider for development and
// testing. It produces realistic-looking narratives without any external call.
package mockai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
)

// Generator implements domain.Generator with canned content. Output is
// selected per language family: tags starting with "es" get Spanish text,
// everything else English.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates the mock provider.
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger}
}

// Name implements domain.Generator.
func (g *Generator) Name() string { return "mock" }

// GenerateProfile implements domain.Generator.
func (g *Generator) GenerateProfile(
	_ context.Context, wine *domain.Wine, language string,
) (narrative.Document, error) {
	g.logger.Info("Generating mock profile",
		zap.String("wine_id", wine.ID.String()),
		zap.String("wine_name", wine.Name),
		zap.String("language", language),
	)

	spanish := strings.HasPrefix(language, "es")

	return narrative.Document{
		"summary":                profileSummary(wine, spanish),
		"tastingNotes":           tastingNotes(spanish),
		"foodPairings":           foodPairings(spanish),
		"occasions":              occasions(spanish),
		"funFacts":               funFacts(spanish),
		"servingRecommendations": servingRecommendations(spanish),
	}, nil
}

// GenerateComparison implements domain.Generator.
func (g *Generator) GenerateComparison(
	_ context.Context, wineA, wineB *domain.Wine, language string,
) (narrative.Document, error) {
	g.logger.Info("Generating mock comparison",
		zap.String("wine_a", wineA.Name),
		zap.String("wine_b", wineB.Name),
		zap.String("language", language),
	)

	spanish := strings.HasPrefix(language, "es")

	return narrative.Document{
		"summary":             comparisonSummary(wineA, wineB, spanish),
		"attributeComparison": attributeComparison(spanish),
		"similarities":        similarities(spanish),
		"differences":         differences(wineA, wineB, spanish),
		"foodPairings":        pairingComparison(spanish),
		"occasions":           occasionComparison(spanish),
		"valueAssessment":     valueAssessment(spanish),
		"recommendation":      recommendation(wineA, wineB, spanish),
	}, nil
}

func profileSummary(wine *domain.Wine, spanish bool) string {
	if spanish {
		return fmt.Sprintf(
			"El %s es un vino %s excepcional que destaca por su carácter único y elegancia. "+
				"Con una personalidad distintiva, este vino refleja la pasión y el cuidado "+
				"de sus creadores. Ideal para quienes aprecian los vinos con historia y calidad.",
			wine.Name, typeLabelES(wine.Type))
	}
	return fmt.Sprintf(
		"The %s is an exceptional %s wine that stands out for its unique character and elegance. "+
			"With a distinctive personality, this wine reflects the passion and care of its creators. "+
			"Ideal for those who appreciate wines with history and quality.",
		wine.Name, wine.TypeLabel())
}

func tastingNotes(spanish bool) map[string]any {
	if spanish {
		return map[string]any{
			"appearance": "Color brillante con reflejos característicos de la variedad.",
			"aroma":      "Aromas complejos con notas frutales y un toque especiado.",
			"palate":     "En boca presenta un equilibrio excelente con taninos sedosos.",
			"finish":     "Final largo y persistente con notas de fruta madura.",
		}
	}
	return map[string]any{
		"appearance": "Brilliant color with characteristic reflections of the variety.",
		"aroma":      "Complex aromas with fruity notes and a spicy touch.",
		"palate":     "On the palate, it presents excellent balance with silky tannins.",
		"finish":     "Long and persistent finish with ripe fruit notes.",
	}
}

func foodPairings(spanish bool) []any {
	if spanish {
		return []any{
			"Carnes rojas a la parrilla",
			"Pastas con salsas robustas",
			"Quesos maduros",
			"Risotto de hongos",
			"Empanadas argentinas",
		}
	}
	return []any{
		"Grilled red meats",
		"Pasta with robust sauces",
		"Aged cheeses",
		"Mushroom risotto",
		"Argentine empanadas",
	}
}

func occasions(spanish bool) []any {
	if spanish {
		return []any{
			"Cenas especiales con amigos",
			"Celebraciones familiares",
			"Maridajes gastronómicos",
			"Momentos de reflexión",
		}
	}
	return []any{
		"Special dinners with friends",
		"Family celebrations",
		"Gastronomic pairings",
		"Moments of reflection",
	}
}

func funFacts(spanish bool) []any {
	if spanish {
		return []any{
			"La región donde se produce este vino tiene más de 150 años de tradición vitivinícola.",
			"Las uvas se cosechan a mano para asegurar la máxima calidad.",
			"El proceso de vinificación combina técnicas tradicionales con tecnología moderna.",
		}
	}
	return []any{
		"The region where this wine is produced has over 150 years of winemaking tradition.",
		"The grapes are harvested by hand to ensure maximum quality.",
		"The winemaking process combines traditional techniques with modern technology.",
	}
}

func servingRecommendations(spanish bool) map[string]any {
	if spanish {
		return map[string]any{
			"temperature": "Servir entre 16-18°C",
			"decanting":   "Se recomienda decantar 30 minutos antes de servir",
			"glassType":   "Copa de vino tinto amplia tipo Bordeaux",
			"storageTips": "Conservar en lugar fresco y oscuro, temperatura constante",
		}
	}
	return map[string]any{
		"temperature": "Serve between 16-18°C",
		"decanting":   "Recommended to decant 30 minutes before serving",
		"glassType":   "Wide Bordeaux-style red wine glass",
		"storageTips": "Store in a cool, dark place at constant temperature",
	}
}

func comparisonSummary(wineA, wineB *domain.Wine, spanish bool) string {
	if spanish {
		return fmt.Sprintf(
			"Comparando %s con %s, encontramos dos vinos con personalidades únicas. "+
				"Ambos representan excelentes ejemplos de la tradición vitivinícola, "+
				"pero ofrecen experiencias distintas para el paladar del conocedor.",
			wineA.Name, wineB.Name)
	}
	return fmt.Sprintf(
		"Comparing %s with %s, we find two wines with unique personalities. "+
			"Both represent excellent examples of winemaking tradition, "+
			"but offer distinct experiences for the connoisseur's palate.",
		wineA.Name, wineB.Name)
}

func attribute(wineA, wineB, comparison string) map[string]any {
	return map[string]any{"wineA": wineA, "wineB": wineB, "comparison": comparison}
}

func attributeComparison(spanish bool) map[string]any {
	if spanish {
		return map[string]any{
			"appearance": attribute(
				"Color profundo con reflejos brillantes",
				"Color intenso con tonos característicos",
				"Ambos presentan excelente claridad"),
			"aroma": attribute(
				"Aromas frutales con notas especiadas",
				"Bouquet complejo con matices florales",
				"Intensidades aromáticas similares"),
			"palate": attribute(
				"Estructura robusta con taninos firmes",
				"Cuerpo elegante con acidez equilibrada",
				"Diferentes perfiles de boca"),
			"finish": attribute(
				"Final largo y persistente",
				"Retrogusto prolongado y agradable",
				"Ambos con finales memorables"),
		}
	}
	return map[string]any{
		"appearance": attribute(
			"Deep color with brilliant reflections",
			"Intense color with characteristic tones",
			"Both show excellent clarity"),
		"aroma": attribute(
			"Fruity aromas with spicy notes",
			"Complex bouquet with floral nuances",
			"Similar aromatic intensities"),
		"palate": attribute(
			"Robust structure with firm tannins",
			"Elegant body with balanced acidity",
			"Different palate profiles"),
		"finish": attribute(
			"Long and persistent finish",
			"Prolonged and pleasant aftertaste",
			"Both with memorable finishes"),
	}
}

func similarities(spanish bool) []any {
	if spanish {
		return []any{
			"Ambos vinos provienen de viñedos de alta calidad",
			"Comparten un perfil de envejecimiento similar",
			"Excelente potencial de guarda",
			"Ideales para acompañar carnes",
		}
	}
	return []any{
		"Both wines come from high-quality vineyards",
		"They share a similar aging profile",
		"Excellent cellaring potential",
		"Ideal for pairing with meats",
	}
}

func differences(wineA, wineB *domain.Wine, spanish bool) []any {
	if spanish {
		return []any{
			fmt.Sprintf("%s tiene mayor intensidad tánica", wineA.Name),
			fmt.Sprintf("%s presenta más notas frutales", wineB.Name),
			"Diferentes perfiles de acidez",
			"Variaciones en el cuerpo y estructura",
		}
	}
	return []any{
		fmt.Sprintf("%s has greater tannic intensity", wineA.Name),
		fmt.Sprintf("%s presents more fruity notes", wineB.Name),
		"Different acidity profiles",
		"Variations in body and structure",
	}
}

func pairingComparison(spanish bool) map[string]any {
	if spanish {
		return map[string]any{
			"wineA":  []any{"Asado argentino", "Cordero al horno", "Quesos curados"},
			"wineB":  []any{"Pasta con ragú", "Ternera a la parrilla", "Hongos salteados"},
			"shared": []any{"Carnes rojas", "Empanadas", "Quesos semiduros"},
		}
	}
	return map[string]any{
		"wineA":  []any{"Argentine asado", "Roasted lamb", "Aged cheeses"},
		"wineB":  []any{"Pasta with ragú", "Grilled beef", "Sautéed mushrooms"},
		"shared": []any{"Red meats", "Empanadas", "Semi-hard cheeses"},
	}
}

func occasionComparison(spanish bool) map[string]any {
	if spanish {
		return map[string]any{
			"wineA": []any{"Celebraciones formales", "Cenas de negocios", "Aniversarios"},
			"wineB": []any{"Reuniones con amigos", "Asados de fin de semana", "Cenas románticas"},
		}
	}
	return map[string]any{
		"wineA": []any{"Formal celebrations", "Business dinners", "Anniversaries"},
		"wineB": []any{"Gatherings with friends", "Weekend barbecues", "Romantic dinners"},
	}
}

func valueAssessment(spanish bool) string {
	if spanish {
		return "Ambos vinos ofrecen una excelente relación calidad-precio, " +
			"representando el valor de sus respectivas bodegas y regiones."
	}
	return "Both wines offer excellent value for money, " +
		"representing the worth of their respective wineries and regions."
}

func recommendation(wineA, wineB *domain.Wine, spanish bool) map[string]any {
	if spanish {
		return map[string]any{
			"chooseWineAIf": fmt.Sprintf(
				"Elige %s si prefieres vinos con mayor estructura y taninos pronunciados", wineA.Name),
			"chooseWineBIf": fmt.Sprintf(
				"Elige %s si buscas un vino más accesible y frutal", wineB.Name),
			"overallNote": "Ambos son excelentes opciones que satisfarán a cualquier amante del vino",
		}
	}
	return map[string]any{
		"chooseWineAIf": fmt.Sprintf(
			"Choose %s if you prefer wines with more structure and pronounced tannins", wineA.Name),
		"chooseWineBIf": fmt.Sprintf(
			"Choose %s if you're looking for a more accessible and fruity wine", wineB.Name),
		"overallNote": "Both are excellent choices that will satisfy any wine lover",
	}
}

func typeLabelES(t domain.WineType) string {
	switch t {
	case domain.WineTypeRed:
		return "tinto"
	case domain.WineTypeWhite:
		return "blanco"
	case domain.WineTypeRose:
		return "rosado"
	case domain.WineTypeSparkling:
		return "espumante"
	case domain.WineTypeDessert:
		return "de postre"
	case domain.WineTypeFortified:
		return "fortificado"
	case domain.WineTypeOrange:
		return "naranja"
	case "":
		return "wine"
	default:
		return strings.ToLower(string(t))
	}
}
