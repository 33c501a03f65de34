// Package prompt builds the system and user messages sent to the generation
// provider. Prompt text is pure wine-domain knowledge: what attributes matter
// and what output shape to demand.
package prompt

import (
	"fmt"
	"strings"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

const profileJSONSchema = `{
  "summary": "string - A comprehensive description of the wine",
  "tastingNotes": {
    "appearance": "string - Visual characteristics",
    "aroma": "string - Nose/bouquet description",
    "palate": "string - Taste and mouthfeel",
    "finish": "string - Aftertaste description"
  },
  "foodPairings": ["string array - Recommended food pairings"],
  "occasions": ["string array - Suggested occasions"],
  "funFacts": ["string array - Interesting facts about the wine or region"],
  "servingRecommendations": {
    "temperature": "string - Serving temperature",
    "decanting": "string - Decanting recommendations",
    "glassType": "string - Recommended glass type",
    "storageTips": "string - Storage recommendations"
  }
}`

const comparisonJSONSchema = `{
  "summary": "string - Overall comparison summary",
  "attributeComparison": {
    "appearance": {"wineA": "string", "wineB": "string", "comparison": "string"},
    "aroma": {"wineA": "string", "wineB": "string", "comparison": "string"},
    "palate": {"wineA": "string", "wineB": "string", "comparison": "string"},
    "finish": {"wineA": "string", "wineB": "string", "comparison": "string"}
  },
  "similarities": ["string array - Key similarities"],
  "differences": ["string array - Key differences"],
  "foodPairings": {
    "wineA": ["string array"],
    "wineB": ["string array"],
    "shared": ["string array"]
  },
  "occasions": {
    "wineA": ["string array"],
    "wineB": ["string array"]
  },
  "valueAssessment": "string - Price/quality assessment",
  "recommendation": {
    "chooseWineAIf": "string",
    "chooseWineBIf": "string",
    "overallNote": "string"
  }
}`

// Builder assembles generation prompts. Stateless; safe for concurrent use.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ProfileSystemMessage returns the system instruction for profile generation.
func (b *Builder) ProfileSystemMessage(language string) string {
	return fmt.Sprintf(`You are a world-class sommelier and wine expert with decades of experience.
Your task is to create engaging, informative wine profiles that help consumers
appreciate and understand wines better.

Guidelines:
- Write in %s
- Be descriptive and evocative, but accurate
- Use professional wine terminology appropriately
- Make content accessible to both novices and experts
- Be creative with food pairings and occasion suggestions
- Include interesting historical or regional context when relevant
- Always respond with valid JSON only
`, LanguageName(language))
}

// ComparisonSystemMessage returns the system instruction for comparison generation.
func (b *Builder) ComparisonSystemMessage(language string) string {
	return fmt.Sprintf(`You are a world-class sommelier and wine expert with decades of experience.
Your task is to provide insightful wine comparisons that help consumers
understand the differences and similarities between wines.

Guidelines:
- Write in %s
- Be fair and objective in comparisons
- Highlight both similarities and differences
- Provide practical recommendations for when to choose each wine
- Consider price/value when relevant
- Use professional wine terminology appropriately
- Make content accessible to both novices and experts
- Always respond with valid JSON only
`, LanguageName(language))
}

// ProfilePrompt returns the user prompt for a single-wine tasting profile.
func (b *Builder) ProfilePrompt(wine *domain.Wine, language string) string {
	var sb strings.Builder

	sb.WriteString("Generate a detailed wine profile for the following wine:\n\n")
	sb.WriteString("## Wine Information\n")
	fmt.Fprintf(&sb, "- **Name**: %s\n", wine.Name)
	appendWineDetails(&sb, wine)

	if winery := wine.Winery; winery != nil && winery.Country != "" {
		fmt.Fprintf(&sb, "- **Country**: %s\n", winery.Country)
	}

	if desc := wine.Description(language); desc != "" {
		sb.WriteString("\n## Existing Description\n")
		sb.WriteString(desc)
		sb.WriteString("\n")
	}

	appendOutputRequirements(&sb, language, profileJSONSchema, "a response")
	return sb.String()
}

// ComparisonPrompt returns the user prompt for a two-wine comparison.
// Wine A and wine B follow the order the caller passes, which the
// orchestrator has already normalized.
func (b *Builder) ComparisonPrompt(wineA, wineB *domain.Wine, language string) string {
	var sb strings.Builder

	sb.WriteString("Compare the following two wines:\n\n")

	fmt.Fprintf(&sb, "## Wine A: %s\n", wineA.Name)
	appendWineDetails(&sb, wineA)

	fmt.Fprintf(&sb, "\n## Wine B: %s\n", wineB.Name)
	appendWineDetails(&sb, wineB)

	appendOutputRequirements(&sb, language, comparisonJSONSchema, "a detailed comparison")
	return sb.String()
}

func appendWineDetails(sb *strings.Builder, wine *domain.Wine) {
	if wine.Type != "" {
		fmt.Fprintf(sb, "- **Type**: %s\n", wine.Type)
	}
	if wine.Vintage > 0 {
		fmt.Fprintf(sb, "- **Vintage**: %d\n", wine.Vintage)
	}
	if wine.Style != "" {
		fmt.Fprintf(sb, "- **Style**: %s\n", wine.Style)
	}
	if len(wine.Grapes) > 0 {
		fmt.Fprintf(sb, "- **Grapes**: %s\n", strings.Join(wine.Grapes, ", "))
	}
	if wine.AlcoholContent > 0 {
		fmt.Fprintf(sb, "- **Alcohol**: %.1f%%\n", wine.AlcoholContent)
	}
	if winery := wine.Winery; winery != nil {
		fmt.Fprintf(sb, "- **Winery**: %s\n", winery.Name)
		if winery.Region != "" {
			fmt.Fprintf(sb, "- **Region**: %s\n", winery.Region)
		}
	}
}

func appendOutputRequirements(sb *strings.Builder, language, schema, what string) {
	sb.WriteString("\n## Output Requirements\n")
	fmt.Fprintf(sb, "Please provide %s in **%s**.\n", what, LanguageName(language))
	sb.WriteString("The response must be valid JSON matching this schema:\n")
	fmt.Fprintf(sb, "```json\n%s\n```\n", schema)
	sb.WriteString("\nRespond ONLY with the JSON object, no additional text.\n")
}

// LanguageName maps a language tag to the name used inside prompts.
// Unknown tags fall back to the default locale's name.
func LanguageName(languageCode string) string {
	switch strings.ToLower(languageCode) {
	case "en-us", "en":
		return "English (United States)"
	case "en-gb":
		return "English (United Kingdom)"
	case "es-ar":
		return "Spanish (Argentina)"
	case "es-es":
		return "Spanish (Spain)"
	case "es":
		return "Spanish"
	default:
		return "Spanish (Argentina)"
	}
}
