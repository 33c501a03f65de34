package narrative

import (
	"regexp"
	"strings"
)

// DefaultLanguage is substituted when a request omits the language tag.
const DefaultLanguage = "es-AR"

// languageTagRe matches a two-letter primary subtag with an optional
// two-letter region subtag: "es", "en-US", "es-AR".
var languageTagRe = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// NormalizeLanguage trims the tag and substitutes the default for blank input.
func NormalizeLanguage(language string) string {
	language = strings.TrimSpace(language)
	if language == "" {
		return DefaultLanguage
	}
	return language
}

// ValidLanguageTag reports whether the tag is well-formed. Blank tags are
// valid at the boundary because they normalize to the default.
func ValidLanguageTag(language string) bool {
	if strings.TrimSpace(language) == "" {
		return true
	}
	return languageTagRe.MatchString(language)
}
