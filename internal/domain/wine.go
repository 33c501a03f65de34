// Package domain holds the core entities and contracts of the sommelier service.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// WineType classifies a wine by vinification style.
type WineType string

// Known wine types. The catalog is externally owned, so unknown values pass through.
const (
	WineTypeRed       WineType = "RED"
	WineTypeWhite     WineType = "WHITE"
	WineTypeRose      WineType = "ROSE"
	WineTypeSparkling WineType = "SPARKLING"
	WineTypeDessert   WineType = "DESSERT"
	WineTypeFortified WineType = "FORTIFIED"
	WineTypeOrange    WineType = "ORANGE"
)

// Winery holds the producer attributes used for prompt building.
type Winery struct {
	Name    string
	Region  string
	Country string
}

// Wine is a read-only catalog entry. The service never mutates wines;
// they exist here only as generation subjects.
type Wine struct {
	ID             uuid.UUID
	Name           string
	Type           WineType
	Vintage        int
	Style          string
	Grapes         []string
	AlcoholContent float64
	DescriptionES  string
	DescriptionEN  string
	Winery         *Winery
}

// Description returns the description matching the language's primary subtag,
// falling back to the English text.
func (w *Wine) Description(language string) string {
	if strings.HasPrefix(language, "es") && w.DescriptionES != "" {
		return w.DescriptionES
	}
	return w.DescriptionEN
}

// TypeLabel returns a lowercase human-readable wine type for narrative text.
func (w *Wine) TypeLabel() string {
	if w.Type == "" {
		return "wine"
	}
	return strings.ToLower(string(w.Type))
}
