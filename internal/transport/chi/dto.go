package chi

import (
	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

// wineryResponse is the API view of a producer.
type wineryResponse struct {
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
}

// wineResponse is the API view of a catalog wine.
type wineResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type,omitempty"`
	Vintage        int             `json:"vintage,omitempty"`
	Style          string          `json:"style,omitempty"`
	Grapes         []string        `json:"grapes,omitempty"`
	AlcoholContent float64         `json:"alcoholContent,omitempty"`
	DescriptionES  string          `json:"descriptionEs,omitempty"`
	DescriptionEN  string          `json:"descriptionEn,omitempty"`
	Winery         *wineryResponse `json:"winery,omitempty"`
}

// wineListResponse wraps the catalog listing.
type wineListResponse struct {
	Items []wineResponse `json:"items"`
	Total int            `json:"total"`
}

func wineToResponse(w *domain.Wine) wineResponse {
	resp := wineResponse{
		ID:             w.ID,
		Name:           w.Name,
		Type:           string(w.Type),
		Vintage:        w.Vintage,
		Style:          w.Style,
		Grapes:         w.Grapes,
		AlcoholContent: w.AlcoholContent,
		DescriptionES:  w.DescriptionES,
		DescriptionEN:  w.DescriptionEN,
	}
	if w.Winery != nil {
		resp.Winery = &wineryResponse{
			Name:    w.Winery.Name,
			Region:  w.Winery.Region,
			Country: w.Winery.Country,
		}
	}
	return resp
}
