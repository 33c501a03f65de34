package wine

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

// wineryRow is the serializable producer block.
type wineryRow struct {
	Name    string `json:"name" yaml:"name"`
	Region  string `json:"region,omitempty" yaml:"region"`
	Country string `json:"country,omitempty" yaml:"country"`
}

// wineRow is the serializable wine representation, shared between the
// stored JSON value and the YAML seed file.
type wineRow struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Type           string     `json:"type,omitempty" yaml:"type"`
	Vintage        int        `json:"vintage,omitempty" yaml:"vintage"`
	Style          string     `json:"style,omitempty" yaml:"style"`
	Grapes         []string   `json:"grapes,omitempty" yaml:"grapes"`
	AlcoholContent float64    `json:"alcohol_content,omitempty" yaml:"alcohol_content"`
	DescriptionES  string     `json:"description_es,omitempty" yaml:"description_es"`
	DescriptionEN  string     `json:"description_en,omitempty" yaml:"description_en"`
	Winery         *wineryRow `json:"winery,omitempty" yaml:"winery"`
}

func wineToBytes(w *domain.Wine) ([]byte, error) {
	raw, err := json.Marshal(wineToRow(w))
	if err != nil {
		return nil, fmt.Errorf("marshal wine: %w", err)
	}
	return raw, nil
}

func wineFromBytes(raw []byte) (*domain.Wine, error) {
	var row wineRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("unmarshal wine: %w", err)
	}
	return wineFromRow(row)
}

func wineToRow(w *domain.Wine) wineRow {
	row := wineRow{
		ID:             w.ID.String(),
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
		row.Winery = &wineryRow{
			Name:    w.Winery.Name,
			Region:  w.Winery.Region,
			Country: w.Winery.Country,
		}
	}
	return row
}

func wineFromRow(row wineRow) (*domain.Wine, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid wine id %q: %w", row.ID, err)
	}

	w := &domain.Wine{
		ID:             id,
		Name:           row.Name,
		Type:           domain.WineType(row.Type),
		Vintage:        row.Vintage,
		Style:          row.Style,
		Grapes:         row.Grapes,
		AlcoholContent: row.AlcoholContent,
		DescriptionES:  row.DescriptionES,
		DescriptionEN:  row.DescriptionEN,
	}
	if row.Winery != nil {
		w.Winery = &domain.Winery{
			Name:    row.Winery.Name,
			Region:  row.Winery.Region,
			Country: row.Winery.Country,
		}
	}
	return w, nil
}
