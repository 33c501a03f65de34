package wine

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the shape of the catalog YAML.
type seedFile struct {
	Wines []wineRow `yaml:"wines"`
}

// Seed loads the catalog YAML at path and upserts every wine. Existing
// entries are overwritten so the seed file stays the source of truth.
func (r *Repo) Seed(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	for i, row := range seed.Wines {
		w, err := wineFromRow(row)
		if err != nil {
			return 0, fmt.Errorf("seed wine %d: %w", i, err)
		}
		if err := r.Save(ctx, w); err != nil {
			return 0, fmt.Errorf("seed wine %s: %w", w.Name, err)
		}
	}

	return len(seed.Wines), nil
}
