package narrative

import (
	"encoding/json"
	"fmt"
	"time"

	domnar "github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
)

// recordRow is the JSON-serializable representation of a stored record.
// The key fields are not persisted; they are encoded in the storage key.
type recordRow struct {
	Document  domnar.Document `json:"document"`
	CreatedAt int64           `json:"created_at"` // unix millis
}

func recordToBytes(rec domnar.Record) ([]byte, error) {
	raw, err := json.Marshal(recordRow{
		Document:  rec.Document,
		CreatedAt: rec.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return raw, nil
}

func recordFromBytes(key domnar.Key, raw []byte) (domnar.Record, error) {
	var row recordRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return domnar.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return domnar.Record{
		Key:       key,
		Document:  row.Document,
		CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
	}, nil
}
