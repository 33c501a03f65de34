package narrative

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the two record shapes.
type Kind string

// Record kinds.
const (
	KindProfile    Kind = "profile"
	KindComparison Kind = "comparison"
)

// Key identifies one generated record. For comparisons, WineA/WineB carry the
// already-normalized pair (WineA sorts before WineB); every cache read, write,
// existence check, and delete goes through a normalized key. WineB is the zero
// UUID for profiles.
type Key struct {
	Kind     Kind
	WineA    uuid.UUID
	WineB    uuid.UUID
	Language string
}

// ProfileKey builds a profile record key.
func ProfileKey(wineID uuid.UUID, language string) Key {
	return Key{Kind: KindProfile, WineA: wineID, Language: language}
}

// ComparisonKey builds a comparison record key from a normalized pair.
func ComparisonKey(first, second uuid.UUID, language string) Key {
	return Key{Kind: KindComparison, WineA: first, WineB: second, Language: language}
}

// Record is one persisted unit of generated content. Immutable once written;
// forced regeneration deletes and re-inserts, never patches.
type Record struct {
	Key       Key
	Document  Document
	CreatedAt time.Time
}
