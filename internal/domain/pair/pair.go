// Package pair canonicalizes two-wine keys so a comparison between A and B and
// one between B and A resolve to the identical stored record.
package pair

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
)

// Pair is a canonically ordered two-wine key. First sorts strictly before
// Second under lexicographic comparison of the canonical UUID string form,
// which is total and stable across process restarts.
type Pair struct {
	First   uuid.UUID
	Second  uuid.UUID
	Swapped bool
}

// Normalize orders (a, b) into a canonical pair. Swapped reports whether the
// caller's first wine ended up in second position. Equal identifiers are a
// caller error. Pure function, safe for concurrent use.
func Normalize(a, b uuid.UUID) (Pair, error) {
	switch strings.Compare(a.String(), b.String()) {
	case 0:
		return Pair{}, fmt.Errorf("wine %s: %w", a, domain.ErrSameWine)
	case -1:
		return Pair{First: a, Second: b}, nil
	default:
		return Pair{First: b, Second: a, Swapped: true}, nil
	}
}
