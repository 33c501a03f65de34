package narrative

import "time"

// Status reports whether content has been generated for a key.
type Status string

// Cache statuses.
const (
	StatusNotRequested Status = "NOT_REQUESTED"
	StatusGenerated    Status = "GENERATED"
)

// CacheStatus is the read-only metadata view of a cache key. Building it must
// never trigger generation.
type CacheStatus struct {
	Status             Status     `json:"status"`
	RequestedLanguage  string     `json:"requestedLanguage"`
	GeneratedAt        *time.Time `json:"generatedAt,omitempty"`
	AvailableLanguages []string   `json:"availableLanguages"`
}
