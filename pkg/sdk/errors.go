package sommelier

import "github.com/vinoteca-cloud/sommelier/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrWineNotFound        = domain.ErrWineNotFound
	ErrRecordNotFound      = domain.ErrRecordNotFound
	ErrSameWine            = domain.ErrSameWine
	ErrInvalidLanguage     = domain.ErrInvalidLanguage
	ErrProviderRejected    = domain.ErrProviderRejected
	ErrGenerationExhausted = domain.ErrGenerationExhausted
	ErrMalformedResponse   = domain.ErrMalformedResponse
)
