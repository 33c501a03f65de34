package domain

import "errors"

var (
	// ErrWineNotFound signals an unknown wine identifier.
	ErrWineNotFound = errors.New("wine not found")
	// ErrRecordNotFound signals a missing generated record.
	ErrRecordNotFound = errors.New("generated record not found")
	// ErrSameWine signals a comparison request naming the same wine twice.
	ErrSameWine = errors.New("cannot compare a wine with itself")
	// ErrInvalidLanguage signals a malformed language tag.
	ErrInvalidLanguage = errors.New("invalid language tag")
	// ErrRecordExists signals a duplicate generated record for a key.
	ErrRecordExists = errors.New("generated record already exists")
	// ErrGenerationUnavailable signals a disabled or misconfigured generation provider.
	ErrGenerationUnavailable = errors.New("generation service unavailable")
	// ErrProviderRejected signals a non-retryable 4xx from the generation provider.
	ErrProviderRejected = errors.New("generation request rejected by provider")
	// ErrGenerationExhausted signals that the retry budget ran out on transient failures.
	ErrGenerationExhausted = errors.New("generation attempts exhausted")
	// ErrMalformedResponse signals an unparsable provider response.
	ErrMalformedResponse = errors.New("malformed generation response")
)
