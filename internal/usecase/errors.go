package usecase

import (
	"errors"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrTransientFetch marks provider failures worth retrying on the next cycle.
	ErrTransientFetch = errors.New("transient fetch failure")
	// ErrMalformedPayload is returned when a provider response lacks its top-level container.
	ErrMalformedPayload = livematch.ErrMalformedPayload
	// ErrDuplicateKey signals a unique-constraint race. Repositories resolve it by re-reading.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnresolvedReference is logged when a referenced team or player does not exist locally.
	ErrUnresolvedReference = errors.New("unresolved reference")
)
