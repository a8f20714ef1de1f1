package utils

import "errors"

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrReviewNotFound = errors.New("review not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidInput    = errors.New("invalid input")

	// ErrInvalidEmbedding is a validation failure: the supplied or stored
	// vector does not match the configured dimensionality.
	ErrInvalidEmbedding = errors.New("invalid embedding dimensions")

	// ErrEmbeddingUnavailable means the embedding provider could not produce
	// a vector. Callers degrade (skip the record, or fall back to SQL-only
	// results), they do not crash the request.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrSearchUnavailable means the vector store itself could not be
	// queried. Distinct from an empty result set on purpose.
	ErrSearchUnavailable = errors.New("search service unavailable")

	ErrAgentUnavailable = errors.New("agent service unavailable")

	ErrDatabaseError = errors.New("database error")
)
