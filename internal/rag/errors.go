package rag

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery rejects blank queries before any remote call is made.
	ErrEmptyQuery = errors.New("query must not be blank")

	// ErrInvalidTopK rejects non-positive result limits.
	ErrInvalidTopK = errors.New("top_k must be at least 1")

	// ErrGenerationUnavailable means the generation service failed its
	// startup health check; chat is refused while search keeps working.
	ErrGenerationUnavailable = errors.New("generation service unavailable")
)

// RetrievalError wraps failures of the retrieval stage (query embedding or
// vector index access), so callers can tell "search itself failed" apart
// from a generation failure.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// GenerationError wraps failures of the generation stage (timeout,
// connection failure, malformed model output).
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
