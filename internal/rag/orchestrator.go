// Package rag wires retrieval, context formatting, prompt construction and
// generation into the two request pipelines of the HR assistant: chat
// (retrieve → format → prompt → generate) and direct semantic search
// (retrieve → project).
package rag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bull/hr-assistant/internal/employee"
	"github.com/bull/hr-assistant/internal/storage"
)

// DefaultChatTopK is how many employee documents ground a chat answer.
const DefaultChatTopK = 5

// DocumentRetriever returns the documents most relevant to a query.
type DocumentRetriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]storage.ScoredDocument, error)
}

// Generator produces text from a prompt. Implementations are stateless per
// call and safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Closer releases the vector index connection on shutdown.
type Closer interface {
	Close() error
}

// Orchestrator is the ready-to-use pipeline instance produced by startup.
// Both paths are safe to run concurrently for independent requests; per-call
// state never leaves the call.
type Orchestrator struct {
	retriever DocumentRetriever
	generator Generator
	store     Closer
	logger    *slog.Logger
}

// New creates an orchestrator. A nil generator marks the chat path as
// unavailable while leaving search fully functional — that is how startup
// degrades when the generation health check fails. The store is only held
// for Close; it may be nil in tests.
func New(retriever DocumentRetriever, generator Generator, store Closer, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		retriever: retriever,
		generator: generator,
		store:     store,
		logger:    logger.With("component", "rag"),
	}
}

// GenerationAvailable reports whether the chat path can be served.
func (o *Orchestrator) GenerationAvailable() bool {
	return o.generator != nil
}

// Answer runs the chat pipeline for one query and returns the generated
// answer. Validation happens before any remote call; retrieval and
// generation failures carry distinct error types.
func (o *Orchestrator) Answer(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	if o.generator == nil {
		return "", ErrGenerationUnavailable
	}

	docs, err := o.retriever.Retrieve(ctx, query, DefaultChatTopK)
	if err != nil {
		return "", &RetrievalError{Err: err}
	}

	prompt := BuildPrompt(FormatContext(docs), query)

	answer, err := o.generator.Generate(ctx, prompt)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	o.logger.Debug("answered chat query", "retrieved", len(docs))
	return answer, nil
}

// Search runs the direct semantic-search path: retrieve and project each
// document's payload back into a record. It never invokes the generator and
// returns an empty slice, not an error, when nothing matches.
func (o *Orchestrator) Search(ctx context.Context, query string, topK int) ([]employee.Record, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if topK < 1 {
		return nil, ErrInvalidTopK
	}

	docs, err := o.retriever.Retrieve(ctx, query, topK)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	records := make([]employee.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.Document.Record)
	}
	return records, nil
}

// Close releases the vector index connection.
func (o *Orchestrator) Close() error {
	if o.store != nil {
		return o.store.Close()
	}
	return nil
}
