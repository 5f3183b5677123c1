// Package retrieval finds the employee documents most relevant to a query,
// balancing relevance against redundancy among the selected results.
package retrieval

import (
	"context"
	"fmt"

	"github.com/bull/hr-assistant/internal/storage"
)

// DefaultPoolMultiplier controls over-fetching: the candidate pool handed to
// the selection policy is this many times larger than the requested topK.
const DefaultPoolMultiplier = 4

// QueryEmbedder converts a query string into an embedding vector.
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// VectorSearcher is the slice of the vector index the retriever reads from.
type VectorSearcher interface {
	SearchEmployees(ctx context.Context, vector []float32, limit uint64) ([]storage.ScoredDocument, error)
}

// Retriever performs diversity-aware retrieval: it over-fetches a candidate
// pool by raw similarity, then lets the selection policy pick the final set.
type Retriever struct {
	embedder       QueryEmbedder
	store          VectorSearcher
	policy         SelectionPolicy
	poolMultiplier int
}

// NewRetriever creates a retriever. A nil policy defaults to MMR with
// DefaultLambda; a non-positive poolMultiplier defaults to
// DefaultPoolMultiplier.
func NewRetriever(embedder QueryEmbedder, store VectorSearcher, policy SelectionPolicy, poolMultiplier int) *Retriever {
	if policy == nil {
		policy = NewMMRPolicy(DefaultLambda)
	}
	if poolMultiplier <= 0 {
		poolMultiplier = DefaultPoolMultiplier
	}
	return &Retriever{
		embedder:       embedder,
		store:          store,
		policy:         policy,
		poolMultiplier: poolMultiplier,
	}
}

// Retrieve returns up to topK documents for the query, ordered by the
// selection policy's pick order. An empty index yields an empty result, not
// an error; topK larger than the index returns everything available.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]storage.ScoredDocument, error) {
	vector, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	poolSize := uint64(topK * r.poolMultiplier)
	pool, err := r.store.SearchEmployees(ctx, vector, poolSize)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	return r.policy.Select(vector, pool, topK), nil
}
