package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/hr-assistant/internal/storage"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	f.calls++
	return f.vector, f.err
}

type fakeSearcher struct {
	docs      []storage.ScoredDocument
	err       error
	lastLimit uint64
}

func (f *fakeSearcher) SearchEmployees(ctx context.Context, vector []float32, limit uint64) ([]storage.ScoredDocument, error) {
	f.lastLimit = limit
	return f.docs, f.err
}

func TestRetrieveOverFetchesPool(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{1, 0}}
	searcher := &fakeSearcher{docs: []storage.ScoredDocument{
		doc("a", []float32{1, 0}, 1.0),
		doc("b", []float32{0.5, 0.5}, 0.7),
	}}

	r := NewRetriever(embedder, searcher, nil, 0)
	results, err := r.Retrieve(context.Background(), "query", 2)
	require.NoError(t, err)

	assert.Equal(t, uint64(2*DefaultPoolMultiplier), searcher.lastLimit)
	assert.Len(t, results, 2)
}

func TestRetrieveEmptyIndex(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{vector: []float32{1, 0}}, &fakeSearcher{}, nil, 0)

	results, err := r.Retrieve(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrieveTopKBeyondIndexSize(t *testing.T) {
	searcher := &fakeSearcher{docs: []storage.ScoredDocument{
		doc("a", []float32{1, 0}, 1.0),
	}}
	r := NewRetriever(&fakeEmbedder{vector: []float32{1, 0}}, searcher, nil, 0)

	results, err := r.Retrieve(context.Background(), "query", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRetrieveEmbedError(t *testing.T) {
	wantErr := errors.New("embedding service down")
	r := NewRetriever(&fakeEmbedder{err: wantErr}, &fakeSearcher{}, nil, 0)

	_, err := r.Retrieve(context.Background(), "query", 5)
	assert.ErrorIs(t, err, wantErr)
}

func TestRetrieveSearchError(t *testing.T) {
	wantErr := errors.New("index unreachable")
	r := NewRetriever(&fakeEmbedder{vector: []float32{1, 0}}, &fakeSearcher{err: wantErr}, nil, 0)

	_, err := r.Retrieve(context.Background(), "query", 5)
	assert.ErrorIs(t, err, wantErr)
}
