package indexer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/hr-assistant/internal/employee"
	"github.com/bull/hr-assistant/internal/storage"
)

// fakeEmbedder returns a distinct deterministic vector per text.
type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		vec := make([]float32, 4)
		for j, ch := range texts[i] {
			vec[j%4] += float32(ch)
		}
		out[i] = vec
	}
	return out, nil
}

// fakeStore keys documents by ID like the real index, so repeated upserts of
// the same ID overwrite instead of duplicating.
type fakeStore struct {
	docs map[string]*storage.EmployeeDocument
	err  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]*storage.EmployeeDocument)}
}

func (f *fakeStore) UpsertEmployees(ctx context.Context, docs []*storage.EmployeeDocument) error {
	if f.err != nil {
		return f.err
	}
	for _, doc := range docs {
		f.docs[doc.ID] = doc
	}
	return nil
}

func (f *fakeStore) Count(ctx context.Context) (uint64, error) {
	return uint64(len(f.docs)), nil
}

func testRecords() []employee.Record {
	return employee.Generate(20, 1)
}

func TestDocumentTextDeterministic(t *testing.T) {
	rec := employee.Record{
		Name:            "Asha Patel",
		Skills:          "Python, AWS",
		ExperienceYears: 5,
		PastProjects:    "Data Pipeline",
		Availability:    "Available",
	}

	text := DocumentText(rec)
	assert.Equal(t, text, DocumentText(rec))

	// All five attributes are present in the embedded prose.
	assert.Contains(t, text, "Asha Patel")
	assert.Contains(t, text, "5 years")
	assert.Contains(t, text, "Python, AWS")
	assert.Contains(t, text, "Data Pipeline")
	assert.Contains(t, text, "Available")
}

func TestDocumentIDStable(t *testing.T) {
	assert.Equal(t, DocumentID("Asha Patel"), DocumentID("Asha Patel"))
	assert.NotEqual(t, DocumentID("Asha Patel"), DocumentID("Noah Kim"))
}

func TestIngestAllIdempotent(t *testing.T) {
	store := newFakeStore()
	pipeline := NewPipeline(&fakeEmbedder{}, store, nil)
	records := testRecords()

	first, err := pipeline.IngestAll(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, len(records), first.Indexed)

	countAfterFirst, _ := store.Count(context.Background())

	second, err := pipeline.IngestAll(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, len(records), second.Indexed)

	countAfterSecond, _ := store.Count(context.Background())
	assert.Equal(t, countAfterFirst, countAfterSecond,
		"ingesting the same dataset twice must not change the document count")
}

func TestIngestAllSkipsInvalidRecords(t *testing.T) {
	store := newFakeStore()
	pipeline := NewPipeline(&fakeEmbedder{}, store, nil)

	records := []employee.Record{
		{Name: "Asha Patel", Skills: "Python", ExperienceYears: 5, PastProjects: "Data Pipeline", Availability: "Available"},
		{Name: "", Skills: "Go", ExperienceYears: 3},
	}

	result, err := pipeline.IngestAll(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, 1, result.Indexed)
	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed[0].Reason, "name")

	count, _ := store.Count(context.Background())
	assert.Equal(t, uint64(1), count)
}

func TestIngestAllEmptyDataset(t *testing.T) {
	embedder := &fakeEmbedder{}
	pipeline := NewPipeline(embedder, newFakeStore(), nil)

	result, err := pipeline.IngestAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, result.Indexed)
	assert.Zero(t, embedder.calls, "nothing to embed for an empty dataset")
}

func TestIngestAllEmbeddingFailureAborts(t *testing.T) {
	cause := errors.New("embedding service down")
	store := newFakeStore()
	pipeline := NewPipeline(&fakeEmbedder{err: cause}, store, nil)

	_, err := pipeline.IngestAll(context.Background(), testRecords())
	assert.ErrorIs(t, err, cause)

	count, _ := store.Count(context.Background())
	assert.Zero(t, count, "no partial writes after an embedding failure")
}

func TestIngestAllStoreFailureAborts(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("qdrant unreachable")
	pipeline := NewPipeline(&fakeEmbedder{}, store, nil)

	_, err := pipeline.IngestAll(context.Background(), testRecords())
	assert.ErrorIs(t, err, store.err)
}

func TestIngestAllDocumentShape(t *testing.T) {
	store := newFakeStore()
	pipeline := NewPipeline(&fakeEmbedder{}, store, nil)

	rec := employee.Record{
		Name:            "Asha Patel",
		Skills:          "Python, AWS",
		ExperienceYears: 5,
		PastProjects:    "Data Pipeline",
		Availability:    "Available",
	}
	_, err := pipeline.IngestAll(context.Background(), []employee.Record{rec})
	require.NoError(t, err)

	doc, ok := store.docs[DocumentID(rec.Name)]
	require.True(t, ok, "document is keyed by the stable ID")
	assert.Equal(t, rec, doc.Record)
	assert.Equal(t, DocumentText(rec), doc.Text)
	assert.NotEmpty(t, doc.Embedding)
}
