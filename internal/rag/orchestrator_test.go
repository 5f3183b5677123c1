package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/hr-assistant/internal/employee"
	"github.com/bull/hr-assistant/internal/storage"
)

var ashaRecord = employee.Record{
	Name:            "Asha",
	Skills:          "Python, AWS",
	ExperienceYears: 5,
	PastProjects:    "Data Pipeline",
	Availability:    "available",
}

type fakeRetriever struct {
	docs  []storage.ScoredDocument
	err   error
	calls int
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query string, topK int) ([]storage.ScoredDocument, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if topK < len(f.docs) {
		return f.docs[:topK], nil
	}
	return f.docs, nil
}

// echoGenerator returns its prompt verbatim, proving what reached the model.
type echoGenerator struct{}

func (echoGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return prompt, nil
}

type failingGenerator struct{ err error }

func (g failingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", g.err
}

func singleDocIndex() *fakeRetriever {
	return &fakeRetriever{docs: []storage.ScoredDocument{
		{Document: storage.EmployeeDocument{Record: ashaRecord}, Score: 0.9},
	}}
}

func TestAnswerGroundsContextInPrompt(t *testing.T) {
	orc := New(singleDocIndex(), echoGenerator{}, nil, nil)

	answer, err := orc.Answer(context.Background(), "Who are the Python developers?")
	require.NoError(t, err)

	assert.Contains(t, answer, "Asha", "retrieved employee must reach the prompt")
	assert.Contains(t, answer, "Python", "retrieved attributes must reach the prompt")
	assert.Contains(t, answer, "Who are the Python developers?")
}

func TestAnswerEmptyQueryRejectedBeforeRetrieval(t *testing.T) {
	retriever := singleDocIndex()
	orc := New(retriever, echoGenerator{}, nil, nil)

	_, err := orc.Answer(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Zero(t, retriever.calls, "validation must happen before any remote call")
}

func TestAnswerGenerationUnavailable(t *testing.T) {
	retriever := singleDocIndex()
	orc := New(retriever, nil, nil, nil)

	_, err := orc.Answer(context.Background(), "Who knows Python?")
	assert.ErrorIs(t, err, ErrGenerationUnavailable)

	// The search path keeps working with the generator down.
	records, err := orc.Search(context.Background(), "Python developer", 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha", records[0].Name)
}

func TestAnswerRetrievalErrorTyped(t *testing.T) {
	cause := errors.New("index unreachable")
	orc := New(&fakeRetriever{err: cause}, echoGenerator{}, nil, nil)

	_, err := orc.Answer(context.Background(), "Who knows Python?")

	var retrievalErr *RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.ErrorIs(t, err, cause)

	var generationErr *GenerationError
	assert.False(t, errors.As(err, &generationErr), "retrieval failure must not look like a generation failure")
}

func TestAnswerGenerationErrorTyped(t *testing.T) {
	cause := errors.New("ollama timeout")
	orc := New(singleDocIndex(), failingGenerator{err: cause}, nil, nil)

	_, err := orc.Answer(context.Background(), "Who knows Python?")

	var generationErr *GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.ErrorIs(t, err, cause)

	var retrievalErr *RetrievalError
	assert.False(t, errors.As(err, &retrievalErr), "generation failure must not look like a retrieval failure")
}

func TestSearchReturnsIntactRecord(t *testing.T) {
	orc := New(singleDocIndex(), nil, nil, nil)

	records, err := orc.Search(context.Background(), "Python developer with AWS experience", 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ashaRecord, records[0], "all five fields survive metadata projection")
}

func TestSearchEmptyIndex(t *testing.T) {
	orc := New(&fakeRetriever{}, nil, nil, nil)

	records, err := orc.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, records, "empty index is an empty result, not an error")
}

func TestSearchValidation(t *testing.T) {
	retriever := singleDocIndex()
	orc := New(retriever, nil, nil, nil)

	_, err := orc.Search(context.Background(), "", 5)
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = orc.Search(context.Background(), "Python", 0)
	assert.ErrorIs(t, err, ErrInvalidTopK)

	assert.Zero(t, retriever.calls, "validation must happen before touching the index")
}

func TestSearchRetrievalErrorTyped(t *testing.T) {
	cause := errors.New("index unreachable")
	orc := New(&fakeRetriever{err: cause}, nil, nil, nil)

	_, err := orc.Search(context.Background(), "Python", 5)

	var retrievalErr *RetrievalError
	assert.ErrorAs(t, err, &retrievalErr)
}

func TestGenerationAvailable(t *testing.T) {
	assert.True(t, New(singleDocIndex(), echoGenerator{}, nil, nil).GenerationAvailable())
	assert.False(t, New(singleDocIndex(), nil, nil, nil).GenerationAvailable())
}
