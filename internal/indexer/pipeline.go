// Package indexer converts employee records into indexed documents and loads
// them into the vector index.
package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bull/hr-assistant/internal/employee"
	"github.com/bull/hr-assistant/internal/storage"
)

// employeeNamespace is the UUID namespace for deriving document IDs from
// employee names. A stable namespace keeps document IDs stable across runs,
// which is what makes re-ingestion an in-place upsert.
var employeeNamespace = uuid.MustParse("8f9a1c6e-2d47-4b8a-9c31-5e0f7d2a6b14")

// IngestResult contains statistics about an ingestion run.
type IngestResult struct {
	TotalRecords int
	Indexed      int
	Failed       []FailedRecord
	Duration     time.Duration
}

// FailedRecord is a record that could not be indexed.
type FailedRecord struct {
	Name   string
	Reason string
}

// BatchEmbedder produces one embedding per input text, in input order.
type BatchEmbedder interface {
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// EmployeeStore is the slice of the vector index the pipeline writes to.
type EmployeeStore interface {
	UpsertEmployees(ctx context.Context, docs []*storage.EmployeeDocument) error
	Count(ctx context.Context) (uint64, error)
}

// Pipeline orchestrates ingestion: records are rendered to documents, embedded
// in one batched call, and upserted keyed by their stable IDs.
type Pipeline struct {
	embedder BatchEmbedder
	store    EmployeeStore
	logger   *slog.Logger
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(embedder BatchEmbedder, store EmployeeStore, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		embedder: embedder,
		store:    store,
		logger:   logger,
	}
}

// DocumentID derives the stable point ID for an employee name. The same name
// always maps to the same UUID, so duplicate names collapse to one document
// (last write wins) and re-ingestion does not duplicate entries.
func DocumentID(name string) string {
	return uuid.NewSHA1(employeeNamespace, []byte(name)).String()
}

// DocumentText renders a record into the prose used for embedding. The
// rendering is deterministic: the same record always yields the same text,
// and therefore the same embedding.
func DocumentText(r employee.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d years of experience.", r.Name, r.ExperienceYears)
	fmt.Fprintf(&b, " Skills: %s.", r.Skills)
	fmt.Fprintf(&b, " Past projects: %s.", r.PastProjects)
	fmt.Fprintf(&b, " Availability: %s.", r.Availability)
	return b.String()
}

// IngestAll indexes all records. Invalid records are skipped and reported in
// the result rather than aborting the run; embedding or storage failures
// abort, since a partial index is worse than a stale one.
func (p *Pipeline) IngestAll(ctx context.Context, records []employee.Record) (*IngestResult, error) {
	start := time.Now()
	result := &IngestResult{TotalRecords: len(records)}

	valid := make([]employee.Record, 0, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			p.logger.Warn("Skipping invalid record", "name", rec.Name, "error", err)
			result.Failed = append(result.Failed, FailedRecord{
				Name:   rec.Name,
				Reason: err.Error(),
			})
			continue
		}
		valid = append(valid, rec)
	}

	if len(valid) == 0 {
		result.Duration = time.Since(start)
		return result, nil
	}

	texts := make([]string, len(valid))
	for i, rec := range valid {
		texts[i] = DocumentText(rec)
	}

	embeddings, err := p.embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embeddings: %w", err)
	}
	if len(embeddings) != len(valid) {
		return nil, fmt.Errorf("embeddings: got %d vectors for %d records", len(embeddings), len(valid))
	}

	docs := make([]*storage.EmployeeDocument, len(valid))
	for i, rec := range valid {
		docs[i] = &storage.EmployeeDocument{
			ID:        DocumentID(rec.Name),
			Text:      texts[i],
			Record:    rec,
			Embedding: embeddings[i],
		}
	}

	if err := p.store.UpsertEmployees(ctx, docs); err != nil {
		return nil, fmt.Errorf("store documents: %w", err)
	}

	result.Indexed = len(docs)
	result.Duration = time.Since(start)
	p.logger.Info("Ingestion complete",
		"indexed", result.Indexed,
		"failed", len(result.Failed),
		"duration", result.Duration,
	)

	return result, nil
}
