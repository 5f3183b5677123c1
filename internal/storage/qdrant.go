// Package storage wraps the Qdrant vector index holding employee profiles.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/qdrant/go-client/qdrant"

	"github.com/bull/hr-assistant/internal/employee"
)

// QdrantStore wraps the Qdrant client with connection management and health
// checks. The index is read-mostly once ingestion has run; the client is safe
// for concurrent use across requests.
type QdrantStore struct {
	client *qdrant.Client
	host   string
	port   int
}

// NewQdrantStore creates a new Qdrant client with health validation.
// It performs a health check with retry on startup and fails fast if Qdrant
// is unreachable.
func NewQdrantStore(host string, port int) (*QdrantStore, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	store := &QdrantStore{
		client: client,
		host:   host,
		port:   port,
	}

	ctx := context.Background()
	if err := store.healthCheckWithRetry(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", ErrQdrantUnreachable, err)
	}

	return store, nil
}

// healthCheckWithRetry performs a health check with exponential backoff.
// Initial interval 500ms, max interval 10s, max elapsed 30s.
func (s *QdrantStore) healthCheckWithRetry(ctx context.Context) error {
	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = 500 * time.Millisecond
	exponentialBackoff.MaxInterval = 10 * time.Second
	exponentialBackoff.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		return s.Health(ctx)
	}

	return backoff.Retry(operation, exponentialBackoff)
}

// Health performs a single health check against Qdrant.
func (s *QdrantStore) Health(ctx context.Context) error {
	result, err := s.client.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if result == nil || result.Title == "" {
		return fmt.Errorf("health check returned invalid response")
	}

	return nil
}

// EnsureCollection ensures the employee collection exists with a single
// 1536-dimension cosine vector per point. Idempotent.
func (s *QdrantStore) EnsureCollection(ctx context.Context) error {
	collections, err := s.client.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, name := range collections {
		if name == CollectionName {
			return nil
		}
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: CollectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     VectorDimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// ClearCollection deletes all points by dropping and recreating the collection.
// Useful for re-seeding scenarios.
func (s *QdrantStore) ClearCollection(ctx context.Context) error {
	err := s.client.DeleteCollection(ctx, CollectionName)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	return s.EnsureCollection(ctx)
}

// Count returns the exact number of employee documents stored in the index.
// Used by the startup empty-index warning.
func (s *QdrantStore) Count(ctx context.Context) (uint64, error) {
	count, err := s.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: CollectionName,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count points: %w", err)
	}
	return count, nil
}

// Close closes the Qdrant client connection.
func (s *QdrantStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// upsertWithRetry performs an upsert operation with exponential backoff retry.
func (s *QdrantStore) upsertWithRetry(ctx context.Context, points []*qdrant.PointStruct) error {
	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = 500 * time.Millisecond
	exponentialBackoff.MaxInterval = 10 * time.Second
	exponentialBackoff.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: CollectionName,
			Points:         points,
		})
		return err
	}

	return backoff.Retry(operation, exponentialBackoff)
}

// UpsertEmployees stores employee documents in Qdrant, batched in groups of
// 100. Point IDs are derived from the employee name, so re-ingesting the
// same dataset overwrites points in place instead of duplicating them.
func (s *QdrantStore) UpsertEmployees(ctx context.Context, docs []*EmployeeDocument) error {
	if len(docs) == 0 {
		return nil
	}

	for i, doc := range docs {
		if len(doc.Embedding) != VectorDimension {
			return fmt.Errorf("%w: document %d has %d dimensions, expected %d",
				ErrDimensionMismatch, i, len(doc.Embedding), VectorDimension)
		}
	}

	batchSize := 100
	for i := 0; i < len(docs); i += batchSize {
		end := min(i+batchSize, len(docs))

		batch := docs[i:end]
		points := make([]*qdrant.PointStruct, len(batch))

		for j, doc := range batch {
			points[j] = &qdrant.PointStruct{
				Id:      qdrant.NewIDUUID(doc.ID),
				Vectors: qdrant.NewVectors(doc.Embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"text":             doc.Text,
					"name":             doc.Record.Name,
					"skills":           doc.Record.Skills,
					"experience_years": doc.Record.ExperienceYears,
					"past_projects":    doc.Record.PastProjects,
					"availability":     doc.Record.Availability,
				}),
			}
		}

		if err := s.upsertWithRetry(ctx, points); err != nil {
			return fmt.Errorf("failed to upsert batch %d-%d: %w", i, end, err)
		}
	}

	return nil
}

// SearchEmployees performs vector similarity search over employee documents.
// Results include payload and stored vectors (the retrieval policy needs the
// vectors to compare candidates against each other) ordered by similarity
// score descending.
func (s *QdrantStore) SearchEmployees(ctx context.Context, vector []float32, limit uint64) ([]ScoredDocument, error) {
	if len(vector) != VectorDimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, expected %d",
			ErrDimensionMismatch, len(vector), VectorDimension)
	}

	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: CollectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	docs := make([]ScoredDocument, 0, len(results))
	for _, result := range results {
		payload := result.Payload

		doc := EmployeeDocument{
			ID:   result.Id.GetUuid(),
			Text: payload["text"].GetStringValue(),
			Record: employee.Record{
				Name:            payload["name"].GetStringValue(),
				Skills:          payload["skills"].GetStringValue(),
				ExperienceYears: int(payload["experience_years"].GetIntegerValue()),
				PastProjects:    payload["past_projects"].GetStringValue(),
				Availability:    payload["availability"].GetStringValue(),
			},
		}
		if vectors := result.Vectors.GetVector(); vectors != nil {
			doc.Embedding = vectors.GetData()
		}

		docs = append(docs, ScoredDocument{
			Document: doc,
			Score:    float64(result.Score),
		})
	}

	return docs, nil
}
