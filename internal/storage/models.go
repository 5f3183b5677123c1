package storage

import "github.com/bull/hr-assistant/internal/employee"

// EmployeeDocument is the indexed form of one employee record: the prose
// text that was embedded, the structured payload for reconstruction, and the
// embedding vector itself.
type EmployeeDocument struct {
	ID        string // Deterministic UUID derived from the employee name
	Text      string // Prose rendering of all attributes, used for embedding
	Record    employee.Record
	Embedding []float32 // 1536-dim vector (text-embedding-3-small)
}

// ScoredDocument is a search hit with its similarity score. The embedding is
// populated so the retrieval policy can compare hits against each other.
type ScoredDocument struct {
	Document EmployeeDocument
	Score    float64
}

// CollectionName is the single Qdrant collection holding employee profiles.
const CollectionName = "employee_profiles"

// VectorDimension is the embedding size for text-embedding-3-small.
const VectorDimension = 1536
