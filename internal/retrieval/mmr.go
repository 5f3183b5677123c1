package retrieval

import "github.com/bull/hr-assistant/internal/storage"

// DefaultLambda is the relevance/diversity trade-off weight. 1.0 is pure
// nearest-neighbor, 0.0 is pure diversity.
const DefaultLambda = 0.5

// SelectionPolicy picks topK documents from a candidate pool ranked by
// similarity to the query. Implementations must be deterministic for a fixed
// pool and query vector.
type SelectionPolicy interface {
	Select(query []float32, pool []storage.ScoredDocument, topK int) []storage.ScoredDocument
}

// MMRPolicy implements maximal marginal relevance: candidates are selected
// greedily, each pick maximizing lambda*sim(query, d) minus
// (1-lambda)*max(sim(d, already selected)).
type MMRPolicy struct {
	Lambda float64
}

// NewMMRPolicy creates an MMR policy with the given trade-off weight.
// Weights outside [0, 1] fall back to DefaultLambda.
func NewMMRPolicy(lambda float64) *MMRPolicy {
	if lambda < 0 || lambda > 1 {
		lambda = DefaultLambda
	}
	return &MMRPolicy{Lambda: lambda}
}

// Select greedily picks topK documents from the pool. The pool arrives ranked
// by query similarity; ties in marginal relevance keep pool order, which makes
// the selection deterministic.
func (p *MMRPolicy) Select(query []float32, pool []storage.ScoredDocument, topK int) []storage.ScoredDocument {
	if topK <= 0 || len(pool) == 0 {
		return nil
	}
	if topK > len(pool) {
		topK = len(pool)
	}

	querySim := make([]float64, len(pool))
	for i, cand := range pool {
		querySim[i] = CosineSimilarity(query, cand.Document.Embedding)
	}

	selected := make([]storage.ScoredDocument, 0, topK)
	picked := make([]bool, len(pool))

	for len(selected) < topK {
		best := -1
		bestScore := 0.0
		for i := range pool {
			if picked[i] {
				continue
			}
			redundancy := 0.0
			for _, sel := range selected {
				sim := CosineSimilarity(pool[i].Document.Embedding, sel.Document.Embedding)
				if sim > redundancy {
					redundancy = sim
				}
			}
			score := p.Lambda*querySim[i] - (1-p.Lambda)*redundancy
			if best == -1 || score > bestScore {
				best = i
				bestScore = score
			}
		}
		picked[best] = true
		selected = append(selected, pool[best])
	}

	return selected
}
