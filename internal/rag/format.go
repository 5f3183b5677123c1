package rag

import (
	"fmt"
	"strings"

	"github.com/bull/hr-assistant/internal/storage"
)

// NoResultsSentinel is the context handed to the prompt when retrieval found
// nothing. The instruction template tells the model to say so instead of
// inventing an answer.
const NoResultsSentinel = "No relevant employee information found."

// FormatContext renders retrieved documents into the grounding context block:
// one labeled paragraph per employee, attributes in fixed order, blank line
// between employees. The output is deterministic for a given input order.
func FormatContext(docs []storage.ScoredDocument) string {
	if len(docs) == 0 {
		return NoResultsSentinel
	}

	var b strings.Builder
	for i, doc := range docs {
		rec := doc.Document.Record
		fmt.Fprintf(&b, "--- Employee %d ---\n", i+1)
		fmt.Fprintf(&b, "Name: %s\n", rec.Name)
		fmt.Fprintf(&b, "Skills: %s\n", rec.Skills)
		fmt.Fprintf(&b, "Experience: %d years\n", rec.ExperienceYears)
		fmt.Fprintf(&b, "Past Projects: %s\n", rec.PastProjects)
		fmt.Fprintf(&b, "Availability: %s\n", rec.Availability)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
