package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bull/hr-assistant/internal/employee"
	"github.com/bull/hr-assistant/internal/storage"
)

func scored(rec employee.Record) storage.ScoredDocument {
	return storage.ScoredDocument{Document: storage.EmployeeDocument{Record: rec}}
}

func TestFormatContextEmpty(t *testing.T) {
	assert.Equal(t, NoResultsSentinel, FormatContext(nil))
	assert.Equal(t, NoResultsSentinel, FormatContext([]storage.ScoredDocument{}))
}

func TestFormatContextParagraphs(t *testing.T) {
	docs := []storage.ScoredDocument{
		scored(employee.Record{
			Name:            "Asha Patel",
			Skills:          "Python, AWS",
			ExperienceYears: 5,
			PastProjects:    "Data Pipeline",
			Availability:    "Available",
		}),
		scored(employee.Record{
			Name:            "Noah Kim",
			Skills:          "Go, Kubernetes",
			ExperienceYears: 8,
			PastProjects:    "Cloud Migration Project",
			Availability:    "Fully Booked",
		}),
	}

	out := FormatContext(docs)

	assert.Equal(t, 2, strings.Count(out, "--- Employee "), "one labeled paragraph per employee")
	assert.Contains(t, out, "--- Employee 1 ---")
	assert.Contains(t, out, "--- Employee 2 ---")

	// All five attributes of each employee survive formatting.
	assert.Contains(t, out, "Name: Asha Patel")
	assert.Contains(t, out, "Skills: Python, AWS")
	assert.Contains(t, out, "Experience: 5 years")
	assert.Contains(t, out, "Past Projects: Data Pipeline")
	assert.Contains(t, out, "Availability: Available")
	assert.Contains(t, out, "Name: Noah Kim")
	assert.Contains(t, out, "Experience: 8 years")

	// Employees are separated by a blank line, and ordering follows input.
	paragraphs := strings.Split(out, "\n\n")
	require.Len(t, paragraphs, 2)
	assert.Contains(t, paragraphs[0], "Asha Patel")
	assert.Contains(t, paragraphs[1], "Noah Kim")
}

func TestFormatContextDeterministic(t *testing.T) {
	docs := []storage.ScoredDocument{
		scored(employee.Record{Name: "Asha Patel", Skills: "Python", ExperienceYears: 5}),
	}
	assert.Equal(t, FormatContext(docs), FormatContext(docs))
}
