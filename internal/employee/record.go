// Package employee defines the employee roster model shared by the
// ingestion pipeline, the retrieval core and the API layer.
package employee

import (
	"errors"
	"fmt"
)

// Known availability statuses. The field is an open enumeration: values
// outside this list are accepted, these are just what the seeder produces.
const (
	AvailabilityAvailable = "Available"
	AvailabilityPartial   = "Partially Available"
	AvailabilityBooked    = "Fully Booked"
)

var (
	ErrEmptyName          = errors.New("employee name must not be empty")
	ErrNegativeExperience = errors.New("experience years must not be negative")
)

// Record is a single employee profile. Records are immutable once created;
// Name is the practical key within a dataset (duplicate names are permitted
// but make reconstruction ambiguous).
type Record struct {
	Name            string `json:"name"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experience_years"`
	PastProjects    string `json:"past_projects"`
	Availability    string `json:"availability"`
}

// Validate checks the structural invariants of a record.
func (r Record) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}
	if r.ExperienceYears < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeExperience, r.ExperienceYears)
	}
	return nil
}
