package employee

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the fixed column order of the on-disk dataset.
var csvHeader = []string{"name", "skills", "experience_years", "past_projects", "availability"}

// LoadCSV reads an employee dataset from a CSV file with the standard header.
// Every row is validated; a malformed row fails the whole load with its line
// number so bad datasets are caught before ingestion.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(csvHeader), len(row))
		}
		years, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: experience_years: %w", i+2, err)
		}
		rec := Record{
			Name:            row[0],
			Skills:          row[1],
			ExperienceYears: years,
			PastProjects:    row[3],
			Availability:    row[4],
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveCSV writes an employee dataset to a CSV file with the standard header.
func SaveCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Name,
			rec.Skills,
			strconv.Itoa(rec.ExperienceYears),
			rec.PastProjects,
			rec.Availability,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", rec.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
