package apod

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed archive.json
var archiveJSON []byte

// Archive serves the bundled dataset when no API key is configured.
type Archive struct {
	records []Record
}

func NewArchive() (*Archive, error) {
	records, err := decodeRecords(archiveJSON)
	if err != nil {
		return nil, fmt.Errorf("loading bundled archive: %w", err)
	}
	return &Archive{records: records}, nil
}

// Fetch filters the bundled records to the inclusive range. An empty
// range returns everything; a single-sided range widens to an 8-day span
// first. Records with malformed dates are skipped while a range is
// active.
func (a *Archive) Fetch(ctx context.Context, r DateRange) ([]Record, error) {
	if r.IsEmpty() {
		out := make([]Record, len(a.records))
		copy(out, a.records)
		return out, nil
	}

	r = r.expand()
	var out []Record
	for _, rec := range a.records {
		day, ok := rec.Day()
		if !ok {
			continue
		}
		if r.Contains(day) {
			out = append(out, rec)
		}
	}
	return out, nil
}
