package apod

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/dates"
)

// Record is one astronomy-picture-of-the-day entry, the shape served by
// both the keyed API and the bundled archive. Records are replaced
// wholesale on every fetch.
type Record struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	Explanation string `json:"explanation"`
}

func (r Record) IsImage() bool {
	return r.MediaType == "image"
}

// ImageURL resolves the full-size display URL: hdurl when present, url
// otherwise. Non-image records have no display URL, which keeps the
// detail overlay closed for them.
func (r Record) ImageURL() string {
	if !r.IsImage() {
		return ""
	}
	if r.HDURL != "" {
		return r.HDURL
	}
	return r.URL
}

// Day returns the record's calendar day; false when the date field is
// malformed.
func (r Record) Day() (time.Time, bool) {
	return dates.Parse(r.Date)
}

func (r Record) DisplayDate() string {
	return dates.FormatDisplay(r.Date)
}

// decodeRecords accepts both payload shapes the providers emit: a single
// object or an array of objects. A single object normalizes to a
// one-element slice.
func decodeRecords(data []byte) ([]Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parsing records: %w", err)
		}
		return records, nil
	}
	var rec Record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}
	return []Record{rec}, nil
}
