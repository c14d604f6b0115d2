package apod

import "context"

// Source yields records for a normalized date range. Implementations:
// Client (keyed API) and Archive (bundled dataset).
type Source interface {
	Fetch(ctx context.Context, r DateRange) ([]Record, error)
}

// Select picks the fetch strategy: the keyed NASA API when a key is
// configured, the bundled archive otherwise.
func Select(apiKey string) (Source, error) {
	if apiKey != "" {
		return NewClient(apiKey), nil
	}
	return NewArchive()
}
