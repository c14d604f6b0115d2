package apod

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/dates"
)

const defaultEndpoint = "https://api.nasa.gov/planetary/apod"

// StatusError is a non-success response from the keyed endpoint.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apod request failed: %s", e.Status)
}

// Client fetches records from the keyed NASA APOD API.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch queries the keyed endpoint. A two-sided range maps to
// start_date/end_date and returns a sequence; a lone start maps to a
// single-day date request (the archive path widens the same input to an
// 8-day span instead); an empty range returns the provider's current
// picture. Responses outside 2xx surface as *StatusError.
func (c *Client) Fetch(ctx context.Context, r DateRange) ([]Record, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	switch {
	case r.Start != nil && r.End != nil:
		q.Set("start_date", dates.FormatYMD(*r.Start))
		q.Set("end_date", dates.FormatYMD(*r.End))
	case r.Start != nil:
		q.Set("date", dates.FormatYMD(*r.Start))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return decodeRecords(body)
}
