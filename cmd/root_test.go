package cmd

import (
	"testing"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/dates"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		start, end string
		wantStart  string
		wantEnd    string
		err        bool
	}{
		{"2024-01-02", "2024-01-10", "2024-01-02", "2024-01-10", false},
		{"2024-01-02", "", "2024-01-02", "", false},
		{"", "2024-01-10", "", "2024-01-10", false},
		{"", "", "", "", false},
		{"2024-03-10", "2024-01-05", "2024-01-05", "2024-03-10", false},
		{"yesterday-ish", "2024-01-10", "", "", true},
		{"2024-01-02", "not-a-date", "", "", true},
	}

	for _, tt := range tests {
		r, err := parseRange(tt.start, tt.end)
		if tt.err {
			if err == nil {
				t.Errorf("parseRange(%q, %q): expected error", tt.start, tt.end)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRange(%q, %q): unexpected error: %v", tt.start, tt.end, err)
			continue
		}

		got := ""
		if r.Start != nil {
			got = dates.FormatYMD(*r.Start)
		}
		if got != tt.wantStart {
			t.Errorf("parseRange(%q, %q) start = %q, want %q", tt.start, tt.end, got, tt.wantStart)
		}

		got = ""
		if r.End != nil {
			got = dates.FormatYMD(*r.End)
		}
		if got != tt.wantEnd {
			t.Errorf("parseRange(%q, %q) end = %q, want %q", tt.start, tt.end, got, tt.wantEnd)
		}
	}
}

func TestParseRangeEmptyIsUnbounded(t *testing.T) {
	r, err := parseRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsEmpty() {
		t.Errorf("parseRange(\"\", \"\") = %+v, want empty range", r)
	}
}
