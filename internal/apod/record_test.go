package apod

import (
	"strings"
	"testing"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "hdurl preferred",
			rec:  Record{MediaType: "image", URL: "https://example.com/small.jpg", HDURL: "https://example.com/big.jpg"},
			want: "https://example.com/big.jpg",
		},
		{
			name: "url fallback",
			rec:  Record{MediaType: "image", URL: "https://example.com/small.jpg"},
			want: "https://example.com/small.jpg",
		},
		{
			name: "video has no display url",
			rec:  Record{MediaType: "video", URL: "https://www.youtube.com/embed/abc"},
			want: "",
		},
		{
			name: "image without urls",
			rec:  Record{MediaType: "image"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.ImageURL(); got != tt.want {
				t.Errorf("ImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeRecordsArray(t *testing.T) {
	data := []byte(`[{"title":"A","date":"2024-01-01","media_type":"image","url":"https://x/a.jpg"},
		{"title":"B","date":"2024-01-02","media_type":"video","url":"https://x/b"}]`)
	records, err := decodeRecords(data)
	if err != nil {
		t.Fatalf("decodeRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "A" || records[1].MediaType != "video" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestDecodeRecordsSingleObject(t *testing.T) {
	data := []byte(` {"title":"Solo","date":"2024-01-01","media_type":"image","url":"https://x/s.jpg"}`)
	records, err := decodeRecords(data)
	if err != nil {
		t.Fatalf("decodeRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected single object to normalize to 1 record, got %d", len(records))
	}
	if records[0].Title != "Solo" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestDecodeRecordsMalformed(t *testing.T) {
	for _, data := range []string{`{"title":`, `[{"title":"A"`, `not json`} {
		if _, err := decodeRecords([]byte(data)); err == nil {
			t.Errorf("decodeRecords(%q): expected error", data)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	rec := Record{Date: "2025-10-30"}
	if got := rec.DisplayDate(); got != "October 30, 2025" {
		t.Errorf("DisplayDate() = %q", got)
	}
	rec = Record{Date: "someday"}
	if got := rec.DisplayDate(); got != "someday" {
		t.Errorf("DisplayDate() fallback = %q, want raw input", got)
	}
}

func TestBundledArchiveLoads(t *testing.T) {
	a, err := NewArchive()
	if err != nil {
		t.Fatalf("NewArchive: %v", err)
	}
	if len(a.records) == 0 {
		t.Fatal("bundled archive is empty")
	}
	for _, rec := range a.records {
		if rec.Title == "" {
			t.Error("bundled record missing title")
		}
		if _, ok := rec.Day(); !ok {
			t.Errorf("bundled record %q has malformed date %q", rec.Title, rec.Date)
		}
		if rec.IsImage() && rec.ImageURL() == "" {
			t.Errorf("bundled image record %q has no display URL", rec.Title)
		}
		if !rec.IsImage() && rec.ImageURL() != "" {
			t.Errorf("non-image record %q should have empty display URL", rec.Title)
		}
	}
	if !strings.HasPrefix(a.records[0].Date, "20") {
		t.Errorf("unexpected first record date: %s", a.records[0].Date)
	}
}
