package facts

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRandomDeterministicUnderSeed(t *testing.T) {
	a := Random(rand.New(rand.NewSource(5)))
	b := Random(rand.New(rand.NewSource(5)))
	if a != b {
		t.Errorf("same seed picked different facts: %q vs %q", a, b)
	}
	if a == "" {
		t.Error("picked an empty fact")
	}
}

func TestRandomCoversList(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[Random(rng)] = true
	}
	if len(seen) != len(bundled) {
		t.Errorf("500 draws hit %d of %d facts", len(seen), len(bundled))
	}
}

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Newsroom</title>
    <item><title>Webb Spots &lt;b&gt;Distant&lt;/b&gt; Galaxy</title><link>https://example.com/webb</link></item>
    <item><title>Crew Returns From Station</title><link>https://example.com/crew</link></item>
    <item><title></title><link>https://example.com/untitled</link></item>
    <item><title>Rover Reaches Crater Rim</title><link>https://example.com/rover</link></item>
  </channel>
</rss>`

func TestHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testRSS))
	}))
	defer srv.Close()

	got, err := NewFetcher().Headlines(context.Background(), srv.URL, 2)
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(got))
	}
	if got[0].Title != "Webb Spots Distant Galaxy" {
		t.Errorf("first headline = %q, markup should be stripped", got[0].Title)
	}
	if got[0].Link != "https://example.com/webb" {
		t.Errorf("first link = %q", got[0].Link)
	}
}

func TestHeadlinesSkipsUntitled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testRSS))
	}))
	defer srv.Close()

	got, err := NewFetcher().Headlines(context.Background(), srv.URL, 10)
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected the untitled item skipped, got %d headlines", len(got))
	}
	if got[2].Title != "Rover Reaches Crater Rim" {
		t.Errorf("last headline = %q", got[2].Title)
	}
}

func TestHeadlinesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewFetcher().Headlines(context.Background(), srv.URL, 5); err == nil {
		t.Fatal("expected error from a 404 feed")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	got := truncate("こんにちは世界です", 5)
	if got != "こん..." {
		t.Errorf("truncate by rune = %q, want %q", got, "こん...")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.input); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
