package export

import (
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
)

func TestEscapeHTMLRoundTrip(t *testing.T) {
	inputs := []string{
		`a&b<c>d"e'f`,
		`<script>alert("xss")</script>`,
		`plain text`,
		`&amp; already escaped`,
		`quotes: "double" and 'single'`,
		``,
	}
	for _, in := range inputs {
		escaped := EscapeHTML(in)
		if strings.ContainsAny(escaped, `<>"'`) {
			t.Errorf("EscapeHTML(%q) = %q still contains raw markup characters", in, escaped)
		}
		if got := html.UnescapeString(escaped); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestEscapeHTMLPassesSafeText(t *testing.T) {
	const in = "The Horsehead Nebula, 1500 light-years away"
	if got := EscapeHTML(in); got != in {
		t.Errorf("EscapeHTML(%q) = %q, want unchanged", in, got)
	}
}

func TestPageEscapesRecordFields(t *testing.T) {
	records := []apod.Record{{
		Title:     `Galaxy <img src=x onerror="pwn()">`,
		Date:      "2024-01-02",
		MediaType: "image",
		URL:       `https://example.com/a.jpg?x="1"&y=2`,
	}}

	page := Page(records, "any — any")
	if strings.Contains(page, "onerror=\"pwn()\"") {
		t.Error("unescaped attribute injection in page")
	}
	if !strings.Contains(page, "Galaxy &lt;img") {
		t.Error("title was not escaped")
	}
	if !strings.Contains(page, "&quot;1&quot;&amp;y=2") {
		t.Error("URL attribute was not escaped")
	}
	if !strings.Contains(page, "January 2, 2024") {
		t.Error("display date missing")
	}
}

func TestPageInfoLine(t *testing.T) {
	records := []apod.Record{
		{Title: "A", Date: "2024-01-01", MediaType: "image", URL: "https://x/a.jpg"},
		{Title: "B", Date: "2024-01-02", MediaType: "image", URL: "https://x/b.jpg"},
	}
	page := Page(records, "2024-01-01 — 2024-01-02")
	if !strings.Contains(page, "Showing 2 images from 2024-01-01 — 2024-01-02") {
		t.Error("info line missing or wrong")
	}
}

func TestPageEmptyState(t *testing.T) {
	page := Page(nil, "any — any")
	if !strings.Contains(page, "No images found for any — any.") {
		t.Error("empty-state message missing")
	}
	if strings.Contains(page, "<figure") {
		t.Error("empty page should not contain cards")
	}
}

func TestPageVideoCard(t *testing.T) {
	records := []apod.Record{{
		Title:     "Eclipse Flyover",
		Date:      "2024-01-02",
		MediaType: "video",
		URL:       "https://www.youtube.com/embed/abc",
	}}
	page := Page(records, "any — any")
	if !strings.Contains(page, ">View media</a>") {
		t.Error("video card should render a media link")
	}
	if strings.Contains(page, "<img") {
		t.Error("video card should not embed an image")
	}
}

func TestPageDisabledLinkWithoutURL(t *testing.T) {
	records := []apod.Record{{Title: "Mystery", Date: "2024-01-02", MediaType: "video"}}
	page := Page(records, "any — any")
	if !strings.Contains(page, `href="#"`) {
		t.Error("URL-less record should render a disabled # link")
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.html")
	if err := Write(path, "<!DOCTYPE html>"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "<!DOCTYPE html>" {
		t.Errorf("unexpected contents: %s", data)
	}
}
