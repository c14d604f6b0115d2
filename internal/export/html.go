package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
)

// EscapeHTML escapes the five characters that break out of HTML text and
// attribute contexts. Every interpolated value in the page goes through
// it; raw provider text never reaches the document.
func EscapeHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

const pageStyle = `body{margin:0;padding:2rem;background:#0b0d17;color:#e8e8f0;font:16px/1.5 system-ui,sans-serif}
h1{font-weight:600}
.info,.empty{color:#9b9bb0}
.gallery{display:grid;grid-template-columns:repeat(auto-fill,minmax(260px,1fr));gap:1rem;margin-top:1rem}
.card{margin:0;background:#151a30;border-radius:8px;overflow:hidden}
.card img{display:block;width:100%;height:180px;object-fit:cover}
.card figcaption{padding:.6rem .8rem}
.card time{color:#9b9bb0;font-size:.85rem}
.card a.media{display:block;padding:2rem .8rem;text-align:center;color:#7aa2ff}`

// Page assembles a standalone HTML gallery document for the records.
// rangeLabel is the requested range, "any — any" when unbounded.
func Page(records []apod.Record, rangeLabel string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Space Explorer Gallery</title>\n")
	fmt.Fprintf(&b, "<style>%s</style>\n", pageStyle)
	b.WriteString("</head>\n<body>\n<h1>Space Explorer Gallery</h1>\n")

	if len(records) == 0 {
		fmt.Fprintf(&b, "<p class=\"empty\">No images found for %s.</p>\n", EscapeHTML(rangeLabel))
	} else {
		fmt.Fprintf(&b, "<p class=\"info\">Showing %d images from %s</p>\n", len(records), EscapeHTML(rangeLabel))
		b.WriteString("<div class=\"gallery\">\n")
		for _, rec := range records {
			writeCard(&b, rec)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeCard(b *strings.Builder, rec apod.Record) {
	title := EscapeHTML(rec.Title)
	date := EscapeHTML(rec.DisplayDate())

	b.WriteString("<figure class=\"card\" tabindex=\"0\">\n")
	if img := rec.ImageURL(); img != "" {
		full := EscapeHTML(img)
		thumb := EscapeHTML(rec.URL)
		if thumb == "" {
			thumb = full
		}
		fmt.Fprintf(b, "<a href=\"%s\"><img src=\"%s\" alt=\"%s\" loading=\"lazy\"></a>\n", full, thumb, title)
	} else {
		href := "#"
		if rec.URL != "" {
			href = rec.URL
		}
		fmt.Fprintf(b, "<a class=\"media\" href=\"%s\">View media</a>\n", EscapeHTML(href))
	}
	fmt.Fprintf(b, "<figcaption>%s<br><time>%s</time></figcaption>\n", title, date)
	b.WriteString("</figure>\n")
}

// Write writes the document to path.
func Write(path, html string) error {
	return os.WriteFile(path, []byte(html), 0o644)
}
