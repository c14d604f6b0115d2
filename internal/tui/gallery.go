package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
)

const (
	minCardWidth    = 26
	maxColumns      = 3
	cardBodyLines   = 3
	cardTotalHeight = cardBodyLines + 2 // rounded border adds a line above and below
)

func galleryColumns(width int) int {
	cols := width / minCardWidth
	if cols < 1 {
		return 1
	}
	if cols > maxColumns {
		return maxColumns
	}
	return cols
}

func mediaBadge(rec apod.Record) string {
	if rec.IsImage() {
		return badgeImageStyle.Render("IMAGE")
	}
	if rec.URL == "" {
		// Nothing to open; dim the badge like the export page's
		// disabled link.
		return badgeNoLinkStyle.Render("NO LINK")
	}
	return badgeVideoStyle.Render("VIDEO")
}

func renderCard(rec apod.Record, selected bool, width int) string {
	inner := width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	badge := mediaBadge(rec)
	date := cardDateStyle.Render(sanitize(rec.Date))
	top := badge
	if gap := inner - lipgloss.Width(badge) - lipgloss.Width(date); gap >= 1 {
		top = badge + strings.Repeat(" ", gap) + date
	}

	titleLines := wrapText(sanitize(rec.Title), inner, cardBodyLines-1)
	var b strings.Builder
	b.WriteString(top)
	for i := 0; i < cardBodyLines-1; i++ {
		b.WriteString("\n")
		if i < len(titleLines) {
			b.WriteString(cardTitleStyle.Render(titleLines[i]))
		}
	}

	style := cardStyle
	if selected {
		style = cardActiveStyle
	}
	return style.Width(width - 2).Render(b.String())
}

// renderGallery lays records out as a grid of cards, keeping the row
// under the cursor in view.
func renderGallery(records []apod.Record, cursor, width, height int) string {
	if len(records) == 0 {
		return ""
	}

	cols := galleryColumns(width)
	cardWidth := width / cols

	rows := (len(records) + cols - 1) / cols
	visible := height / cardTotalHeight
	if visible < 1 {
		visible = 1
	}

	start := galleryScroll(rows, cursor/cols, visible)
	end := start + visible
	if end > rows {
		end = rows
	}

	rendered := make([]string, 0, end-start)
	for r := start; r < end; r++ {
		cards := make([]string, 0, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(records) {
				break
			}
			cards = append(cards, renderCard(records[i], i == cursor, cardWidth))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// galleryScroll returns the first visible row, keeping cursorRow in a
// window of visible rows without scrolling past the last row.
func galleryScroll(rows, cursorRow, visible int) int {
	start := 0
	if cursorRow >= visible {
		start = cursorRow - visible + 1
	}
	if start+visible > rows {
		start = rows - visible
	}
	if start < 0 {
		start = 0
	}
	return start
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// wrapText breaks s into lines of at most width runes, splitting on
// spaces where it can. A positive maxLines caps the result, truncating
// the last line with an ellipsis when text remains.
func wrapText(s string, width, maxLines int) []string {
	if width <= 0 {
		return nil
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var cur string
	for i := 0; i < len(words); i++ {
		w := words[i]
		switch {
		case cur == "":
			cur = w
		case len([]rune(cur))+1+len([]rune(w)) <= width:
			cur += " " + w
		default:
			if maxLines > 0 && len(lines) == maxLines-1 {
				rest := cur + " " + strings.Join(words[i:], " ")
				lines = append(lines, truncateStr(rest, width))
				return lines
			}
			lines = append(lines, truncateStr(cur, width))
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, truncateStr(cur, width))
	}
	return lines
}
