package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
)

// modal is the detail dialog for a gallery card. It holds its own copy
// of the record fields rather than reading them back out of the view,
// so closing can reliably clear state.
type modal struct {
	open        bool
	url         string
	title       string
	date        string
	explanation string
	scroll      int

	// bounds of the dialog in the last render, for mouse hit tests
	box rect
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Open fills the dialog from rec and reports whether it opened.
// Records without a full-size image URL stay closed.
func (m *modal) Open(rec apod.Record) bool {
	url := rec.ImageURL()
	if url == "" {
		return false
	}
	m.open = true
	m.url = sanitize(url)
	m.title = sanitize(rec.Title)
	m.date = sanitize(rec.DisplayDate())
	m.explanation = sanitize(rec.Explanation)
	m.scroll = 0
	return true
}

// Close resets every field so nothing from this record bleeds into the
// next open.
func (m *modal) Close() {
	*m = modal{}
}

func (m *modal) scrollBy(delta int) {
	m.scroll += delta
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View renders the dialog centered on a screenW x screenH canvas and
// remembers where the box landed.
func (m *modal) View(screenW, screenH int) string {
	boxW := screenW - 8
	if boxW > 72 {
		boxW = 72
	}
	if boxW < 24 {
		boxW = 24
	}
	inner := boxW - 6 // border and horizontal padding

	title := wrapText(m.title, inner, 2)
	if len(title) == 0 {
		title = []string{"(untitled)"}
	}

	// Lines around the body: title, date, two blanks, link, help.
	fixed := len(title) + 5
	budget := screenH - 6 - fixed
	if budget < 3 {
		budget = 3
	}

	body := wrapText(m.explanation, inner, 0)
	if len(body) == 0 {
		body = []string{"(no explanation)"}
	}
	maxScroll := len(body) - budget
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	visible := body
	if len(body) > budget {
		visible = body[m.scroll:min(m.scroll+budget, len(body))]
	}

	lines := make([]string, 0, fixed+len(visible))
	for _, t := range title {
		lines = append(lines, dialogTitleStyle.Render(t))
	}
	lines = append(lines, dialogMetaStyle.Render(m.date), "")
	for _, l := range visible {
		lines = append(lines, dialogBodyStyle.Render(l))
	}
	lines = append(lines, "",
		dialogLinkStyle.Render(truncateStr("Image: "+m.url, inner)),
		helpDimStyle.Render("j/k scroll · o open · esc close"))

	box := dialogStyle.Width(boxW - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	m.box = rect{
		x: (screenW - lipgloss.Width(box)) / 2,
		y: (screenH - lipgloss.Height(box)) / 2,
		w: lipgloss.Width(box),
		h: lipgloss.Height(box),
	}

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}
