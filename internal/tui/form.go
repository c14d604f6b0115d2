package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/apod"
	"github.com/snowysli/09-nasa-space-explorer-v2/internal/dates"
)

// rangeForm is the date range picker. Unparseable input degrades to an
// open side rather than blocking the fetch.
type rangeForm struct {
	start textinput.Model
	end   textinput.Model
	focus int
}

func newRangeForm() rangeForm {
	mk := func() textinput.Model {
		in := textinput.New()
		in.Placeholder = "YYYY-MM-DD"
		in.CharLimit = 10
		in.Width = 12
		in.Prompt = ""
		return in
	}
	f := rangeForm{start: mk(), end: mk()}
	f.start.Focus()
	return f
}

// setValues prefills both inputs and puts focus back on the start
// field.
func (f *rangeForm) setValues(start, end string) {
	f.start.SetValue(start)
	f.end.SetValue(end)
	f.focus = 0
	f.start.Focus()
	f.end.Blur()
}

func (f *rangeForm) focusNext() {
	if f.focus == 0 {
		f.focus = 1
		f.start.Blur()
		f.end.Focus()
	} else {
		f.focus = 0
		f.end.Blur()
		f.start.Focus()
	}
}

func (f *rangeForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.start, cmd = f.start.Update(msg)
	} else {
		f.end, cmd = f.end.Update(msg)
	}
	return cmd
}

// Range parses both sides, dropping any side that is not a date, and
// returns the normalized result.
func (f *rangeForm) Range() apod.DateRange {
	var r apod.DateRange
	if t, ok := dates.Parse(strings.TrimSpace(f.start.Value())); ok {
		r.Start = &t
	}
	if t, ok := dates.Parse(strings.TrimSpace(f.end.Value())); ok {
		r.End = &t
	}
	return r.Normalize()
}

func (f *rangeForm) view() string {
	rows := []string{
		dialogTitleStyle.Render("Date range"),
		"",
		formLabelStyle.Render("Start ") + f.start.View(),
		formLabelStyle.Render("End   ") + f.end.View(),
		"",
		helpDimStyle.Render("enter fetch · tab switch · esc cancel"),
	}
	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
