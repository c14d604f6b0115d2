package tui

import "strings"

// sanitize strips ANSI escape sequences and non-printing control
// characters from API-sourced text so it cannot corrupt the terminal.
// Newlines and tabs are collapsed to single spaces.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	const (
		stText = iota
		stEsc
		stCSI
	)
	state := stText

	for _, r := range s {
		switch state {
		case stEsc:
			if r == '[' {
				state = stCSI
			} else {
				// two-character escape, the second byte ends it
				state = stText
			}
		case stCSI:
			// CSI sequences end on a byte in the 0x40-0x7E range.
			if r >= 0x40 && r <= 0x7E {
				state = stText
			}
		default:
			switch {
			case r == 0x1B:
				state = stEsc
			case r == '\n' || r == '\t' || r == '\r':
				b.WriteRune(' ')
			case r < 0x20 || r == 0x7F:
				// drop other control characters
			default:
				b.WriteRune(r)
			}
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
