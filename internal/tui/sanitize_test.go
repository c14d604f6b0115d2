package tui

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "The Horsehead Nebula",
			want:  "The Horsehead Nebula",
		},
		{
			name:  "color sequence stripped",
			input: "danger \x1b[31mred\x1b[0m text",
			want:  "danger red text",
		},
		{
			name:  "cursor movement stripped",
			input: "a\x1b[2Jb",
			want:  "ab",
		},
		{
			name:  "bare escape pair stripped",
			input: "x\x1bcy",
			want:  "xy",
		},
		{
			name:  "newlines collapse to spaces",
			input: "first\nsecond\r\nthird",
			want:  "first second third",
		},
		{
			name:  "tabs and control bytes dropped",
			input: "a\tb\x00c\x07d",
			want:  "a bcd",
		},
		{
			name:  "runs of whitespace collapse",
			input: "wide   \n\n  gap",
			want:  "wide gap",
		},
		{
			name:  "unicode preserved",
			input: "Comet 67P/Churyumov–Gerasimenko ☄",
			want:  "Comet 67P/Churyumov–Gerasimenko ☄",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize(tt.input); got != tt.want {
				t.Errorf("sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
