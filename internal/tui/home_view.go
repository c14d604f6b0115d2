package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snowysli/09-nasa-space-explorer-v2/internal/facts"
)

var asciiLogo = []string{
	` █████╗ ██████╗  ██████╗ ██████╗ `,
	`██╔══██╗██╔══██╗██╔═══██╗██╔══██╗`,
	`███████║██████╔╝██║   ██║██║  ██║`,
	`██╔══██║██╔═══╝ ██║   ██║██║  ██║`,
	`██║  ██║██║     ╚██████╔╝██████╔╝`,
	`╚═╝  ╚═╝╚═╝      ╚═════╝ ╚═════╝ `,
}

func renderHomeScreen(width, height int, fact string, headlines []facts.Headline, updateVersion string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorSecondary)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "", labelStyle.Render("Astronomy Picture of the Day"), "", "")

	lines = append(lines,
		"        "+keyStyle.Render("[r]")+"  "+labelStyle.Render("Load the latest gallery"),
		"        "+keyStyle.Render("[f]")+"  "+labelStyle.Render("Pick a date range"),
		"",
		"        "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"),
	)

	if len(headlines) > 0 {
		lines = append(lines, "", "")
		for i, h := range headlines {
			if i >= 3 {
				break
			}
			lines = append(lines, helpDimStyle.Render("· "+truncateStr(sanitize(h.Title), 60)))
		}
	}

	if fact != "" {
		lines = append(lines, "", factStyle.Render(truncateStr("Did you know? "+fact, width-4)))
	}

	if updateVersion != "" {
		lines = append(lines, "",
			keyStyle.Render("Update available: v"+updateVersion))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
