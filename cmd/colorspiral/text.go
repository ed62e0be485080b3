package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC322F"))
	blockStyle = lipgloss.NewStyle().Width(6)
)

// textTable renders one line per entry:
//
//	label  (r, g, b)  #rrggbb  [block]
//
// Components are printed to two decimals without clamping, so a channel
// that falls a rounding error below zero shows as -0.00. The coloured block
// is only drawn for terminals.
func textTable(entries []entry, tty bool) string {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Label))
	}

	b := &strings.Builder{}
	for _, e := range entries {
		fmt.Fprintf(b, "%-*s  (%.2f, %.2f, %.2f)  %s", width, e.Label, e.Color.R, e.Color.G, e.Color.B, e.Color.Hex())
		if tty {
			b.WriteString("  " + blockStyle.Background(lipgloss.Color(e.Color.Hex())).Render(""))
		}
		b.WriteString("\n")
	}
	return b.String()
}
