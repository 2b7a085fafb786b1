package cmd

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	chronoerr "github.com/msto63/chrono/core/error"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorMuted   = lipgloss.Color("#94A3B8") // Slate 400
	colorError   = lipgloss.Color("#EF4444") // Red
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	markerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

type row struct {
	label string
	value string
}

// renderRows renders label/value pairs under a header.
func renderRows(header string, rows ...row) string {
	lines := make([]string, 0, len(rows)+1)
	if header != "" {
		lines = append(lines, headerStyle.Render(header))
	}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), valueStyle.Render(r.value)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderParseFailure shows the input with a marker under the failing byte.
func renderParseFailure(err *chronoerr.Error) string {
	input := err.Input()
	offset := err.Offset()
	if offset > len(input) {
		offset = len(input)
	}
	rows := []row{
		{"input", input},
		{"", strings.Repeat(" ", offset) + markerStyle.Render("^")},
		{"offset", strconv.Itoa(err.Offset())},
		{"code", err.Code().String()},
	}
	if example := err.Example(); example != "" {
		rows = append(rows, row{"example", example})
	}
	return renderRows("", rows...)
}
