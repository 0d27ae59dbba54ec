package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to a renderer so colour support follows the writer
// the output goes to, not the process stdout.
type styles struct {
	header lipgloss.Style
	name   lipgloss.Style
	group  lipgloss.Style
	gray   lipgloss.Style
	warn   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		name:   r.NewStyle().Bold(true),
		group:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		gray:   r.NewStyle().Foreground(lipgloss.Color("8")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}
