package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/cvi"
	"github.com/gogpu/cvi/internal/rows"
)

func summaryCmd(a *app) *cobra.Command {
	var format string
	var only []string

	c := &cobra.Command{
		Use:   "summary <rows-file|->",
		Short: "Print the scores, the group average and the derived type scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := selectRows(cmd.InOrStdin(), args[0], format, only)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), a.cfg.Render.Group, a.cfg.Render.MaxScore, rs)
		},
	}

	c.Flags().StringVar(&format, "input-format", "", "input format: json|csv|yaml (default from extension; json for stdin)")
	c.Flags().StringSliceVar(&only, "only", nil, "summarize only the named rows")
	c.Flags().String("group", "", "name of the averaged group profile")
	return c
}

const (
	nameWidth  = 16
	scoreWidth = 10
)

// printSummary writes one line per row, the averaged group profile when
// there are several rows, and the six type scores of whichever profile
// frames the diagram. Scores outside [0, maxScore] are flagged.
func printSummary(w io.Writer, group string, maxScore float64, rs []rows.Row) error {
	st := newStyles(w)
	ps := rows.Profiles(rs)

	var b strings.Builder
	cells := []string{lipgloss.NewStyle().Width(nameWidth).Render("Name")}
	for _, a := range cvi.Axes() {
		cells = append(cells, cell(a.Title()))
	}
	b.WriteString(st.header.Render(strings.Join(cells, "")))
	b.WriteString("\n")

	var rangeErrs []string
	for _, p := range ps {
		line := profileLine(st.name, p)
		if err := p.CheckRange(maxScore); err != nil {
			var re *cvi.RangeError
			if errors.As(err, &re) {
				rangeErrs = append(rangeErrs, re.Error())
			}
			line += " " + st.warn.Render("!")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	frame := ps[0]
	if len(ps) > 1 {
		frame = cvi.NewGroupProfile(group, ps).Average()
		b.WriteString(st.gray.Render(strings.Repeat("─", nameWidth+4*scoreWidth)))
		b.WriteString("\n")
		b.WriteString(profileLine(st.group, frame))
		b.WriteString("\n")
	}

	ts := frame.TypeScores()
	b.WriteString("\n")
	b.WriteString(st.header.Render("Types of " + frame.Name))
	b.WriteString("\n")
	for _, kv := range []struct {
		name  string
		score float64
	}{
		{"Intuitive", ts.Intuitive},
		{"Independent", ts.Independent},
		{"Practical", ts.Practical},
		{"Creative", ts.Creative},
		{"Community", ts.Community},
		{"Cognitive", ts.Cognitive},
	} {
		fmt.Fprintf(&b, "  %s %s\n", st.gray.Render(fmt.Sprintf("%-12s", kv.name)), cvi.FormatScore(kv.score))
	}

	for _, msg := range rangeErrs {
		b.WriteString(st.warn.Render("warning: " + msg))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func profileLine(name lipgloss.Style, p cvi.Profile) string {
	var b strings.Builder
	b.WriteString(name.Width(nameWidth).MaxHeight(1).Render(p.Name))
	for _, a := range cvi.Axes() {
		b.WriteString(cell(p.DisplayValue(a)))
	}
	return b.String()
}

func cell(s string) string {
	return lipgloss.NewStyle().Width(scoreWidth).Align(lipgloss.Right).Render(s)
}
