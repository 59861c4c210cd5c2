package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows in a compact column layout for listings such as the
// role catalog.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // per column, 0 = unbounded
}

// ColumnWidths returns the display width of each column in runes.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}
	return widths
}

// Render returns the table with terminal styles applied.
func (t *Table) Render() string {
	return t.render(true)
}

// RenderPlain returns the table without styles, for pipes and files.
func (t *Table) RenderPlain() string {
	return t.render(false)
}

func (t *Table) render(styled bool) string {
	if len(t.Headers) == 0 {
		return ""
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	cell := lipgloss.NewStyle().Foreground(ColorText)
	dim := lipgloss.NewStyle().Foreground(ColorSecondary)
	paint := func(s lipgloss.Style, v string) string {
		if !styled {
			return v
		}
		return s.Render(v)
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	cells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = paint(header, padRight(h, widths[i]))
	}
	writeRow(&sb, cells)

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = paint(dim, strings.Repeat("─", w))
	}
	sb.WriteString(" " + strings.Join(seps, "──") + "\n")

	for _, row := range t.Rows {
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells[i] = paint(cell, padRight(fit(val, widths[i]), widths[i]))
		}
		writeRow(&sb, cells)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString(strings.TrimRight(" "+strings.Join(cells, "  "), " ") + "\n")
}

// fit shortens s to width runes, marking the cut with an ellipsis.
func fit(s string, width int) string {
	r := []rune(s)
	switch {
	case len(r) <= width:
		return s
	case width <= 1:
		return "…"
	default:
		return string(r[:width-1]) + "…"
	}
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Table prints t, styled only when the printer is.
func (p *Printer) Table(t *Table) {
	if p.styled {
		p.write(t.Render())
		return
	}
	p.write(t.RenderPlain())
}

func (p *Printer) write(s string) {
	_, _ = io.WriteString(p.w, s)
}
