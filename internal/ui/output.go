package ui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/term"
)

// IsInteractive checks if stdin and stdout are both terminals.
// Prompts are skipped when piping or running in non-interactive environments.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Printer writes markdown either styled (terminal) or verbatim (pipe, file).
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter styles output only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: isTerminal(w)}
}

// NewPlainPrinter never styles.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Markdown prints md followed by a newline.
func (p *Printer) Markdown(md string) {
	if p.styled {
		md = RenderMarkdown(md)
	}
	fmt.Fprintln(p.w, md)
}

// Success prints a one-line confirmation.
func (p *Printer) Success(msg string) {
	if p.styled {
		msg = Icon("✓", StyleSuccess) + " " + msg
	}
	fmt.Fprintln(p.w, msg)
}

var boldLabel = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// RenderMarkdown applies terminal styles to the headings, bullets and bold
// labels of md. Fenced blocks are dimmed and otherwise left alone.
func RenderMarkdown(md string) string {
	lines := strings.Split(md, "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			lines[i] = StyleCode.Render(line)
			continue
		}
		if inFence {
			lines[i] = StyleCode.Render(line)
			continue
		}
		switch {
		case strings.HasPrefix(line, "### "):
			lines[i] = StyleH3.Render(strings.TrimPrefix(line, "### "))
		case strings.HasPrefix(line, "## "):
			lines[i] = StyleH2.Render(strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "# "):
			lines[i] = StyleH1.Render(strings.TrimPrefix(line, "# "))
		case strings.HasPrefix(line, "- "):
			lines[i] = StyleBullet.Render("•") + " " + styleLabels(strings.TrimPrefix(line, "- "))
		default:
			lines[i] = styleLabels(line)
		}
	}
	return strings.Join(lines, "\n")
}

func styleLabels(line string) string {
	return boldLabel.ReplaceAllStringFunc(line, func(m string) string {
		return StyleLabel.Render(strings.Trim(m, "*"))
	})
}

// Truncate truncates a string to maxLen runes, adding ellipsis if needed.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
