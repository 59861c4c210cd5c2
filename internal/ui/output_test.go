package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Markdown("## Title\n- **Label:** value")
	p.Success("saved")
	assert.Equal(t, "## Title\n- **Label:** value\nsaved\n", buf.String())
}

func TestRenderMarkdown(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	md := "# Role: X\n## Profile\n### Strengths\n- **Name:** y\n```json\n- not a bullet\n```\nplain"
	out := RenderMarkdown(md)
	assert.NotEqual(t, md, out)
	assert.Contains(t, out, "\x1b[")
	lines := strings.Split(ansi.Strip(out), "\n")

	assert.Len(t, lines, 8)
	assert.NotContains(t, lines[0], "# ")
	assert.Contains(t, lines[0], "Role: X")
	assert.Contains(t, lines[1], "Profile")
	assert.NotContains(t, lines[1], "##")
	assert.Contains(t, lines[3], "•")
	assert.NotContains(t, lines[3], "**")
	assert.Contains(t, lines[5], "- not a bullet", "fenced lines are not restyled as bullets")
	assert.Equal(t, "Role: X", lines[0])
	assert.Equal(t, "• Name: y", lines[3])
	assert.Equal(t, "plain", lines[7])
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"empty", "", 10, ""},
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"zero max", "hello", 0, "hello"},
		{"multibyte", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}
