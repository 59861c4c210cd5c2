package prompts

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasFourRolesInOrder(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []Category{ProgrammingAssistant, WritingAssistant, DataAnalyst, ResearchAssistant}, c.Categories())

	r, ok := c.Role(ProgrammingAssistant)
	require.True(t, ok)
	assert.Equal(t, "Programming Assistant", r.Name)
	assert.Len(t, r.Skills, 7)
	assert.Len(t, r.Examples, 2)
	assert.Contains(t, r.Instructions, "1. Help users write, debug, and optimize code")
}

func TestCatalog_RoleReturnsCopy(t *testing.T) {
	c := MustDefault()

	r, _ := c.Role(DataAnalyst)
	r.Skills[0] = "mutated"
	r.Constraints = append(r.Constraints, "extra")

	again, _ := c.Role(DataAnalyst)
	assert.Equal(t, "Statistical analysis and modeling", again.Skills[0])
	assert.Len(t, again.Constraints, 4)
}

func TestCatalog_EntriesByGroup(t *testing.T) {
	c := MustDefault()

	assert.Len(t, c.Entries(""), 4)

	research := c.Entries("research")
	require.Len(t, research, 1)
	assert.Equal(t, ResearchAssistant, research[0].Category)
	assert.Equal(t, "fas fa-microscope", research[0].Icon)

	assert.Empty(t, c.Entries("cooking"))
}

func TestCatalog_EntryUnknown(t *testing.T) {
	_, err := MustDefault().Entry("chef")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	c, err := Load(afero.NewMemMapFs(), "  ")
	require.NoError(t, err)
	assert.Same(t, MustDefault(), c)
}

func TestLoad_OverrideReplacesAndAppends(t *testing.T) {
	fs := afero.NewMemMapFs()
	override := `roles:
  - category: writing_assistant
    group: writing
    summary: House style editor
    role:
      name: Editor
      description: Edits copy to the house style
      instructions: Follow the style guide.
  - category: legal_assistant
    group: legal
    summary: Contract reviewer
    role:
      name: Legal Assistant
      description: Reviews contracts
      instructions: Flag risky clauses.
`
	require.NoError(t, afero.WriteFile(fs, "/etc/langgpt/roles.yaml", []byte(override), 0o644))

	c, err := Load(fs, "/etc/langgpt/roles.yaml")
	require.NoError(t, err)

	assert.Equal(t, []Category{ProgrammingAssistant, WritingAssistant, DataAnalyst, ResearchAssistant, "legal_assistant"}, c.Categories())

	w, ok := c.Role(WritingAssistant)
	require.True(t, ok)
	assert.Equal(t, "Editor", w.Name)

	// the embedded catalog is untouched
	orig, _ := MustDefault().Role(WritingAssistant)
	assert.Equal(t, "Writing Assistant", orig.Name)
}

func TestLoad_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("roles: [ {"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "invalid.yaml", []byte("roles:\n  - category: x\n    role:\n      name: X\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "dup.yaml", []byte(`roles:
  - category: x
    role: {name: X, description: d, instructions: i}
  - category: x
    role: {name: Y, description: d, instructions: i}
`), 0o644))

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "missing file", path: "nope.yaml", want: "not found"},
		{name: "malformed yaml", path: "bad.yaml", want: "parse catalog file"},
		{name: "role fails validation", path: "invalid.yaml", want: "'description' is required"},
		{name: "duplicate category", path: "dup.yaml", want: "duplicate category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fs, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFindCategory(t *testing.T) {
	tests := []struct {
		domain string
		want   Category
		found  bool
	}{
		{"programming", ProgrammingAssistant, true},
		{"Software Engineering", ProgrammingAssistant, true},
		{"copywriting", WritingAssistant, true},
		{"Big Data", DataAnalyst, true},
		{"academic publishing", ResearchAssistant, true},
		{"programming and research", ProgrammingAssistant, true},
		{"content strategy for data teams", WritingAssistant, true},
		{"cooking", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			got, ok := FindCategory(tt.domain)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
