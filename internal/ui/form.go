package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/langgpt-assistant/models"
)

// ErrFormCancelled is returned when the user leaves the form with Esc or Ctrl+C.
var ErrFormCancelled = errors.New("input cancelled")

type formField struct {
	label    string
	required bool
	list     bool
	input    textinput.Model
}

// generateForm collects a GenerationRequest one field at a time.
// Enter and Tab advance, Shift+Tab goes back, Enter on the last field submits.
type generateForm struct {
	fields    []formField
	focus     int
	err       string
	submitted bool
	cancelled bool
}

func newField(label, placeholder, value string, required, list bool) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Width = 60
	ti.SetValue(value)
	return formField{label: label, required: required, list: list, input: ti}
}

// Field order, used by request().
const (
	fieldRoleType = iota
	fieldDomain
	fieldTask
	fieldLevel
	fieldStyle
	fieldRequirements
	fieldConstraints
	fieldSkills
)

func newGenerateForm(initial models.GenerationRequest) generateForm {
	m := generateForm{fields: []formField{
		newField("Role type", "assistant", initial.RoleType, true, false),
		newField("Domain", "programming", initial.Domain, true, false),
		newField("Specific task", "debug code", initial.SpecificTask, true, false),
		newField("Expertise level", "beginner, intermediate, advanced or expert", string(initial.ExpertiseLevel), false, false),
		newField("Style", "concise and friendly", initial.Style, false, false),
		newField("Requirements", "comma separated", strings.Join(initial.Requirements, ", "), false, true),
		newField("Constraints", "comma separated", strings.Join(initial.Constraints, ", "), false, true),
		newField("Additional skills", "comma separated", strings.Join(initial.AdditionalSkills, ", "), false, true),
	}}
	m.fields[0].input.Focus()
	return m
}

func (m generateForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m generateForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyShiftTab, tea.KeyUp:
			return m.move(-1), nil
		case tea.KeyTab, tea.KeyDown:
			return m.move(1), nil
		case tea.KeyEnter:
			if m.focus < len(m.fields)-1 {
				return m.move(1), nil
			}
			if msg := m.validate(); msg != "" {
				m.err = msg
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m generateForm) move(delta int) generateForm {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
	m.err = ""
	return m
}

func (m generateForm) validate() string {
	for _, f := range m.fields {
		if f.required && strings.TrimSpace(f.input.Value()) == "" {
			return fmt.Sprintf("%s is required", f.label)
		}
	}
	return ""
}

func (m generateForm) View() string {
	var sb strings.Builder
	sb.WriteString("\n" + StyleH2.Render("Generate a LangGPT role") + "\n\n")
	for i, f := range m.fields {
		label := f.label
		if f.required {
			label += " *"
		}
		if i == m.focus {
			sb.WriteString(StyleFocused.Render("› "+label) + "\n")
		} else {
			sb.WriteString(StyleBlurred.Render("  "+label) + "\n")
		}
		sb.WriteString("  " + f.input.View() + "\n")
	}
	if m.err != "" {
		sb.WriteString("\n" + StyleError.Render(m.err) + "\n")
	}
	sb.WriteString("\n" + StyleSubtle.Render("Enter/Tab next • Shift+Tab back • Enter on last field submits • Esc cancel") + "\n")
	return sb.String()
}

func (m generateForm) value(i int) string {
	return strings.TrimSpace(m.fields[i].input.Value())
}

func (m generateForm) listValue(i int) []string {
	var out []string
	for _, part := range strings.Split(m.fields[i].input.Value(), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// request merges the form values over base, keeping fields the form does not show.
func (m generateForm) request(base models.GenerationRequest) models.GenerationRequest {
	base.RoleType = m.value(fieldRoleType)
	base.Domain = m.value(fieldDomain)
	base.SpecificTask = m.value(fieldTask)
	base.ExpertiseLevel = models.ExpertiseLevel(strings.ToLower(m.value(fieldLevel)))
	base.Style = m.value(fieldStyle)
	base.Requirements = m.listValue(fieldRequirements)
	base.Constraints = m.listValue(fieldConstraints)
	base.AdditionalSkills = m.listValue(fieldSkills)
	return base
}

// PromptGenerationRequest runs the interactive form pre-filled from initial.
func PromptGenerationRequest(initial models.GenerationRequest) (models.GenerationRequest, error) {
	p := tea.NewProgram(newGenerateForm(initial))
	finalModel, err := p.Run()
	if err != nil {
		return models.GenerationRequest{}, fmt.Errorf("error running form: %w", err)
	}

	result := finalModel.(generateForm)
	if result.cancelled || !result.submitted {
		return models.GenerationRequest{}, ErrFormCancelled
	}
	return result.request(initial), nil
}
