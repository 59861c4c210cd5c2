package prompts

import (
	"fmt"
	"strings"
)

// PromptKey identifies a reusable prompt template offered to MCP clients.
type PromptKey string

const (
	// KeyQuickRoleGenerator asks the model for a basic role from a name and a task.
	KeyQuickRoleGenerator PromptKey = "quick_role_generator"
	// KeyPromptAnalyzer asks the model to critique and improve a prompt.
	KeyPromptAnalyzer PromptKey = "prompt_analyzer"
	// KeyRoleCustomizer asks the model to adapt a predefined role to a new domain.
	KeyRoleCustomizer PromptKey = "role_customizer"
)

// Argument describes one named input of a prompt template.
type Argument struct {
	Name        string
	Description string
	Required    bool
}

// Template is a prompt offered to clients: metadata plus a text builder.
type Template struct {
	Key         PromptKey
	Title       string
	Description string
	Arguments   []Argument
	build       func(args map[string]string) string
}

// Build fills the template. Missing required arguments are reported by name.
func (t Template) Build(args map[string]string) (string, error) {
	var missing []string
	for _, a := range t.Arguments {
		if a.Required && strings.TrimSpace(args[a.Name]) == "" {
			missing = append(missing, a.Name)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("prompt %s: missing required arguments: %s", t.Key, strings.Join(missing, ", "))
	}
	return t.build(args), nil
}

var templates = []Template{
	{
		Key:         KeyQuickRoleGenerator,
		Title:       "Quick Role Generator",
		Description: "Generate a basic LangGPT role quickly with minimal input",
		Arguments: []Argument{
			{Name: "role_name", Description: `Name of the role (e.g., "Python Developer", "Content Writer")`, Required: true},
			{Name: "main_task", Description: "Main task or responsibility of the role", Required: true},
			{Name: "expertise_level", Description: "Expertise level required (beginner, intermediate, advanced, expert)"},
		},
		build: func(args map[string]string) string {
			level := args["expertise_level"]
			if level == "" {
				level = "intermediate"
			}
			return fmt.Sprintf("Generate a LangGPT role for a %s level %s whose main task is to %s. "+
				"Include a clear role definition, skills, constraints, and instructions.",
				level, args["role_name"], args["main_task"])
		},
	},
	{
		Key:         KeyPromptAnalyzer,
		Title:       "Prompt Analyzer",
		Description: "Analyze and improve an existing prompt",
		Arguments: []Argument{
			{Name: "prompt_text", Description: "The prompt to analyze", Required: true},
			{Name: "analysis_focus", Description: "What aspect to focus on (structure, clarity, effectiveness, completeness)", Required: true},
			{Name: "target_audience", Description: "Target audience for the prompt"},
		},
		build: func(args map[string]string) string {
			audience := ""
			if a := args["target_audience"]; a != "" {
				audience = " for " + a + " audience"
			}
			return fmt.Sprintf("Analyze this prompt focusing on %s%s:\n\n\"%s\"\n\n"+
				"Provide specific suggestions for improvement and an enhanced version.",
				args["analysis_focus"], audience, args["prompt_text"])
		},
	},
	{
		Key:         KeyRoleCustomizer,
		Title:       "Role Customizer",
		Description: "Customize a predefined role for specific needs",
		Arguments: []Argument{
			{Name: "base_role", Description: "Base role to customize (programming_assistant, writing_assistant, data_analyst, research_assistant)", Required: true},
			{Name: "custom_domain", Description: "Specific domain or field", Required: true},
			{Name: "additional_skills", Description: "Additional skills to add"},
			{Name: "specific_constraints", Description: "Specific constraints or limitations"},
		},
		build: func(args map[string]string) string {
			var b strings.Builder
			fmt.Fprintf(&b, "Customize the %s role for the %s domain.", args["base_role"], args["custom_domain"])
			if s := args["additional_skills"]; s != "" {
				b.WriteString(" Add these skills: " + s)
			}
			if c := args["specific_constraints"]; c != "" {
				b.WriteString(" Add these constraints: " + c)
			}
			b.WriteString("\n\nProvide the customized role definition with all necessary sections.")
			return b.String()
		},
	},
}

// Templates returns every prompt template in registration order.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// GetTemplate looks up a prompt template by key.
func GetTemplate(key PromptKey) (Template, error) {
	for _, t := range templates {
		if t.Key == key {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unrecognized prompt key: %s", key)
}
