package langgpt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/josephgoksu/langgpt-assistant/prompts"
)

// Generator builds role documents, either by customizing a catalog role that
// matches the request domain or by synthesizing one from the request fields.
type Generator struct {
	catalog *prompts.Catalog
}

// NewGenerator returns a generator backed by catalog.
func NewGenerator(catalog *prompts.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate builds the role, its rendered template, usage text and tips.
// Callers are expected to have validated req.
func (g *Generator) Generate(req models.GenerationRequest) models.GenerationResponse {
	var (
		role      models.Role
		variables []models.Variable
	)

	base, matched := g.lookup(req.Domain)
	if matched {
		role = customizeRole(base, req)
	} else {
		role = synthesizeRole(req)
		variables = synthesizedVariables()
	}

	return models.GenerationResponse{
		Success:           true,
		Role:              role,
		Template:          Render(role),
		Variables:         variables,
		UsageInstructions: usageInstructions(req),
		Tips:              tips(req),
	}
}

// MatchedCategory reports which catalog entry a domain selects, if any.
func (g *Generator) MatchedCategory(domain string) (prompts.Category, bool) {
	cat, ok := prompts.FindCategory(domain)
	if !ok {
		return "", false
	}
	if _, exists := g.catalog.Role(cat); !exists {
		return "", false
	}
	return cat, true
}

func (g *Generator) lookup(domain string) (models.Role, bool) {
	cat, ok := prompts.FindCategory(domain)
	if !ok {
		return models.Role{}, false
	}
	return g.catalog.Role(cat)
}

// titleFirst upper-cases the first rune and leaves the rest untouched.
func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func roleName(req models.GenerationRequest) string {
	return titleFirst(req.RoleType) + " " + titleFirst(req.Domain)
}

func level(req models.GenerationRequest) string {
	if req.ExpertiseLevel == "" {
		return defaultLevel
	}
	return string(req.ExpertiseLevel)
}

// customizeRole derives a request-specific role from a catalog role. base is
// already a private copy.
func customizeRole(base models.Role, req models.GenerationRequest) models.Role {
	role := base
	role.Name = roleName(req)
	role.Description = base.Description + " specializing in " + req.SpecificTask

	var b strings.Builder
	b.WriteString(base.Instructions)
	b.WriteString("\n\nSpecific Focus: " + req.SpecificTask)
	if len(req.Requirements) > 0 {
		b.WriteString("\nAdditional Requirements: " + strings.Join(req.Requirements, ", "))
	}
	if req.Style != "" {
		b.WriteString("\nCommunication Style: " + req.Style)
	}
	role.Instructions = b.String()

	role.Constraints = append(role.Constraints, req.Constraints...)
	role.Skills = append(role.Skills, req.AdditionalSkills...)
	return role
}

func synthesizeRole(req models.GenerationRequest) models.Role {
	lvl := level(req)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s %s in the field of %s. Your primary responsibility is to %s.",
		lvl, req.RoleType, req.Domain, req.SpecificTask)
	if len(req.Requirements) > 0 {
		b.WriteString("\n\nAdditional Requirements:\n" + bullets(req.Requirements))
	}
	if req.Style != "" {
		b.WriteString("\n\nCommunication Style: " + req.Style)
	}
	b.WriteString("\n\n" + closingSentence)

	skills := []string{
		"Expert knowledge in " + req.Domain,
		"Proficiency in " + req.SpecificTask,
		"Clear communication and explanation",
		"Problem-solving and analytical thinking",
	}
	skills = append(skills, req.AdditionalSkills...)

	constraints := append([]string(nil), req.Constraints...)
	if len(constraints) == 0 {
		constraints = append(constraints, synthesizedFallbackConstraints...)
	}

	role := models.Role{
		Name:         roleName(req),
		Description:  fmt.Sprintf("A %s %s specializing in %s with focus on %s", lvl, req.RoleType, req.Domain, req.SpecificTask),
		Instructions: b.String(),
		Skills:       skills,
		Constraints:  constraints,
		Workflow:     append([]string(nil), synthesizedWorkflow...),
	}

	if req.OutputFormat != "" {
		role.OutputFormat = structuredResponseFormat()
	}
	if req.Examples {
		role.Examples = []string{
			fmt.Sprintf("User: \"Can you help me with %s?\"\nAssistant: \"I'd be happy to help you with %s. Let me provide you with a comprehensive solution...\"",
				req.SpecificTask, req.SpecificTask),
			fmt.Sprintf("User: \"What are the best practices for %s?\"\nAssistant: \"Here are the key best practices for %s that you should consider...\"",
				req.Domain, req.Domain),
		}
	}
	return role
}

func usageInstructions(req models.GenerationRequest) string {
	return fmt.Sprintf(usageInstructionsTemplate, req.SpecificTask, req.Domain)
}

func tips(req models.GenerationRequest) []string {
	out := append([]string(nil), baseTips...)
	switch req.ExpertiseLevel {
	case models.LevelBeginner:
		out = append(out, beginnerTips...)
	case models.LevelExpert:
		out = append(out, expertTips...)
	}
	if req.Style != "" {
		out = append(out, fmt.Sprintf("Maintain the %s communication style in your interactions", req.Style))
	}
	return out
}

func failedGeneration() models.GenerationResponse {
	return models.GenerationResponse{
		Success:           false,
		UsageInstructions: generateFailedUsage,
		Tips:              []string{generateFailedTip},
	}
}
