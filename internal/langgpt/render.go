// Package langgpt implements the LangGPT core: rendering role documents,
// generating roles from requests, and scoring and rewriting free-text prompts.
//
// Every operation is a pure function of its request. The CLI, MCP server and
// HTTP API all call into Service rather than re-implementing any of it.
package langgpt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/josephgoksu/langgpt-assistant/models"
)

// Render turns a role into its LangGPT markdown document. Sections appear in a
// fixed order separated by one blank line; optional sections with no content
// are left out entirely.
func Render(role models.Role) string {
	sections := make([]string, 0, 11)
	sections = append(sections, "# Role: "+role.Name)

	profile := "## Profile\n- Description: " + role.Description
	if role.Background != "" {
		profile += "\n- Background: " + role.Background
	}
	sections = append(sections, profile)

	sections = append(sections, "## Skills\n"+bulletsOr(role.Skills, defaultSkillLine))
	sections = append(sections, "## Constraints\n"+bulletsOr(role.Constraints, defaultConstraint))
	sections = append(sections, "## Instructions\n"+role.Instructions)

	if len(role.Workflow) > 0 {
		sections = append(sections, "## Workflow\n"+numbered(role.Workflow))
	}
	if role.InputFormat != nil {
		sections = append(sections, "## Input Format\n"+jsonBlock(role.InputFormat))
	}
	if role.OutputFormat != nil {
		sections = append(sections, "## Output Format\n"+jsonBlock(role.OutputFormat))
	}
	if len(role.Examples) > 0 {
		examples := make([]string, len(role.Examples))
		for i, ex := range role.Examples {
			examples[i] = fmt.Sprintf("### Example %d\n%s", i+1, ex)
		}
		sections = append(sections, "## Examples\n"+strings.Join(examples, "\n\n"))
	}
	if len(role.Tools) > 0 {
		sections = append(sections, "## Tools\n"+bullets(role.Tools))
	}

	sections = append(sections, responseDirective)
	return strings.Join(sections, "\n\n")
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}

func bulletsOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return bullets(items)
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, it)
	}
	return strings.Join(lines, "\n")
}

func jsonBlock(f *models.Format) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// Format holds only strings; encoding cannot fail.
	if err := enc.Encode(f); err != nil {
		panic(fmt.Sprintf("encode format: %v", err))
	}
	return "```json\n" + strings.TrimSuffix(buf.String(), "\n") + "\n```"
}
