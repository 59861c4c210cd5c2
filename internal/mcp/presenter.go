package mcp

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatGeneration converts a GenerationResponse into the markdown returned by
// the generate tool. UsageInstructions already carries its own heading.
func FormatGeneration(resp models.GenerationResponse) string {
	var sb strings.Builder
	sb.WriteString("## Generated LangGPT Prompt\n\n")
	sb.WriteString(resp.Template)
	sb.WriteString("\n\n")
	sb.WriteString(resp.UsageInstructions)
	sb.WriteString("\n\n## Tips\n\n")
	if len(resp.Tips) == 0 {
		sb.WriteString("No specific tips available")
	} else {
		sb.WriteString(bulletList(resp.Tips))
	}
	return sb.String()
}

// FormatAnalysis converts an AnalysisResponse into markdown.
func FormatAnalysis(resp models.AnalysisResponse) string {
	a := resp.Analysis
	var sb strings.Builder
	sb.WriteString("## Prompt Analysis Results\n\n")
	fmt.Fprintf(&sb, "**Structure Score:** %d/10\n", a.StructureScore)
	fmt.Fprintf(&sb, "**Clarity Score:** %d/10\n", a.ClarityScore)
	fmt.Fprintf(&sb, "**Completeness Score:** %d/10\n\n", a.CompletenessScore)

	sections := []struct {
		title string
		items []string
	}{
		{"Strengths", a.Strengths},
		{"Weaknesses", a.Weaknesses},
		{"Suggestions", a.Suggestions},
		{"Recommendations", a.Recommendations},
	}
	for i, s := range sections {
		fmt.Fprintf(&sb, "### %s\n%s\n", s.title, bulletList(s.items))
		if i < len(sections)-1 {
			sb.WriteString("\n")
		}
	}

	if resp.ImprovedPrompt != "" {
		fmt.Fprintf(&sb, "\n### Improved Prompt\n\n%s", resp.ImprovedPrompt)
	}
	return sb.String()
}

// FormatOptimization converts an OptimizationResponse into markdown.
func FormatOptimization(resp models.OptimizationResponse) string {
	m := resp.ImprovementMetrics
	var sb strings.Builder
	sb.WriteString("## Prompt Optimization Results\n\n")
	fmt.Fprintf(&sb, "### Optimized Prompt\n\n%s\n\n", resp.OptimizedPrompt)
	fmt.Fprintf(&sb, "### Changes Made\n%s\n\n", bulletList(resp.ChangesMade))
	sb.WriteString("### Improvement Metrics\n")
	fmt.Fprintf(&sb, "- Clarity Improvement: +%d/10\n", m.ClarityImprovement)
	fmt.Fprintf(&sb, "- Conciseness Improvement: +%d/10\n", m.ConcisenessImprovement)
	fmt.Fprintf(&sb, "- Structure Improvement: +%d/10\n\n", m.StructureImprovement)
	fmt.Fprintf(&sb, "### Explanation\n%s", resp.Explanation)
	return sb.String()
}

// FormatRoles lists catalog entries. The heading of each entry is derived
// from its category, so override entries without a display title still read
// well ("data_analyst" -> "Data Analyst").
func FormatRoles(entries []prompts.Entry) string {
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, fmt.Sprintf("### %s\n- **Name:** %s\n- **Description:** %s\n- **Category:** %s\n",
			RoleTitle(e.Category), e.Category, e.Summary, e.Group))
	}
	return "## Available Predefined Roles\n\n" + strings.Join(items, "\n")
}

// RoleTitle turns a category key into a display title.
func RoleTitle(c prompts.Category) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}

// FormatError formats a tool failure for the calling model.
func FormatError(op string, err error) string {
	return fmt.Sprintf("Error %s: %s", op, err.Error())
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "- " + strings.Join(items, "\n- ")
}
