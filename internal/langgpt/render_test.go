package langgpt

import (
	"strings"
	"testing"

	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/stretchr/testify/assert"
)

func TestRender_Minimal(t *testing.T) {
	got := Render(models.Role{Name: "Tutor", Description: "Teaches", Instructions: "Explain step by step."})

	want := `# Role: Tutor

## Profile
- Description: Teaches

## Skills
- Adaptable and knowledgeable

## Constraints
- Always provide accurate and helpful information

## Instructions
Explain step by step.

## Response
Please respond according to the above role definition and instructions.`
	assert.Equal(t, want, got)
}

func TestRender_AllSections(t *testing.T) {
	role := models.Role{
		Name:         "Chef Cooking",
		Description:  "Cooks",
		Background:   "Ten years in kitchens",
		Instructions: "Suggest recipes.",
		Skills:       []string{"Knife work", "Baking"},
		Constraints:  []string{"No raw eggs"},
		Workflow:     []string{"Ask about diet", "Suggest a dish"},
		InputFormat:  &models.Format{Type: "text"},
		OutputFormat: &models.Format{
			Type:       "recipe",
			Properties: []models.FormatField{{Name: "steps", Type: "array", Description: "Ordered <steps> & tips"}},
		},
		Examples: []string{"User: \"Pasta?\"\nAssistant: \"Sure.\"", "User: \"Cake?\""},
		Tools:    []string{"Timer"},
	}

	want := "# Role: Chef Cooking\n\n" +
		"## Profile\n- Description: Cooks\n- Background: Ten years in kitchens\n\n" +
		"## Skills\n- Knife work\n- Baking\n\n" +
		"## Constraints\n- No raw eggs\n\n" +
		"## Instructions\nSuggest recipes.\n\n" +
		"## Workflow\n1. Ask about diet\n2. Suggest a dish\n\n" +
		"## Input Format\n```json\n{\n  \"type\": \"text\"\n}\n```\n\n" +
		"## Output Format\n```json\n{\n  \"type\": \"recipe\",\n  \"properties\": {\n    \"steps\": {\n      \"type\": \"array\",\n      \"description\": \"Ordered <steps> & tips\"\n    }\n  }\n}\n```\n\n" +
		"## Examples\n### Example 1\nUser: \"Pasta?\"\nAssistant: \"Sure.\"\n\n### Example 2\nUser: \"Cake?\"\n\n" +
		"## Tools\n- Timer\n\n" +
		"## Response\nPlease respond according to the above role definition and instructions."

	assert.Equal(t, want, Render(role))
}

func TestRender_OmitsEmptyOptionalSections(t *testing.T) {
	got := Render(models.Role{
		Name:         "X",
		Description:  "d",
		Instructions: "i",
		Workflow:     []string{},
		Examples:     nil,
		Tools:        []string{},
	})

	assert.True(t, strings.HasPrefix(got, "# Role: X"))
	for _, heading := range []string{"## Workflow", "## Examples", "## Tools", "## Input Format", "## Output Format", "- Background:"} {
		assert.NotContains(t, got, heading)
	}
	assert.NotContains(t, got, "\n\n\n")
}

func TestRender_DoesNotMutateRole(t *testing.T) {
	role := models.Role{Name: "X", Description: "d", Instructions: "i", Skills: []string{"a"}}
	before := role.Clone()

	_ = Render(role)
	assert.Equal(t, before, role)
}
