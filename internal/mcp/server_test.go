package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/internal/logger"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) *mcpsdk.ClientSession {
	t.Helper()
	ctx := context.Background()

	svc := langgpt.NewService(prompts.MustDefault(), langgpt.WithLogger(logger.Discard()))
	srv := NewServer(svc, "test", logger.Discard())

	st, ct := mcpsdk.NewInMemoryTransports()
	ss, err := srv.MCP().Connect(ctx, st)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, ct)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func callText(t *testing.T, cs *mcpsdk.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}

func TestTools(t *testing.T) {
	cs := connect(t)

	tests := []struct {
		name        string
		tool        string
		args        map[string]any
		wantError   bool
		wantContain []string
	}{
		{
			name: "generate from catalog",
			tool: ToolGenerate,
			args: map[string]any{"role_type": "assistant", "domain": "programming", "specific_task": "debug code"},
			wantContain: []string{
				"## Generated LangGPT Prompt\n\n# Role: Assistant Programming",
				"## Usage Instructions",
				"## Tips\n\n- ",
			},
		},
		{
			name:        "generate missing task",
			tool:        ToolGenerate,
			args:        map[string]any{"role_type": "assistant", "domain": "cooking", "specific_task": ""},
			wantError:   true,
			wantContain: []string{"Error generating prompt", "'specific_task' is required"},
		},
		{
			name:        "analyze empty prompt",
			tool:        ToolAnalyze,
			args:        map[string]any{"prompt": "", "analysis_type": "effectiveness"},
			wantContain: []string{"**Structure Score:** 5/10", "**Clarity Score:** 5/10", "**Completeness Score:** 5/10"},
		},
		{
			name:        "analyze bad type",
			tool:        ToolAnalyze,
			args:        map[string]any{"prompt": "x", "analysis_type": "vibes"},
			wantError:   true,
			wantContain: []string{"'analysis_type' must be one of"},
		},
		{
			name:        "optimize unknown goal",
			tool:        ToolOptimize,
			args:        map[string]any{"original_prompt": "keep me", "optimization_goals": []string{"speed"}},
			wantContain: []string{"### Optimized Prompt\n\nkeep me\n\n", "### Changes Made\n\n\n"},
		},
		{
			name:        "optimize without goals",
			tool:        ToolOptimize,
			args:        map[string]any{"original_prompt": "keep me", "optimization_goals": []string{}},
			wantError:   true,
			wantContain: []string{"'optimization_goals' must be at least 1"},
		},
		{
			name:        "generate ignores unknown keys",
			tool:        ToolGenerate,
			args:        map[string]any{"role_type": "assistant", "domain": "programming", "specific_task": "debug code", "bogus_extra": 1},
			wantContain: []string{"# Role: Assistant Programming"},
		},
		{
			name: "optimize ignores unknown style keys",
			tool: ToolOptimize,
			args: map[string]any{
				"original_prompt":    "don't stop",
				"optimization_goals": []string{"clarity"},
				"style_preferences":  map[string]any{"formal": true, "tone": "warm"},
			},
			wantContain: []string{"do not stop", "Applied style preferences"},
		},
		{
			name:        "generate without task key",
			tool:        ToolGenerate,
			args:        map[string]any{"role_type": "assistant", "domain": "programming"},
			wantError:   true,
			wantContain: []string{"Error generating prompt", "'specific_task' is required"},
		},
		{
			name:        "roles filtered",
			tool:        ToolRoles,
			args:        map[string]any{"category": "research"},
			wantContain: []string{"### Research Assistant", "- **Category:** research"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callText(t, cs, tt.tool, tt.args)
			assert.Equal(t, tt.wantError, isErr)
			for _, want := range tt.wantContain {
				assert.Contains(t, text, want)
			}
		})
	}
}

func TestTools_OpenInputSchema(t *testing.T) {
	cs := connect(t)
	res, err := cs.ListTools(context.Background(), &mcpsdk.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, res.Tools, 4)

	for _, tool := range res.Tools {
		require.NotNil(t, tool.InputSchema, tool.Name)
		assert.Empty(t, tool.InputSchema.Required, tool.Name)
		assert.Nil(t, tool.InputSchema.AdditionalProperties, tool.Name)
		if tool.Name == ToolOptimize {
			style := tool.InputSchema.Properties["style_preferences"]
			require.NotNil(t, style)
			assert.Nil(t, style.AdditionalProperties)
		}
	}
}

func TestRolesTool_AllGroups(t *testing.T) {
	cs := connect(t)
	text, isErr := callText(t, cs, ToolRoles, map[string]any{})
	require.False(t, isErr)
	assert.Equal(t, 4, strings.Count(text, "### "))
}

func TestPrompts(t *testing.T) {
	cs := connect(t)
	ctx := context.Background()

	res, err := cs.GetPrompt(ctx, &mcpsdk.GetPromptParams{
		Name:      string(prompts.KeyQuickRoleGenerator),
		Arguments: map[string]string{"role_name": "Chef", "main_task": "plan menus"},
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.EqualValues(t, "user", res.Messages[0].Role)
	text, ok := res.Messages[0].Content.(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Chef")
	assert.Contains(t, text.Text, "plan menus")

	_, err = cs.GetPrompt(ctx, &mcpsdk.GetPromptParams{
		Name:      string(prompts.KeyPromptAnalyzer),
		Arguments: map[string]string{"prompt_text": "hi"},
	})
	assert.Error(t, err, "analysis_focus is required")
}

func TestRoleResources(t *testing.T) {
	cs := connect(t)
	ctx := context.Background()

	res, err := cs.ReadResource(ctx, &mcpsdk.ReadResourceParams{URI: RoleResourcePrefix + string(prompts.DataAnalyst)})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "text/markdown", res.Contents[0].MIMEType)
	assert.True(t, strings.HasPrefix(res.Contents[0].Text, "# Role: Data Analyst"))

	all, err := cs.ReadResource(ctx, &mcpsdk.ReadResourceParams{URI: "langgpt://roles"})
	require.NoError(t, err)
	assert.Contains(t, all.Contents[0].Text, `"category": "programming_assistant"`)
}
