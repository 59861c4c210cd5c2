package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/josephgoksu/langgpt-assistant/internal/config"
	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		contains []string
	}{
		{
			name:     "catalog role",
			args:     []string{"generate", "--role-type", "assistant", "--domain", "programming", "--task", "review Go code", "--quiet"},
			contains: []string{"# Role: Assistant Programming", "## Workflow"},
		},
		{
			name:     "catalog data role",
			args:     []string{"generate", "--role-type", "analyst", "--domain", "data", "--task", "explain churn", "--quiet"},
			contains: []string{"# Role: Analyst Data", "You are an expert data analyst", "Specific Focus: explain churn"},
		},
		{
			name:     "synthesized role",
			args:     []string{"generate", "--role-type", "tutor", "--domain", "cooking", "--task", "teach knife skills", "--level", "beginner", "--quiet"},
			contains: []string{"# Role: Tutor Cooking", "teach knife skills"},
		},
		{
			name:    "missing task",
			args:    []string{"generate", "--role-type", "assistant", "--domain", "programming"},
			wantErr: "specific_task",
		},
		{
			name:    "bad level",
			args:    []string{"generate", "--role-type", "assistant", "--domain", "programming", "--task", "x", "--level", "guru"},
			wantErr: "expertise_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestGenerateCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "generate", "--role-type", "analyst", "--domain", "analysis", "--task", "explain churn", "--json")
	require.NoError(t, err)

	var resp models.GenerationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Analyst Analysis", resp.Role.Name)
	assert.NotEmpty(t, resp.Tips)
}

func TestGenerateCmd_WritesOutFile(t *testing.T) {
	out, err := execute(t, "", "generate", "--role-type", "assistant", "--domain", "writing", "--task", "edit essays", "--out", "roles/writer.md", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := afero.ReadFile(appFs, "roles/writer.md")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Role: Assistant Writing")
}

func TestAnalyzeCmd_Stdin(t *testing.T) {
	out, err := execute(t, "Help me write emails.\n", "analyze", "--type", "improvement", "--json", "-")
	require.NoError(t, err)

	var resp models.AnalysisResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.ImprovedPrompt, "# Role Definition\n\nHelp me write emails."))
	assert.Contains(t, resp.ImprovedPrompt, "## Examples")
}

func TestAnalyzeCmd_QuietScores(t *testing.T) {
	out, err := execute(t, "", "analyze", "--quiet", "")
	require.NoError(t, err)

	var scores map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &scores))
	assert.Equal(t, map[string]int{"structure_score": 5, "clarity_score": 5, "completeness_score": 5}, scores)
}

func TestAnalyzeCmd_BadType(t *testing.T) {
	_, err := execute(t, "", "analyze", "--type", "vibes", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis_type")
}

func TestOptimizeCmd(t *testing.T) {
	out, err := execute(t, "", "optimize", "--goal", "clarity", "--quiet", "Be good.")
	require.NoError(t, err)
	assert.Equal(t, "Be high-quality.\n\nPlease provide specific, detailed responses.\n", out)
}

func TestOptimizeCmd_RequiresGoal(t *testing.T) {
	_, err := execute(t, "", "optimize", "Be good.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal")
}

func TestRolesCmd(t *testing.T) {
	out, err := execute(t, "", "roles", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "programming_assistant\nwriting_assistant\ndata_analyst\nresearch_assistant\n", out)

	out, err = execute(t, "", "roles", "--category", "research", "--json")
	require.NoError(t, err)
	var entries []prompts.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, prompts.Category("research_assistant"), entries[0].Category)

	out, err = execute(t, "", "roles")
	require.NoError(t, err)
	assert.Contains(t, out, " Category")
	assert.Contains(t, out, "writing_assistant")
	assert.Contains(t, out, "Writing Assistant")

	out, err = execute(t, "", "roles", "--details", "--category", "analysis")
	require.NoError(t, err)
	assert.Contains(t, out, "### Data Analyst")
	assert.Contains(t, out, "- **Category:** analysis")

	out, err = execute(t, "", "roles", "--category", "cooking")
	require.NoError(t, err)
	assert.Contains(t, out, `No roles in category "cooking"`)
}

func TestRolesShowCmd(t *testing.T) {
	out, err := execute(t, "", "roles", "show", "data_analyst", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "# Role: Data Analyst")

	_, err = execute(t, "", "roles", "show", "chef")
	require.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	_, err := execute(t, "", "config", "init", "--path", "conf/.langgpt.yaml", "--quiet")
	require.NoError(t, err)

	data, err := afero.ReadFile(appFs, "conf/.langgpt.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "port: 8080")

	out, err := execute(t, "", "config", "show", "--json")
	require.NoError(t, err)
	var cfg config.AppConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
}

func TestConfigGetCmd(t *testing.T) {
	t.Setenv("LANGGPT_SERVER_PORT", "9090")
	out, err := execute(t, "", "config", "get", "server.port")
	require.NoError(t, err)
	assert.Equal(t, "9090\n", out)

	_, err = execute(t, "", "config", "get", "nope.key")
	require.Error(t, err)
}

func TestDoctorCmd(t *testing.T) {
	out, err := execute(t, "", "doctor", "--json")
	require.NoError(t, err)

	var checks []DoctorCheck
	require.NoError(t, json.Unmarshal([]byte(out), &checks))
	require.Len(t, checks, 5)
	for _, c := range checks[:4] {
		assert.Equal(t, checkOK, c.Status, c.Name)
	}
	assert.Equal(t, "4 roles from built-in", checks[1].Message)
}

func TestDoctorCmd_BadCatalog(t *testing.T) {
	t.Setenv("LANGGPT_CATALOG_FILE", "missing/catalog.yaml")
	out, err := execute(t, "", "doctor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctor found 1 problem(s)")
	assert.Contains(t, out, "❌ Role catalog")
	assert.Contains(t, out, "Fix or remove catalog.file")
}
