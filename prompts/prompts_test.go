package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Build(t *testing.T) {
	tests := []struct {
		name string
		key  PromptKey
		args map[string]string
		want string
	}{
		{
			name: "quick role defaults to intermediate",
			key:  KeyQuickRoleGenerator,
			args: map[string]string{"role_name": "Data Scientist", "main_task": "analyze datasets"},
			want: "Generate a LangGPT role for a intermediate level Data Scientist whose main task is to analyze datasets. Include a clear role definition, skills, constraints, and instructions.",
		},
		{
			name: "quick role with level",
			key:  KeyQuickRoleGenerator,
			args: map[string]string{"role_name": "Tutor", "main_task": "teach", "expertise_level": "advanced"},
			want: "Generate a LangGPT role for a advanced level Tutor whose main task is to teach. Include a clear role definition, skills, constraints, and instructions.",
		},
		{
			name: "analyzer with audience",
			key:  KeyPromptAnalyzer,
			args: map[string]string{"prompt_text": "You help.", "analysis_focus": "clarity", "target_audience": "beginner"},
			want: "Analyze this prompt focusing on clarity for beginner audience:\n\n\"You help.\"\n\nProvide specific suggestions for improvement and an enhanced version.",
		},
		{
			name: "customizer without extras",
			key:  KeyRoleCustomizer,
			args: map[string]string{"base_role": "data_analyst", "custom_domain": "finance"},
			want: "Customize the data_analyst role for the finance domain.\n\nProvide the customized role definition with all necessary sections.",
		},
		{
			name: "customizer with extras",
			key:  KeyRoleCustomizer,
			args: map[string]string{"base_role": "data_analyst", "custom_domain": "finance", "additional_skills": "Excel", "specific_constraints": "no advice"},
			want: "Customize the data_analyst role for the finance domain. Add these skills: Excel Add these constraints: no advice\n\nProvide the customized role definition with all necessary sections.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := GetTemplate(tt.key)
			require.NoError(t, err)
			got, err := tmpl.Build(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplate_BuildMissingArgs(t *testing.T) {
	tmpl, err := GetTemplate(KeyRoleCustomizer)
	require.NoError(t, err)

	_, err = tmpl.Build(map[string]string{"base_role": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom_domain")
}

func TestGetTemplate_Unknown(t *testing.T) {
	_, err := GetTemplate("nope")
	assert.Error(t, err)
	assert.Len(t, Templates(), 3)
}
