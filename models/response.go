package models

// Variable is a placeholder a caller is expected to fill when using a generated role.
type Variable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
}

// GenerationResponse is the result of generating a role.
type GenerationResponse struct {
	Success           bool       `json:"success"`
	Role              Role       `json:"role"`
	Template          string     `json:"template"`
	Variables         []Variable `json:"variables,omitempty"`
	UsageInstructions string     `json:"usage_instructions"`
	Tips              []string   `json:"tips"`
}

// Analysis holds the scores and critique lists of an analyzed prompt.
type Analysis struct {
	StructureScore    int      `json:"structure_score"`
	ClarityScore      int      `json:"clarity_score"`
	CompletenessScore int      `json:"completeness_score"`
	Suggestions       []string `json:"suggestions"`
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	Recommendations   []string `json:"recommendations"`
}

// AnalysisResponse is the result of analyzing a prompt.
type AnalysisResponse struct {
	Success        bool     `json:"success"`
	Analysis       Analysis `json:"analysis"`
	ImprovedPrompt string   `json:"improved_prompt,omitempty"`
}

// ImprovementMetrics are the fixed-increment scores reported by the optimizer.
type ImprovementMetrics struct {
	ClarityImprovement     int `json:"clarity_improvement"`
	ConcisenessImprovement int `json:"conciseness_improvement"`
	StructureImprovement   int `json:"structure_improvement"`
}

// OptimizationResponse is the result of optimizing a prompt.
type OptimizationResponse struct {
	Success            bool               `json:"success"`
	OptimizedPrompt    string             `json:"optimized_prompt"`
	ChangesMade        []string           `json:"changes_made"`
	ImprovementMetrics ImprovementMetrics `json:"improvement_metrics"`
	Explanation        string             `json:"explanation"`
}
