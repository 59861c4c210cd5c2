package models

// ExpertiseLevel is the audience level a generated role is pitched at.
type ExpertiseLevel string

const (
	LevelBeginner     ExpertiseLevel = "beginner"
	LevelIntermediate ExpertiseLevel = "intermediate"
	LevelAdvanced     ExpertiseLevel = "advanced"
	LevelExpert       ExpertiseLevel = "expert"
)

// AnalysisType selects which suggestions and recommendations an analysis produces.
type AnalysisType string

const (
	AnalysisStructure     AnalysisType = "structure"
	AnalysisEffectiveness AnalysisType = "effectiveness"
	AnalysisImprovement   AnalysisType = "improvement"
	AnalysisCompleteness  AnalysisType = "completeness"
)

// ValidAnalysisTypes returns all accepted analysis types.
func ValidAnalysisTypes() []AnalysisType {
	return []AnalysisType{AnalysisStructure, AnalysisEffectiveness, AnalysisImprovement, AnalysisCompleteness}
}

// GenerationRequest asks for a new role document.
type GenerationRequest struct {
	RoleType         string         `json:"role_type" validate:"required" jsonschema:"Type of role to generate (e.g. assistant, expert, tutor)"`
	Domain           string         `json:"domain" validate:"required" jsonschema:"Domain or field (e.g. programming, writing, analysis)"`
	SpecificTask     string         `json:"specific_task" validate:"required" jsonschema:"Specific task or function"`
	Requirements     []string       `json:"requirements,omitempty" jsonschema:"Additional requirements"`
	Constraints      []string       `json:"constraints,omitempty" jsonschema:"Constraints or limitations"`
	Style            string         `json:"style,omitempty" jsonschema:"Communication style"`
	ExpertiseLevel   ExpertiseLevel `json:"expertise_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert" jsonschema:"One of beginner, intermediate, advanced, expert"`
	OutputFormat     string         `json:"output_format,omitempty" jsonschema:"Desired output format"`
	Examples         bool           `json:"examples,omitempty" jsonschema:"Whether to include example dialogues"`
	AdditionalSkills []string       `json:"additional_skills,omitempty" jsonschema:"Extra skills appended to the role"`
}

// AnalysisRequest asks for a heuristic critique of a prompt.
type AnalysisRequest struct {
	Prompt         string       `json:"prompt" jsonschema:"The prompt to analyze"`
	AnalysisType   AnalysisType `json:"analysis_type" validate:"required,oneof=structure effectiveness improvement completeness" jsonschema:"One of structure, effectiveness, improvement, completeness"`
	TargetAudience string       `json:"target_audience,omitempty" jsonschema:"Target audience"`
	UseCase        string       `json:"use_case,omitempty" jsonschema:"Intended use case"`
}

// StylePreferences toggles contraction handling during optimization.
type StylePreferences struct {
	Formal bool `json:"formal,omitempty" jsonschema:"Expand contractions"`
	Casual bool `json:"casual,omitempty" jsonschema:"Contract expanded forms"`
}

// OptimizationRequest asks for a rule-based rewrite of a prompt.
type OptimizationRequest struct {
	OriginalPrompt    string            `json:"original_prompt" validate:"required" jsonschema:"Original prompt to optimize"`
	OptimizationGoals []string          `json:"optimization_goals" validate:"required,min=1" jsonschema:"Goals for optimization: clarity, conciseness, structure"`
	Constraints       []string          `json:"constraints,omitempty" jsonschema:"Constraints to maintain"`
	TargetLength      int               `json:"target_length,omitempty" validate:"omitempty,min=1" jsonschema:"Target length in words"`
	StylePreferences  *StylePreferences `json:"style_preferences,omitempty" jsonschema:"Style preferences"`
}
