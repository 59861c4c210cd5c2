package langgpt

import "github.com/josephgoksu/langgpt-assistant/models"

// Fixed reference text shared by the generator, analyzer and optimizer.

const (
	defaultLevel      = "expert"
	defaultSkillLine  = "- Adaptable and knowledgeable"
	defaultConstraint = "- Always provide accurate and helpful information"
	responseDirective = "## Response\nPlease respond according to the above role definition and instructions."
	closingSentence   = "Please provide clear, accurate, and helpful assistance while maintaining professional standards."
)

var synthesizedFallbackConstraints = []string{
	"Always provide accurate and reliable information",
	"Maintain professional and helpful tone",
	"Consider user context and needs",
}

var synthesizedWorkflow = []string{
	"Understand the user's question or problem",
	"Analyze the context and requirements",
	"Provide comprehensive and accurate assistance",
	"Offer additional insights or suggestions when helpful",
	"Ensure clarity and usefulness of response",
}

func structuredResponseFormat() *models.Format {
	return &models.Format{
		Type: "structured_response",
		Properties: []models.FormatField{
			{Name: "answer", Type: "string", Description: "Main response to the user's question"},
			{Name: "explanation", Type: "string", Description: "Detailed explanation or reasoning"},
			{Name: "examples", Type: "array", Description: "Relevant examples or code snippets"},
			{Name: "recommendations", Type: "array", Description: "Additional recommendations or next steps"},
		},
	}
}

func synthesizedVariables() []models.Variable {
	return []models.Variable{
		{Name: "user_query", Description: "The user's question or request", Type: "string", Required: true},
		{Name: "context", Description: "Additional context or background information", Type: "string", Required: false},
	}
}

const usageInstructionsTemplate = `## Usage Instructions

1. **Copy the template above** and paste it into your AI assistant's system prompt or role definition.

2. **Customize as needed**:
   - Adjust the role name and description to match your specific needs
   - Modify skills and constraints based on your requirements
   - Add or remove workflow steps as appropriate

3. **For best results**:
   - Provide clear, specific questions or tasks
   - Include relevant context and background information
   - Specify your preferred output format if needed

4. **Example usage**:
   "I need help with %s in the context of %s. Can you assist me with [specific question]?"

5. **Iterate and improve**:
   - Test the prompt with different types of questions
   - Refine based on the responses you receive
   - Adjust the role definition as needed for better results`

var (
	baseTips = []string{
		"Start with clear, specific questions to get the best responses",
		"Provide context and background information when relevant",
		"Be explicit about your desired output format and style",
		"Use the role's expertise level appropriately in your questions",
		"Iterate and refine the prompt based on initial results",
	}
	beginnerTips = []string{
		"Ask for explanations of complex concepts and terminology",
		"Request step-by-step guidance for complex tasks",
	}
	expertTips = []string{
		"Feel free to ask for advanced techniques and optimizations",
		"Request detailed technical analysis and comparisons",
	}
)

// Generation failure.
const (
	generateFailedUsage = "Error generating prompt"
	generateFailedTip   = "Please check your input parameters and try again"
)

// Analysis strengths and weaknesses, keyed by the substring that triggers them.
var (
	strengthRules = []keywordNote{
		{"role", "Clear role definition"},
		{"instruction", "Specific instructions provided"},
		{"example", "Includes examples for clarity"},
		{"format", "Specifies output format"},
		{"constraint", "Sets clear boundaries and constraints"},
	}
	weaknessRules = []keywordNote{
		{"role", "Missing clear role definition"},
		{"instruction", "Lacks specific instructions"},
		{"example", "No examples provided"},
		{"format", "Output format not specified"},
	}
)

const (
	fallbackStrength = "Provides a basic framework for interaction"
	fallbackWeakness = "Could benefit from more specific guidance"
	briefWeakness    = "Prompt may be too brief for complex tasks"
	briefThreshold   = 100
)

// Suggestions fire when the keyword is absent.
var (
	structureSuggestionRules = []keywordNote{
		{"##", "Add clear section headers using markdown formatting"},
		{"1.", "Use numbered lists for step-by-step instructions"},
		{"role", "Include a clear role definition at the beginning"},
	}
	effectivenessSuggestionRules = []keywordNote{
		{"example", "Include specific examples to illustrate expectations"},
		{"format", "Specify the desired output format"},
		{"constraint", "Add constraints to guide the response"},
	}
	improvementSuggestions = []string{
		"Break down complex instructions into smaller, clearer steps",
		"Add specific criteria for success or completion",
		"Include fallback instructions for edge cases",
	}
)

var recommendationsByType = map[models.AnalysisType][]string{
	models.AnalysisStructure: {
		"Organize the prompt into clear sections with headers",
		"Use bullet points or numbered lists for better readability",
		"Add a logical flow from introduction to specific instructions",
	},
	models.AnalysisEffectiveness: {
		"Add specific success criteria or expected outcomes",
		"Include examples of good and bad responses",
		"Specify the level of detail expected in responses",
	},
	models.AnalysisImprovement: {
		"Test the prompt with different types of questions",
		"Iterate based on actual response quality",
		"Consider adding context-specific instructions",
	},
}

// Improved-prompt insertions, keyed by the suggestion prefix that triggers them.
const (
	headerSuggestionPrefix  = "Add clear section headers"
	exampleSuggestionPrefix = "Include specific examples"
	formatSuggestionPrefix  = "Specify the desired output format"

	roleDefinitionHeader = "# Role Definition\n\n"
	followGuidelinesTail = "\n\n## Instructions\nPlease follow the above guidelines in your responses."
	examplesBlock        = "\n\n## Examples\n- Example 1: [Provide a specific example]\n- Example 2: [Provide another example]"
	outputFormatBlock    = "\n\n## Output Format\nPlease provide responses in a clear, structured format with appropriate headings and bullet points."
)

// Analysis failure.
const (
	analyzeFailedSuggestion     = "Error analyzing prompt"
	analyzeFailedWeakness       = "Analysis failed"
	analyzeFailedRecommendation = "Please try again with a different prompt"
)

// Optimizer change notes.
const (
	changeClarity     = "Improved clarity with more specific language"
	changeConciseness = "Reduced redundancy and improved conciseness"
	changeStructure   = "Enhanced structure with better organization"
	changeStyle       = "Applied style preferences"
	changeLength      = "Reduced length to approximately %d words"
	specificityNudge  = "\n\nPlease provide specific, detailed responses."
	explanationFormat = "Optimized the prompt by focusing on: %s. The changes improve the prompt's effectiveness while maintaining its core intent."

	optimizeFailedChange      = "Optimization failed"
	optimizeFailedExplanation = "Error occurred during optimization"
)

type keywordNote struct {
	keyword string
	note    string
}
