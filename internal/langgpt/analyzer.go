package langgpt

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/langgpt-assistant/models"
)

// scoreBase is where every score starts; each satisfied condition adds one.
const (
	scoreBase = 5
	scoreCap  = 10
)

// A condition is satisfied when the prompt contains any of its substrings.
type condition []string

var (
	structureConditions = []condition{
		{"##", "**"},
		{"1.", "-"},
		{"first", "then", "finally"},
		{"role", "assistant", "expert"},
		{"instruction", "should", "must"},
	}
	clarityConditions = []condition{
		{"specific", "detailed", "clear"},
		{"example", "instance"},
		{"format", "structure"},
		{"constraint", "limit", "avoid"},
		{"output", "response", "result"},
	}
	completenessConditions = []condition{
		{"role", "assistant"},
		{"instruction", "should"},
		{"context", "background"},
		{"format", "output"},
		{"example", "instance"},
	}
)

// Analyzer scores and critiques prompts with fixed substring heuristics.
type Analyzer struct {
	// FoldCase lowercases the prompt once before every check. Off by default,
	// in which case "Role" does not satisfy a "role" check.
	FoldCase bool
}

// Analyze scores req.Prompt and builds the critique lists. The improved prompt
// is only produced for improvement analyses.
func (a Analyzer) Analyze(req models.AnalysisRequest) models.AnalysisResponse {
	text := req.Prompt
	if a.FoldCase {
		text = strings.ToLower(text)
	}

	analysis := models.Analysis{
		StructureScore:    score(text, structureConditions),
		ClarityScore:      score(text, clarityConditions),
		CompletenessScore: score(text, completenessConditions),
		Suggestions:       suggestions(text, req),
		Strengths:         strengths(text),
		Weaknesses:        weaknesses(text, req.Prompt),
		Recommendations:   recommendations(req.AnalysisType),
	}

	resp := models.AnalysisResponse{Success: true, Analysis: analysis}
	if req.AnalysisType == models.AnalysisImprovement {
		resp.ImprovedPrompt = improvePrompt(req.Prompt, gapSuggestions(text))
	}
	return resp
}

func score(text string, conds []condition) int {
	s := scoreBase
	for _, c := range conds {
		if containsAny(text, c...) {
			s++
		}
	}
	return min(s, scoreCap)
}

func containsAny(text string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

func strengths(text string) []string {
	var out []string
	for _, r := range strengthRules {
		if strings.Contains(text, r.keyword) {
			out = append(out, r.note)
		}
	}
	if len(out) == 0 {
		return []string{fallbackStrength}
	}
	return out
}

// weaknesses checks keywords against text and length against the raw prompt.
func weaknesses(text, raw string) []string {
	var out []string
	for _, r := range weaknessRules {
		if !strings.Contains(text, r.keyword) {
			out = append(out, r.note)
		}
	}
	if len([]rune(raw)) < briefThreshold {
		out = append(out, briefWeakness)
	}
	if len(out) == 0 {
		return []string{fallbackWeakness}
	}
	return out
}

func missing(text string, rules []keywordNote) []string {
	var out []string
	for _, r := range rules {
		if !strings.Contains(text, r.keyword) {
			out = append(out, r.note)
		}
	}
	return out
}

func suggestions(text string, req models.AnalysisRequest) []string {
	out := []string{}
	switch req.AnalysisType {
	case models.AnalysisStructure:
		out = append(out, missing(text, structureSuggestionRules)...)
	case models.AnalysisEffectiveness:
		out = append(out, missing(text, effectivenessSuggestionRules)...)
	case models.AnalysisImprovement:
		out = append(out, improvementSuggestions...)
	}
	if req.TargetAudience != "" {
		out = append(out, fmt.Sprintf("Adapt the language and complexity for %s audience", req.TargetAudience))
	}
	if req.UseCase != "" {
		out = append(out, fmt.Sprintf("Add context specific to the %s use case", req.UseCase))
	}
	return out
}

func recommendations(t models.AnalysisType) []string {
	return append([]string{}, recommendationsByType[t]...)
}

// gapSuggestions runs the structure and effectiveness checks regardless of
// the requested analysis type. They drive the improved prompt.
func gapSuggestions(text string) []string {
	return append(missing(text, structureSuggestionRules), missing(text, effectivenessSuggestionRules)...)
}

func hasPrefixed(list []string, prefix string) bool {
	for _, s := range list {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func improvePrompt(prompt string, gaps []string) string {
	improved := prompt
	if hasPrefixed(gaps, headerSuggestionPrefix) {
		improved = roleDefinitionHeader + improved + followGuidelinesTail
	}
	if hasPrefixed(gaps, exampleSuggestionPrefix) {
		improved += examplesBlock
	}
	if hasPrefixed(gaps, formatSuggestionPrefix) {
		improved += outputFormatBlock
	}
	return improved
}

func failedAnalysis() models.AnalysisResponse {
	return models.AnalysisResponse{
		Success: false,
		Analysis: models.Analysis{
			Suggestions:     []string{analyzeFailedSuggestion},
			Strengths:       []string{},
			Weaknesses:      []string{analyzeFailedWeakness},
			Recommendations: []string{analyzeFailedRecommendation},
		},
	}
}
