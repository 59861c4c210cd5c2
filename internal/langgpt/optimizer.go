package langgpt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/josephgoksu/langgpt-assistant/models"
)

type replacement struct {
	re   *regexp.Regexp
	with string
}

func wordRule(pattern, with string) replacement {
	return replacement{re: regexp.MustCompile(`(?i)\b` + pattern + `\b`), with: with}
}

func applyAll(text string, rules []replacement) string {
	for _, r := range rules {
		text = r.re.ReplaceAllLiteralString(text, r.with)
	}
	return text
}

var (
	clarityRules = []replacement{
		wordRule(`good`, "high-quality"),
		wordRule(`bad`, "low-quality"),
		wordRule(`nice`, "well-structured"),
		wordRule(`help`, "assist with"),
	}
	concisenessRules = []replacement{
		wordRule(`very\s+important`, "important"),
		wordRule(`absolutely\s+essential`, "essential"),
		wordRule(`completely\s+clear`, "clear"),
		wordRule(`exactly\s+the`, "the"),
		wordRule(`kind\s+of`, ""),
		wordRule(`sort\s+of`, ""),
		wordRule(`actually`, ""),
	}
	formalRules = []replacement{
		wordRule(`don't`, "do not"),
		wordRule(`can't`, "cannot"),
		wordRule(`won't`, "will not"),
	}
	casualRules = []replacement{
		wordRule(`do not`, "don't"),
		wordRule(`cannot`, "can't"),
		wordRule(`will not`, "won't"),
	}
	numberedMarker = regexp.MustCompile(`\d+\.\s+`)
)

// goalPass is one recognized optimization goal.
type goalPass struct {
	keyword string
	note    string
	apply   func(string) string
	metric  func(*models.ImprovementMetrics) *int
}

// Passes are tried in this order for every goal.
var goalPasses = []goalPass{
	{
		keyword: "clarity",
		note:    changeClarity,
		apply:   improveClarity,
		metric:  func(m *models.ImprovementMetrics) *int { return &m.ClarityImprovement },
	},
	{
		keyword: "conciseness",
		note:    changeConciseness,
		apply:   func(s string) string { return applyAll(s, concisenessRules) },
		metric:  func(m *models.ImprovementMetrics) *int { return &m.ConcisenessImprovement },
	},
	{
		keyword: "structure",
		note:    changeStructure,
		apply:   improveStructure,
		metric:  func(m *models.ImprovementMetrics) *int { return &m.StructureImprovement },
	},
}

const (
	metricStep = 2
	metricCap  = 10
)

// Optimizer rewrites prompts toward named goals with fixed rules.
type Optimizer struct{}

// Optimize applies goal passes, then style preferences, then length reduction.
// Callers are expected to have validated req.
func (Optimizer) Optimize(req models.OptimizationRequest) models.OptimizationResponse {
	text := req.OriginalPrompt
	changes := []string{}
	var metrics models.ImprovementMetrics

	fired := make(map[string]bool, len(goalPasses))
	for _, goal := range req.OptimizationGoals {
		g := strings.ToLower(goal)
		for _, p := range goalPasses {
			if fired[p.keyword] || !strings.Contains(g, p.keyword) {
				continue
			}
			fired[p.keyword] = true
			text = p.apply(text)
			changes = append(changes, p.note)
			m := p.metric(&metrics)
			*m = min(*m+metricStep, metricCap)
		}
	}

	if sp := req.StylePreferences; sp != nil && (sp.Formal || sp.Casual) {
		if sp.Formal {
			text = applyAll(text, formalRules)
		}
		if sp.Casual {
			text = applyAll(text, casualRules)
		}
		changes = append(changes, changeStyle)
	}

	if req.TargetLength > 0 && wordCount(text) > req.TargetLength {
		text = reduceLength(text)
		changes = append(changes, fmt.Sprintf(changeLength, req.TargetLength))
	}

	return models.OptimizationResponse{
		Success:            true,
		OptimizedPrompt:    text,
		ChangesMade:        changes,
		ImprovementMetrics: metrics,
		Explanation:        fmt.Sprintf(explanationFormat, strings.Join(req.OptimizationGoals, ", ")),
	}
}

func improveClarity(text string) string {
	out := applyAll(text, clarityRules)
	if !strings.Contains(out, "specific") && !strings.Contains(out, "detailed") {
		out += specificityNudge
	}
	return out
}

func improveStructure(text string) string {
	out := text
	if !strings.Contains(out, "##") && !strings.Contains(out, "**") {
		out = roleDefinitionHeader + out + followGuidelinesTail
	}
	if strings.Contains(out, "1.") && !strings.Contains(out, "-") {
		out = numberedMarker.ReplaceAllLiteralString(out, "- ")
	}
	return out
}

// wordCount splits on single spaces only, so newlines do not separate words.
func wordCount(text string) int {
	return len(strings.Split(text, " "))
}

// reduceLength keeps only the blank-line separated sections that mention a
// role, an instruction or a markdown header.
func reduceLength(text string) string {
	var kept []string
	for _, section := range strings.Split(text, "\n\n") {
		if containsAny(section, "role", "instruction", "##") {
			kept = append(kept, section)
		}
	}
	return strings.Join(kept, "\n\n")
}

func failedOptimization(original string) models.OptimizationResponse {
	return models.OptimizationResponse{
		Success:         false,
		OptimizedPrompt: original,
		ChangesMade:     []string{optimizeFailedChange},
		Explanation:     optimizeFailedExplanation,
	}
}
