package prompts

import "strings"

type matchRule struct {
	keywords []string
	category Category
}

// Evaluated in order; the first rule with a matching keyword wins.
var matchRules = []matchRule{
	{keywords: []string{"programming", "coding", "software"}, category: ProgrammingAssistant},
	{keywords: []string{"writing", "content", "copy"}, category: WritingAssistant},
	{keywords: []string{"data", "analytics", "statistics"}, category: DataAnalyst},
	{keywords: []string{"research", "academic", "study"}, category: ResearchAssistant},
}

// FindCategory picks the predefined role whose keywords appear in domain,
// compared case-insensitively as substrings.
func FindCategory(domain string) (Category, bool) {
	d := strings.ToLower(domain)
	for _, rule := range matchRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}
