package quest

import "strings"

// --- Keyword classifiers ---
//
// Both classifiers are pure decision lists: an ordered rule set scanned
// top to bottom, first match wins. Order is load-bearing — a "crash"
// keyword must outrank a merely "slow" one — so the rule order here must
// not be rearranged.

// ClassifySeverity assigns a monster tier to a problem description.
// Matching is case-insensitive substring containment. Total: every input
// yields a tier, with Goblin as the fallback.
func ClassifySeverity(description string, urgency Urgency) Severity {
	lower := strings.ToLower(description)

	switch {
	case containsAny(lower, "crash", "down", "critical", "production", "outage") ||
		urgency == UrgencyCritical:
		return SeverityDragon
	case containsAny(lower, "multiple", "several", "various", "complex") ||
		countToken(lower, "and") > 2:
		return SeverityHydra
	case containsAny(lower, "slow", "performance", "timeout", "integration", "api", "database"):
		return SeverityTroll
	case containsAny(lower, "feature", "logic", "unexpected") ||
		urgency == UrgencyModerate:
		return SeverityOrc
	default:
		return SeverityGoblin
	}
}

// categoryKeywords holds the keyword set for each non-default category.
// Logic has no keywords: it is the fallback when nothing matches.
var categoryKeywords = map[Category][]string{
	CategoryUI: {
		"ui", "interface", "display", "render", "css",
		"layout", "button", "screen", "style", "visual",
	},
	CategoryPerformance: {
		"slow", "performance", "timeout", "times out", "memory",
		"cpu", "lag", "latency", "optimization",
	},
	CategoryIntegration: {
		"api", "integration", "connection", "request", "endpoint",
		"service", "third-party", "network", "webhook",
	},
	CategoryData: {
		"data", "database", "query", "corrupt", "migration",
		"sql", "storage", "cache",
	},
	CategoryArchitecture: {
		"architecture", "design", "structure", "refactor",
		"dependency", "coupling", "circular",
	},
}

// categoryCheckOrder is the scan order for ClassifyCategory. UI keywords
// win over Performance, Performance over Integration, and so on.
var categoryCheckOrder = []Category{
	CategoryUI,
	CategoryPerformance,
	CategoryIntegration,
	CategoryData,
	CategoryArchitecture,
}

// ClassifyCategory assigns a bug domain to a problem description. The tech
// stack is folded into the search text with no extra weight. Total: Logic
// is the fallback when no keyword matches.
func ClassifyCategory(description string, techStack []string) Category {
	text := description
	if len(techStack) > 0 {
		text += " " + strings.Join(techStack, " ")
	}
	lower := strings.ToLower(text)

	for _, cat := range categoryCheckOrder {
		if containsAny(lower, categoryKeywords[cat]...) {
			return cat
		}
	}
	return CategoryLogic
}

// containsAny returns true if text contains any of the given substrings.
func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// countToken counts whole-word occurrences of token in text, split on
// whitespace. Substring hits inside longer words ("standard") don't count.
func countToken(text, token string) int {
	count := 0
	for _, field := range strings.Fields(text) {
		if strings.Trim(field, ".,;:!?()[]{}\"'") == token {
			count++
		}
	}
	return count
}
