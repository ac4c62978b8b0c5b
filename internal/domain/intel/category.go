package intel

import "strings"

// Category is the threat family a scenario is matched to.
type Category string

const (
	Cyber        Category = "cyber"
	Climate      Category = "climate"
	Health       Category = "health"
	Geopolitical Category = "geopolitical"
)

// categoryKeywords is checked in order; the first hit wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{Cyber, []string{"cyber", "hack", "digital"}},
	{Climate, []string{"climate", "environment", "weather"}},
	{Health, []string{"health", "pandemic", "disease"}},
}

// Classify picks the category of a scenario by case-insensitive substring match.
// Anything unmatched is Geopolitical.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, ck := range categoryKeywords {
		if ContainsAny(lower, ck.keywords...) {
			return ck.category
		}
	}
	return Geopolitical
}

// ThreatKeywords returns every keyword that maps to a non-default category.
func ThreatKeywords() []string {
	var out []string
	for _, ck := range categoryKeywords {
		out = append(out, ck.keywords...)
	}
	return out
}

// MatchesThreat reports whether text hits any category keyword.
func MatchesThreat(text string) bool {
	return ContainsAny(strings.ToLower(text), ThreatKeywords()...)
}

// ContainsAny is a plain substring test; callers lower-case text first.
func ContainsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
