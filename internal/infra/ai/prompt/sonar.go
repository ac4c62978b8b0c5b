package prompt

import (
	"fmt"
	"strings"
)

const (
	reasoningSystem = "You are a crisis reasoning specialist. Analyze the hypothesis and provide logical reasoning chains, causal relationships, and evidence-based implications."
	counterSystem   = "You are a critical analyst. Challenge the given hypothesis with counter-evidence and alternative explanations. Provide logical counter-arguments and contradictory evidence."
	researchSystem  = "You are an intelligence researcher conducting deep search analysis. Provide comprehensive research with credible sources and citations."
)

// ReasoningSystem picks the analyst persona; counter mode argues against the hypothesis.
func ReasoningSystem(counter bool) string {
	if counter {
		return counterSystem
	}
	return reasoningSystem
}

// ReasoningUser asks for the five-part reasoning breakdown.
func ReasoningUser(hypothesis string) string {
	return hypothesis + `

Please provide:
1. REASONING CHAIN: Step-by-step logical progression
2. EVIDENCE ASSESSMENT: Supporting or contradicting evidence
3. CONFIDENCE LEVEL: Percentage confidence in the analysis
4. KEY FACTORS: Primary drivers and variables
5. IMPLICATIONS: Potential consequences and outcomes`
}

func ResearchSystem() string { return researchSystem }

// ResearchUser builds the deep search prompt with optional domain focus and citations.
func ResearchUser(query string, domains []string, citations bool) string {
	var b strings.Builder
	b.WriteString(query)
	b.WriteString(`

Focus search on recent developments and credible sources. Include:
1. CURRENT SIGNALS: Recent events and indicators
2. HISTORICAL PRECEDENTS: Similar past occurrences
3. EXPERT ANALYSIS: Professional assessments and opinions
4. DATA TRENDS: Statistical patterns and projections
5. SOURCE CITATIONS: Credible references and links
`)
	if len(domains) > 0 {
		fmt.Fprintf(&b, "\nPrioritize sources from: %s", strings.Join(domains, ", "))
	}
	if citations {
		b.WriteString("\nInclude clickable source citations and references.")
	}
	return b.String()
}

// HybridQuery is the search query paired with a scenario's reasoning call.
func HybridQuery(scenario string) string {
	return "Crisis signals and evidence for: " + scenario
}

// DeepAnalysis frames a single crisis step for a focused drill-down.
func DeepAnalysis(crisisStep, analysisType string) string {
	label := strings.ReplaceAll(analysisType, "_", " ")
	return fmt.Sprintf("Perform a %s analysis of the following crisis step: %q. "+
		"Answer in short titled paragraphs separated by blank lines.", label, crisisStep)
}
