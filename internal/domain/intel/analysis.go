package intel

// Analysis is the reasoning + research pair produced for a scenario.
type Analysis struct {
	Reasoning  string `json:"reasoning"`
	Research   string `json:"research"`
	Confidence int    `json:"confidence,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// VerificationAnalysis is the fact-check result for a claim.
type VerificationAnalysis struct {
	Verdict             string   `json:"verdict"`
	Confidence          int      `json:"confidence"`
	Reasoning           string   `json:"reasoning"`
	SupportingEvidence  []string `json:"supportingEvidence"`
	ChallengingEvidence []string `json:"challengingEvidence"`
	KeyInsights         []string `json:"keyInsights"`
	EvidenceQuality     string   `json:"evidenceQuality"`
	SourceCredibility   string   `json:"sourceCredibility"`
	Sources             []string `json:"sources"`
}

// AnalysisType enum for deep analysis requests
type AnalysisType string

const (
	RootCause           AnalysisType = "root_cause"
	EscalationFactor    AnalysisType = "escalation_factor"
	CascadingEffect     AnalysisType = "cascading_effect"
	HistoricalPrecedent AnalysisType = "historical_precedent"
)

// AnalysisTypes lists the supported deep analysis types in display order.
var AnalysisTypes = []AnalysisType{RootCause, EscalationFactor, CascadingEffect, HistoricalPrecedent}

// ParseAnalysisType maps unknown or empty values to RootCause.
func ParseAnalysisType(s string) AnalysisType {
	for _, t := range AnalysisTypes {
		if string(t) == s {
			return t
		}
	}
	return RootCause
}

// DeepAnalysis is the long-form drill-down for a single crisis step.
type DeepAnalysis struct {
	Title           string       `json:"title"`
	Type            AnalysisType `json:"type"`
	CrisisStep      string       `json:"crisisStep"`
	Content         string       `json:"content"`
	Findings        []string     `json:"findings"`
	Sources         []string     `json:"sources"`
	Confidence      int          `json:"confidence"`
	Recommendations []string     `json:"recommendations"`
	UsedSonar       bool         `json:"usedSonar"`
}

// DeepAnalysisLink points the client at one drill-down of a simulation.
type DeepAnalysisLink struct {
	Title       string       `json:"title"`
	Type        AnalysisType `json:"type"`
	Description string       `json:"description"`
}
