package intel

import "context"

// Client is the LLM-search provider used for scenario analysis.
// The live OpenRouter client and the demo template client both satisfy it.
type Client interface {
	Reasoning(ctx context.Context, hypothesis string, counter bool) (string, error)
	DeepSearch(ctx context.Context, query string, domains []string, citations bool) (string, error)
	Hybrid(ctx context.Context, scenario string) (*Analysis, error)
}

// Verifier fact-checks a single claim.
type Verifier interface {
	Verify(ctx context.Context, claim string) (*VerificationAnalysis, error)
}

// Templates is the keyword-matched fallback generator. It never fails.
type Templates interface {
	Analysis(scenario string) *Analysis
	Flowchart(scenario string) []string
	Mitigations(scenario string) []string
	Sources(scenario string) []string
	CategoryConfidence(scenario string) int
	DeepAnalysisContent(t AnalysisType) (title, content string)
	Recommendations() []string
}
