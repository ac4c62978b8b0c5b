package mock

import (
	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/scoring"
)

// Templates exposes the generator through intel.Templates.
type Templates struct {
	Rand scoring.Random
}

var _ intel.Templates = Templates{}

func (Templates) Analysis(scenario string) *intel.Analysis { return Analysis(scenario) }
func (Templates) Flowchart(scenario string) []string       { return Flowchart(scenario) }
func (Templates) Mitigations(scenario string) []string     { return Mitigations(scenario) }
func (Templates) Sources(scenario string) []string         { return Sources(scenario) }
func (Templates) Recommendations() []string                { return Recommendations() }

func (t Templates) CategoryConfidence(scenario string) int {
	r := t.Rand
	if r == nil {
		r = scoring.SystemRandom{}
	}
	return CategoryConfidence(r, scenario)
}

func (Templates) DeepAnalysisContent(at intel.AnalysisType) (string, string) {
	return DeepAnalysisContent(at)
}
