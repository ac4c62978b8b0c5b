package simulation

import "github.com/bryanwahyu/global-sentinel/internal/domain/intel"

// ID tipe untuk Simulation
type ID string

// Simulation is the synthesized crisis analysis returned to the client.
type Simulation struct {
	ID                ID                       `json:"id"`
	Scenario          string                   `json:"scenario"`
	SonarAnalysis     *intel.Analysis          `json:"sonarAnalysis"`
	Flowchart         []string                 `json:"flowchart"`
	Mitigations       []string                 `json:"mitigations"`
	Confidence        int                      `json:"confidence"`
	Verdict           string                   `json:"verdict"`
	Timeline          string                   `json:"timeline"`
	Impact            string                   `json:"impact"`
	Sources           []string                 `json:"sources"`
	SupportingPoints  []string                 `json:"supportingPoints"`
	CounterPoints     []string                 `json:"counterPoints"`
	DeepAnalysisLinks []intel.DeepAnalysisLink `json:"deepAnalysisLinks"`
	UsedSonar         bool                     `json:"usedSonar"`
	Timestamp         string                   `json:"timestamp"`
}

// PoweredBy labels which generator produced the simulation.
func (s *Simulation) PoweredBy() string {
	if s.UsedSonar {
		return "Sonar AI + Live Intelligence"
	}
	return "Enhanced Fallback Intelligence"
}
