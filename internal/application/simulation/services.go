package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/scoring"
	domain "github.com/bryanwahyu/global-sentinel/internal/domain/simulation"
)

// Service implements use-cases untuk Simulation.
// Live, Store and Archive are optional; nil means demo mode for that concern.
type Service struct {
	Live      intel.Client
	Templates intel.Templates
	Store     document.Store
	Archive   domain.ReportArchive
	Rand      scoring.Random
	Clock     application.Clock
	Log       *zap.Logger
}

var liveSources = []string{
	"Perplexity Sonar Real-time Analysis",
	"Live Intelligence Feeds",
	"Academic Crisis Simulation Models",
	"Government Response Frameworks",
}

var (
	timelines = []string{"24-48 hours", "3-7 days", "1-2 weeks", "2-4 weeks"}
	impacts   = []string{
		"Regional security implications",
		"Economic disruption potential",
		"Humanitarian crisis risk",
		"Infrastructure vulnerability",
		"Public safety concerns",
	}
)

var (
	defaultSupporting = []string{
		"Historical precedents show similar patterns",
		"Current geopolitical climate supports assessment",
		"Expert consensus aligns with simulation parameters",
		"Data trends indicate potential for escalation",
	}
	defaultCounter = []string{
		"Alternative explanations may be more plausible",
		"Insufficient data for complete verification",
		"Potential for overestimation of threat level",
		"Regional variations may affect outcomes",
	}
	analysisCounter = []string{
		"Counter-evidence suggests alternative scenarios",
		"Uncertainty factors may influence outcomes",
		"Limited real-time data availability",
		"Complexity may exceed current modeling capabilities",
	}
)

//
// ==== USE CASES ====
//

// Run synthesizes a simulation for the scenario. The live client is tried
// first; any failure there falls back to the template generator.
func (s *Service) Run(ctx context.Context, scenario string) (*domain.Simulation, error) {
	if strings.TrimSpace(scenario) == "" {
		return nil, application.BadRequest("Scenario is required for simulation")
	}
	log := s.logger()
	log.Info("running crisis simulation", zap.String("scenario", intel.Preview(scenario, 50)))

	analysis, live := s.analyze(ctx, scenario)
	r := s.random()

	sim := &domain.Simulation{
		ID:                domain.ID(uuid.NewString()),
		Scenario:          scenario,
		SonarAnalysis:     analysis,
		Flowchart:         s.Templates.Flowchart(scenario),
		Mitigations:       s.Templates.Mitigations(scenario),
		Confidence:        scoring.SimulationConfidence(r, live),
		Verdict:           Verdict(scenario, analysis),
		Timeline:          Timeline(r, scenario),
		Impact:            Impact(r, scenario),
		SupportingPoints:  SupportingPoints(analysis),
		CounterPoints:     CounterPoints(analysis),
		DeepAnalysisLinks: DeepAnalysisLinks(),
		UsedSonar:         live,
		Timestamp:         intel.FormatTimestamp(s.now()),
	}
	if live {
		sim.Sources = append([]string(nil), liveSources...)
	} else {
		sim.Sources = s.Templates.Sources(scenario)
	}

	application.Persist(ctx, s.Store, log, document.CollectionSimulations, string(sim.ID), sim)
	if s.Archive != nil {
		if err := s.Archive.Archive(ctx, sim); err != nil {
			log.Warn("report archive failed, continuing with response",
				zap.String("id", string(sim.ID)), zap.Error(err))
		}
	}

	log.Info("simulation completed",
		zap.String("id", string(sim.ID)),
		zap.String("verdict", sim.Verdict),
		zap.Bool("used_sonar", sim.UsedSonar))
	return sim, nil
}

// Get reads a stored simulation back.
func (s *Service) Get(ctx context.Context, id string) (*domain.Simulation, error) {
	if s.Store == nil {
		return nil, fmt.Errorf("simulation %s: %w", id, application.ErrNotFound)
	}
	rec, err := s.Store.Get(ctx, document.CollectionSimulations, id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, fmt.Errorf("simulation %s: %w", id, application.ErrNotFound)
		}
		return nil, fmt.Errorf("get simulation: %w", err)
	}
	var sim domain.Simulation
	if err := json.Unmarshal(rec.Payload, &sim); err != nil {
		return nil, fmt.Errorf("decode simulation %s: %w", id, err)
	}
	return &sim, nil
}

// Latest lists the most recent stored simulations. Without a store it is empty.
func (s *Service) Latest(ctx context.Context, limit int) ([]*domain.Simulation, error) {
	out := []*domain.Simulation{}
	if s.Store == nil {
		return out, nil
	}
	recs, err := s.Store.Latest(ctx, document.CollectionSimulations, limit)
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	for _, rec := range recs {
		var sim domain.Simulation
		if err := json.Unmarshal(rec.Payload, &sim); err != nil {
			s.logger().Warn("skipping undecodable simulation", zap.String("id", rec.ID), zap.Error(err))
			continue
		}
		out = append(out, &sim)
	}
	return out, nil
}

func (s *Service) analyze(ctx context.Context, scenario string) (*intel.Analysis, bool) {
	if s.Live != nil {
		a, err := s.Live.Hybrid(ctx, scenario)
		if err == nil && a != nil {
			return a, true
		}
		s.logger().Warn("live analysis failed, using enhanced fallback", zap.Error(err))
	}
	return s.Templates.Analysis(scenario), false
}

//
// ==== SYNTHESIS RULES ====
//

// Verdict trusts an explicit "high confidence" in the reasoning, then falls
// back to scenario keywords.
func Verdict(scenario string, a *intel.Analysis) string {
	if a != nil && strings.Contains(a.Reasoning, "high confidence") {
		return "Highly Likely - Immediate Response Required"
	}
	lower := strings.ToLower(scenario)
	switch {
	case intel.ContainsAny(lower, "nuclear", "war"):
		return "Highly Critical - Immediate Response Required"
	case intel.ContainsAny(lower, "cyber", "attack"):
		return "Likely Threat - Enhanced Monitoring Recommended"
	case intel.ContainsAny(lower, "climate", "health"):
		return "Possible Risk - Preventive Measures Advised"
	default:
		return "Uncertain Outcome - Requires Additional Intelligence"
	}
}

func Timeline(r scoring.Random, scenario string) string {
	lower := strings.ToLower(scenario)
	switch {
	case intel.ContainsAny(lower, "immediate", "urgent"):
		return "6-12 hours"
	case intel.ContainsAny(lower, "cyber", "attack"):
		return "24-48 hours"
	default:
		return scoring.Pick(r, timelines)
	}
}

func Impact(r scoring.Random, scenario string) string {
	lower := strings.ToLower(scenario)
	switch {
	case intel.ContainsAny(lower, "global", "international"):
		return "Global security and economic implications"
	case strings.Contains(lower, "cyber"):
		return "Critical infrastructure vulnerability"
	case strings.Contains(lower, "health"):
		return "Public health and safety concerns"
	default:
		return scoring.Pick(r, impacts)
	}
}

// SupportingPoints pulls up to four evidence sentences out of the reasoning.
func SupportingPoints(a *intel.Analysis) []string {
	if a == nil || a.Reasoning == "" {
		return append([]string(nil), defaultSupporting...)
	}
	points := []string{}
	for _, sentence := range strings.Split(a.Reasoning, ".") {
		if utf8.RuneCountInString(sentence) <= 20 {
			continue
		}
		if !intel.ContainsAny(sentence, "evidence", "support", "indicates", "suggests") {
			continue
		}
		points = append(points, strings.TrimSpace(sentence)+".")
		if len(points) == 4 {
			break
		}
	}
	return points
}

func CounterPoints(a *intel.Analysis) []string {
	if a == nil || a.Reasoning == "" {
		return append([]string(nil), defaultCounter...)
	}
	return append([]string(nil), analysisCounter...)
}

// DeepAnalysisLinks lists the drill-downs every simulation offers.
func DeepAnalysisLinks() []intel.DeepAnalysisLink {
	return []intel.DeepAnalysisLink{
		{Title: "Root Cause Analysis", Type: intel.RootCause, Description: "Deep dive into the fundamental causes and origins"},
		{Title: "Escalation Factors", Type: intel.EscalationFactor, Description: "Analysis of factors that could amplify the crisis"},
		{Title: "Cascading Effects", Type: intel.CascadingEffect, Description: "Examination of potential secondary and tertiary impacts"},
		{Title: "Historical Precedents", Type: intel.HistoricalPrecedent, Description: "Comparison with similar past events and outcomes"},
	}
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Service) random() scoring.Random {
	if s.Rand == nil {
		return scoring.SystemRandom{}
	}
	return s.Rand
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}
