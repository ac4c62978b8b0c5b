package deepanalysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/scoring"
)

// Service drills into a single crisis step of a simulation.
type Service struct {
	Live      intel.Client
	Templates intel.Templates
	// Prompt frames the step for the live client; nil sends the step as-is.
	Prompt func(crisisStep, analysisType string) string
	Rand   scoring.Random
	Log    *zap.Logger
}

type AnalyzeCommand struct {
	CrisisStep   string `json:"crisisStep"`
	AnalysisType string `json:"analysisType"`
}

func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*intel.DeepAnalysis, error) {
	if strings.TrimSpace(cmd.CrisisStep) == "" {
		return nil, application.BadRequest("Crisis step is required for deep analysis")
	}
	at := intel.ParseAnalysisType(cmd.AnalysisType)
	log := s.logger().With(zap.String("type", string(at)))
	title, content := s.Templates.DeepAnalysisContent(at)

	out := &intel.DeepAnalysis{
		Title:           title,
		Type:            at,
		CrisisStep:      cmd.CrisisStep,
		Sources:         s.Templates.Sources(cmd.CrisisStep),
		Recommendations: s.Templates.Recommendations(),
	}

	if live, ok := s.live(ctx, cmd.CrisisStep, at); ok {
		out.Content = live
		out.Confidence = scoring.LiveConfidence(s.random())
		out.UsedSonar = true
	} else {
		out.Content = content
		out.Confidence = s.Templates.CategoryConfidence(cmd.CrisisStep)
	}
	out.Findings = Paragraphs(out.Content)

	log.Info("deep analysis completed", zap.Bool("used_sonar", out.UsedSonar))
	return out, nil
}

func (s *Service) live(ctx context.Context, step string, at intel.AnalysisType) (string, bool) {
	if s.Live == nil {
		return "", false
	}
	q := step
	if s.Prompt != nil {
		q = s.Prompt(step, string(at))
	}
	text, err := s.Live.Reasoning(ctx, q, false)
	if err != nil || strings.TrimSpace(text) == "" {
		s.logger().Warn("live deep analysis failed, using template", zap.Error(err))
		return "", false
	}
	return text, true
}

// Paragraphs splits text on blank lines, dropping empty chunks.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	out := []string{}
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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
