package deepanalysis

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/infra/ai/mock"
)

type reasoner struct {
	text   string
	err    error
	prompt string
}

func (r *reasoner) Reasoning(_ context.Context, hypothesis string, _ bool) (string, error) {
	r.prompt = hypothesis
	return r.text, r.err
}
func (r *reasoner) DeepSearch(context.Context, string, []string, bool) (string, error) {
	return "", nil
}
func (r *reasoner) Hybrid(context.Context, string) (*intel.Analysis, error) { return nil, nil }

func newService(t *testing.T) *Service {
	r := rand.New(rand.NewPCG(5, 6))
	return &Service{
		Templates: mock.Templates{Rand: r},
		Rand:      r,
		Log:       zaptest.NewLogger(t),
	}
}

func TestAnalyzeRequiresStep(t *testing.T) {
	_, err := newService(t).Analyze(context.Background(), AnalyzeCommand{})
	assert.ErrorIs(t, err, application.ErrBadRequest)
}

func TestAnalyzeTemplate(t *testing.T) {
	res, err := newService(t).Analyze(context.Background(), AnalyzeCommand{
		CrisisStep:   "Network security protocols activated",
		AnalysisType: "escalation_factor",
	})
	require.NoError(t, err)

	assert.Equal(t, intel.EscalationFactor, res.Type)
	assert.Equal(t, "Escalation Factor Analysis", res.Title)
	assert.False(t, res.UsedSonar)
	assert.Len(t, res.Findings, 5)
	assert.Contains(t, res.Findings[0], "ACCELERATION MECHANISMS:")
	assert.Len(t, res.Recommendations, 3)
	assert.Equal(t, mock.Sources("Network security protocols activated"), res.Sources)
	assert.GreaterOrEqual(t, res.Confidence, 65)
	assert.Less(t, res.Confidence, 95)
}

func TestAnalyzeUnknownTypeUsesRootCause(t *testing.T) {
	res, err := newService(t).Analyze(context.Background(), AnalyzeCommand{CrisisStep: "x", AnalysisType: "vibes"})
	require.NoError(t, err)
	assert.Equal(t, intel.RootCause, res.Type)
	assert.Equal(t, "Root Cause Deep Analysis", res.Title)
}

func TestAnalyzeLive(t *testing.T) {
	svc := newService(t)
	live := &reasoner{text: "DRIVERS:\nOne.\n\n\nSIGNALS:\nTwo.\n"}
	svc.Live = live
	svc.Prompt = func(step, at string) string { return at + ":" + step }

	res, err := svc.Analyze(context.Background(), AnalyzeCommand{CrisisStep: "port closure", AnalysisType: "cascading_effect"})
	require.NoError(t, err)
	assert.True(t, res.UsedSonar)
	assert.Equal(t, "cascading_effect:port closure", live.prompt)
	assert.Equal(t, []string{"DRIVERS:\nOne.", "SIGNALS:\nTwo."}, res.Findings)
	assert.GreaterOrEqual(t, res.Confidence, 75)
	assert.Less(t, res.Confidence, 95)
}

func TestAnalyzeLiveFailureFallsBack(t *testing.T) {
	svc := newService(t)
	svc.Live = &reasoner{err: errors.New("boom")}
	res, err := svc.Analyze(context.Background(), AnalyzeCommand{CrisisStep: "x", AnalysisType: "historical_precedent"})
	require.NoError(t, err)
	assert.False(t, res.UsedSonar)
	assert.Equal(t, "Historical Precedent Analysis", res.Title)
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Paragraphs("a\r\n\r\nb\n\n  \n"))
	assert.Empty(t, Paragraphs("   "))
}
