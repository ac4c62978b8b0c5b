package mock

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/scoring"
)

// Delays simulate API latency so the demo feels like the live client.
type Delays struct {
	Reasoning    time.Duration
	Search       time.Duration
	Verification time.Duration
}

// DefaultDelays mirror typical live response times.
var DefaultDelays = Delays{
	Reasoning:    1500 * time.Millisecond,
	Search:       1200 * time.Millisecond,
	Verification: 1200 * time.Millisecond,
}

// Client is the demo intelligence client backed by templates.
type Client struct {
	log    *zap.Logger
	rand   scoring.Random
	delays Delays
	now    func() time.Time
}

func NewClient(log *zap.Logger, r scoring.Random, delays Delays) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if r == nil {
		r = scoring.SystemRandom{}
	}
	log.Info("demo intelligence client initialized")
	return &Client{log: log, rand: r, delays: delays, now: time.Now}
}

func (c *Client) Reasoning(ctx context.Context, hypothesis string, counter bool) (string, error) {
	c.log.Debug("demo reasoning analysis starting", zap.Bool("counter", counter))
	if err := wait(ctx, c.delays.Reasoning); err != nil {
		return "", err
	}
	if counter {
		return "COUNTER-ANALYSIS:\n- " + strings.Join(CounterEvidence(), "\n- "), nil
	}
	return Analysis(hypothesis).Reasoning, nil
}

func (c *Client) DeepSearch(ctx context.Context, query string, _ []string, _ bool) (string, error) {
	c.log.Debug("demo deep search starting")
	if err := wait(ctx, c.delays.Search); err != nil {
		return "", err
	}
	return Analysis(query).Research, nil
}

// Hybrid returns reasoning and research together after a single delay.
func (c *Client) Hybrid(ctx context.Context, scenario string) (*intel.Analysis, error) {
	c.log.Debug("demo hybrid analysis starting", zap.String("scenario", intel.Preview(scenario, 50)))
	if err := wait(ctx, c.delays.Reasoning); err != nil {
		return nil, err
	}
	a := Analysis(scenario)
	a.Confidence = CategoryConfidence(c.rand, scenario)
	a.Timestamp = intel.FormatTimestamp(c.now())
	return a, nil
}

func (c *Client) Verify(ctx context.Context, claim string) (*intel.VerificationAnalysis, error) {
	c.log.Debug("demo verification starting", zap.String("claim", intel.Preview(claim, 50)))
	if err := wait(ctx, c.delays.Verification); err != nil {
		return nil, err
	}
	return VerificationAnalysis(claim), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
