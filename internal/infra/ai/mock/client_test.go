package mock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHybridFillsConfidenceAndTimestamp(t *testing.T) {
	c := NewClient(zaptest.NewLogger(t), stubRandom{}, Delays{})
	c.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	a, err := c.Hybrid(context.Background(), "cyber attack on banks")
	require.NoError(t, err)
	assert.Equal(t, 80, a.Confidence)
	assert.Equal(t, "2025-03-01T12:00:00.000Z", a.Timestamp)
	assert.Contains(t, a.Reasoning, "REASONING CHAIN")
}

func TestReasoningCounterMode(t *testing.T) {
	c := NewClient(zaptest.NewLogger(t), stubRandom{}, Delays{})
	out, err := c.Reasoning(context.Background(), "anything", true)
	require.NoError(t, err)
	assert.Contains(t, out, "COUNTER-ANALYSIS")
	assert.Contains(t, out, "de-escalation")
}

func TestDelayHonorsCancellation(t *testing.T) {
	c := NewClient(zaptest.NewLogger(t), stubRandom{}, Delays{Verification: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Verify(ctx, "claim")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDeepSearchReturnsResearch(t *testing.T) {
	c := NewClient(zaptest.NewLogger(t), stubRandom{}, Delays{})
	out, err := c.DeepSearch(context.Background(), "disease outbreak", nil, true)
	require.NoError(t, err)
	assert.Contains(t, out, "CURRENT SIGNALS")
}
