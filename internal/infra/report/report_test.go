package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/simulation"
)

type memObjects struct {
	objects map[string][]byte
	err     error
}

func (m *memObjects) Put(_ context.Context, key string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = data
	return "http://minio/bucket/" + key, nil
}

func sample() *simulation.Simulation {
	return &simulation.Simulation{
		ID:            "abc",
		Scenario:      "Grid outage\nacross region",
		SonarAnalysis: &intel.Analysis{Reasoning: "Evidence indicates risk.", Research: "Past outages."},
		Flowchart:     []string{"Detect", "Respond"},
		Mitigations:   []string{"Backup power"},
		Confidence:    70,
		Verdict:       "Likely Threat - Enhanced Monitoring Recommended",
		Timeline:      "24-48 hours",
		Impact:        "Infrastructure vulnerability",
		Sources:       []string{"Global Crisis Database"},
		CounterPoints: []string{"Limited data"},
		Timestamp:     "2025-01-01T00:00:00.000Z",
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sample())
	assert.Contains(t, md, "# Crisis Simulation abc")
	assert.Contains(t, md, "**Scenario:** Grid outage across region")
	assert.Contains(t, md, "1. Detect\n2. Respond\n")
	assert.Contains(t, md, "- **Powered by:** Enhanced Fallback Intelligence")
	assert.Contains(t, md, "## Reasoning\n\nEvidence indicates risk.")
	assert.NotContains(t, md, "## Supporting Points")
}

func TestHTML(t *testing.T) {
	out, err := HTML(Markdown(sample()))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>Crisis Simulation abc</h1>")
	assert.Contains(t, string(out), "<ol>")
}

func TestArchiverUploadsJSONAndHTML(t *testing.T) {
	objs := &memObjects{}
	a := NewArchiver(objs, "", zaptest.NewLogger(t))
	require.NoError(t, a.Archive(context.Background(), sample()))

	require.Contains(t, objs.objects, "simulations/abc.json")
	require.Contains(t, objs.objects, "simulations/abc.html")
	var back simulation.Simulation
	require.NoError(t, json.Unmarshal(objs.objects["simulations/abc.json"], &back))
	assert.Equal(t, simulation.ID("abc"), back.ID)
}

func TestArchiverPropagatesUploadError(t *testing.T) {
	a := NewArchiver(&memObjects{err: errors.New("denied")}, "reports", zaptest.NewLogger(t))
	assert.Error(t, a.Archive(context.Background(), sample()))
}
