package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	appdeep "github.com/bryanwahyu/global-sentinel/internal/application/deepanalysis"
	appsigint "github.com/bryanwahyu/global-sentinel/internal/application/sigint"
	appsim "github.com/bryanwahyu/global-sentinel/internal/application/simulation"
	appval "github.com/bryanwahyu/global-sentinel/internal/application/validation"
	appver "github.com/bryanwahyu/global-sentinel/internal/application/verification"
	"github.com/bryanwahyu/global-sentinel/internal/domain/document/documenttest"
	"github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
	"github.com/bryanwahyu/global-sentinel/internal/infra/ai/mock"
	infrasigint "github.com/bryanwahyu/global-sentinel/internal/infra/sigint"
)

type failingCollector struct{}

func (failingCollector) Channel() sigint.Channel { return sigint.ChannelHTML }
func (failingCollector) Collect(context.Context) (*sigint.Report, error) {
	return nil, errors.New("all pages unreachable")
}

func newTestServer(t *testing.T, withStore bool) http.Handler {
	t.Helper()
	log := zaptest.NewLogger(t)
	r := rand.New(rand.NewPCG(42, 24))
	tpl := mock.Templates{Rand: r}

	simSvc := &appsim.Service{Templates: tpl, Rand: r, Log: log}
	valSvc := &appval.Service{Rand: r, Log: log}
	verSvc := &appver.Service{Verifier: mock.NewClient(log, r, mock.Delays{}), Rand: r, Log: log}
	if withStore {
		store := documenttest.NewStore()
		simSvc.Store, valSvc.Store, verSvc.Store = store, store, store
	}

	collectors := append(infrasigint.SimulatedAll(r), failingCollector{})
	return NewRouter(Services{
		Simulation:   simSvc,
		Validation:   valSvc,
		Verification: verSvc,
		DeepAnalysis: &appdeep.Service{Templates: tpl, Rand: r, Log: log},
		Sigint:       appsigint.NewService(log, collectors...),
	}, Options{Log: log, Mode: "demo"})
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestSimulateEndpoint(t *testing.T) {
	h := newTestServer(t, true)

	rec, out := do(t, h, http.MethodPost, "/api/simulate", `{"scenario":"Ransomware cyber attack on hospitals"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Live crisis simulation completed successfully", out["message"])
	assert.Equal(t, "Enhanced Fallback Intelligence", out["poweredBy"])

	sim := out["simulation"].(map[string]any)
	assert.Equal(t, false, sim["usedSonar"])
	assert.Len(t, sim["deepAnalysisLinks"], 4)
	id := sim["id"].(string)

	rec, out = do(t, h, http.MethodGet, "/api/simulate/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, out["simulation"].(map[string]any)["id"])

	rec, out = do(t, h, http.MethodGet, "/api/simulate?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["count"])
}

func TestSimulateErrors(t *testing.T) {
	h := newTestServer(t, false)

	rec, out := do(t, h, http.MethodPost, "/api/simulate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Scenario is required for simulation", out["error"])

	rec, _ = do(t, h, http.MethodPost, "/api/simulate", `{"scenario":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/simulate/0b6e7f4e-2f55-4d44-9d5a-2f3c4b1a9e10", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/simulate/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out = do(t, h, http.MethodGet, "/api/simulate", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), out["count"])
}

func TestValidateEndpoint(t *testing.T) {
	h := newTestServer(t, false)

	rec, out := do(t, h, http.MethodPost, "/api/validate", `{"threatId": 17, "vote": "not_credible"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Validation recorded successfully - contributing to global security intelligence", out["message"])
	result := out["result"].(map[string]any)
	v := result["validation"].(map[string]any)
	assert.Equal(t, "17", v["threatId"])
	assert.Equal(t, "No reasoning provided", v["reasoning"])
	assert.Equal(t, "Potential misinformation flagged", v["impact"].([]any)[0])

	rec, out = do(t, h, http.MethodPost, "/api/validate", `{"threatId":"t-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields: threatId, vote", out["error"])
}

func TestVerifyEndpoint(t *testing.T) {
	h := newTestServer(t, false)

	rec, out := do(t, h, http.MethodPost, "/api/verify", `{"claim":"This viral video is fake"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DEMO: Advanced AI verification completed successfully", out["message"])
	assert.Equal(t, "Global Sentinel Intelligence Engine (Demo Mode)", out["poweredBy"])
	v := out["verification"].(map[string]any)
	assert.Equal(t, "Questionable - Significant Counter Evidence", v["verdict"])
	assert.Equal(t, float64(79), v["confidence"])
	stats := out["userStats"].(map[string]any)
	assert.Equal(t, v["pointsEarned"], stats["pointsEarned"])

	rec, out = do(t, h, http.MethodPost, "/api/verify", `{"threatId":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Claim is required for verification", out["error"])
}

func TestDeepAnalysisEndpoint(t *testing.T) {
	h := newTestServer(t, false)
	rec, out := do(t, h, http.MethodPost, "/api/crisis/deep-analysis",
		`{"crisisStep":"Incident response team deployment","analysisType":"historical_precedent"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	a := out["analysis"].(map[string]any)
	assert.Equal(t, "Historical Precedent Analysis", a["title"])
	assert.Equal(t, "historical_precedent", a["type"])
	assert.Len(t, a["findings"], 5)
}

func TestSigintEndpoints(t *testing.T) {
	h := newTestServer(t, false)

	rec, out := do(t, h, http.MethodPost, "/api/sigint/test-reddit-scrape", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Reddit scraping test completed", out["message"])
	data := out["data"].(map[string]any)
	assert.Equal(t, []any{"r/worldnews", "r/geopolitics", "r/security"}, data["sources"])
	assert.GreaterOrEqual(t, data["threatsFound"].(float64), float64(1))

	rec, out = do(t, h, http.MethodPost, "/api/sigint/test-html-scrape", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "HTML scraping test failed", out["error"])
	assert.Contains(t, out["message"], "all pages unreachable")
}

func TestHealthAndNotFound(t *testing.T) {
	h := newTestServer(t, false)

	rec, out := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", out["status"])

	rec, _ = do(t, h, http.MethodGet, "/livez", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, out = do(t, h, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", out["error"])
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, false)
	req := httptest.NewRequest(http.MethodOptions, "/api/simulate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFlexString(t *testing.T) {
	var v struct {
		A flexString `json:"a"`
		B flexString `json:"b"`
		C flexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":12.5,"c":null}`), &v))
	assert.Equal(t, flexString("x"), v.A)
	assert.Equal(t, flexString("12.5"), v.B)
	assert.Equal(t, flexString(""), v.C)
}
