package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	appdeep "github.com/bryanwahyu/global-sentinel/internal/application/deepanalysis"
	appval "github.com/bryanwahyu/global-sentinel/internal/application/validation"
	appver "github.com/bryanwahyu/global-sentinel/internal/application/verification"
	"github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
	"github.com/bryanwahyu/global-sentinel/internal/middleware"
)

// flexString accepts a JSON string or number, since clients send
// threat ids both ways.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// POST /api/simulate
// Body: {"scenario": "..."}
func (r *Router) handleSimulate(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Scenario string `json:"scenario"`
	}
	if err := decode(w, req, &body); err != nil {
		return err
	}
	scenario := middleware.SanitizeString(body.Scenario)
	if err := middleware.ValidateText("scenario", scenario); err != nil {
		return application.BadRequest(err.Error())
	}

	sim, err := r.svc.Simulation.Run(req.Context(), scenario)
	if err != nil {
		return err
	}
	middleware.IncrementSimulations(sim.UsedSonar)

	return writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Live crisis simulation completed successfully",
		"simulation": sim,
		"poweredBy":  sim.PoweredBy(),
	})
}

// GET /api/simulate?limit=
func (r *Router) handleSimulationList(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.svc.Simulation.Latest(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"simulations": list,
		"count":       len(list),
	})
}

// GET /api/simulate/{id}
func (r *Router) handleSimulationGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateID(id); err != nil {
		return application.BadRequest(err.Error())
	}
	sim, err := r.svc.Simulation.Get(req.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"simulation": sim,
		"poweredBy":  sim.PoweredBy(),
	})
}

// POST /api/validate
// Body: {"threatId": "...", "vote": "credible|not_credible", "userId": "...", "reasoning": "..."}
func (r *Router) handleValidate(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ThreatID  flexString `json:"threatId"`
		Vote      string     `json:"vote"`
		UserID    flexString `json:"userId"`
		Reasoning string     `json:"reasoning"`
	}
	if err := decode(w, req, &body); err != nil {
		return err
	}
	res, err := r.svc.Validation.Validate(req.Context(), appval.ValidateCommand{
		ThreatID:  string(body.ThreatID),
		Vote:      middleware.SanitizeString(body.Vote),
		UserID:    middleware.SanitizeString(string(body.UserID)),
		Reasoning: middleware.SanitizeString(body.Reasoning),
	})
	if err != nil {
		return err
	}
	middleware.IncrementValidations()

	return writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  res,
		"message": "Validation recorded successfully - contributing to global security intelligence",
	})
}

// POST /api/verify
// Body: {"threatId": "...", "claim": "...", "userId": "..."}
func (r *Router) handleVerify(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ThreatID flexString `json:"threatId"`
		Claim    string     `json:"claim"`
		UserID   flexString `json:"userId"`
	}
	if err := decode(w, req, &body); err != nil {
		return err
	}
	claim := middleware.SanitizeString(body.Claim)
	if err := middleware.ValidateText("claim", claim); err != nil {
		return application.BadRequest(err.Error())
	}

	res, err := r.svc.Verification.Verify(req.Context(), appver.VerifyCommand{
		ThreatID: string(body.ThreatID),
		Claim:    claim,
		UserID:   middleware.SanitizeString(string(body.UserID)),
	})
	if err != nil {
		return err
	}
	middleware.IncrementVerifications()

	return writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"verification": res.Verification,
		"userStats":    res.UserStats,
		"message":      "DEMO: Advanced AI verification completed successfully",
		"poweredBy":    appver.PoweredBy,
	})
}

// POST /api/crisis/deep-analysis
// Body: {"crisisStep": "...", "analysisType": "root_cause"}
func (r *Router) handleDeepAnalysis(w http.ResponseWriter, req *http.Request) error {
	var body appdeep.AnalyzeCommand
	if err := decode(w, req, &body); err != nil {
		return err
	}
	body.CrisisStep = middleware.SanitizeString(body.CrisisStep)
	if err := middleware.ValidateText("crisisStep", body.CrisisStep); err != nil {
		return application.BadRequest(err.Error())
	}

	res, err := r.svc.DeepAnalysis.Analyze(req.Context(), body)
	if err != nil {
		return err
	}
	middleware.IncrementDeepAnalyses()

	return writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "Deep analysis completed successfully",
		"analysis": res,
	})
}

// POST /api/sigint/test-{channel}-scrape
func (r *Router) handleScrape(ch sigint.Channel) handlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		rep, err := r.svc.Sigint.Test(req.Context(), ch)
		if err != nil {
			return err
		}
		middleware.IncrementScrapeTests()

		return writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": ch.Label() + " scraping test completed",
			"data":    rep,
		})
	}
}
