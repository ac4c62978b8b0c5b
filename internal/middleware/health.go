package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"
)

// HealthChecker defines interface for health checking
type HealthChecker interface {
	Check(ctx context.Context) error
}

// Pinger is anything with a context-aware Ping, e.g. the document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker adapts a Pinger with a short timeout.
type PingChecker struct {
	Target  Pinger
	Timeout time.Duration
}

func (p PingChecker) Check(ctx context.Context) error {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Target.Ping(ctx)
}

// HealthStatus represents the health status
type HealthStatus struct {
	Status    string                 `json:"status"`
	Service   string                 `json:"service"`
	Mode      string                 `json:"mode"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// CheckStatus represents individual check status
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler runs every checker; any failure turns the response into a 503.
// mode is reported as-is ("demo" or "live").
func HealthHandler(mode string, checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, healthy := runChecks(r.Context(), checkers)
		health := HealthStatus{
			Status:    "healthy",
			Service:   "global-sentinel",
			Mode:      mode,
			Timestamp: time.Now().UTC(),
			Checks:    checks,
		}
		statusCode := http.StatusOK
		if !healthy {
			health.Status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		}
		writeHealth(w, statusCode, health)
	}
}

// ReadinessHandler reports ready only when every dependency answers.
func ReadinessHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, ready := runChecks(r.Context(), checkers)
		var failing []string
		for name, c := range checks {
			if c.Status != "healthy" {
				failing = append(failing, name)
			}
		}
		sort.Strings(failing)

		body := map[string]any{"status": "ready", "timestamp": time.Now().UTC()}
		statusCode := http.StatusOK
		if !ready {
			body["status"] = "not ready"
			body["failing"] = failing
			statusCode = http.StatusServiceUnavailable
		}
		writeHealth(w, statusCode, body)
	}
}

// LivenessHandler only proves the process serves requests.
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func runChecks(ctx context.Context, checkers map[string]HealthChecker) (map[string]CheckStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus, len(checkers))
	ok := true
	for name, checker := range checkers {
		if err := checker.Check(ctx); err != nil {
			ok = false
			checks[name] = CheckStatus{Status: "unhealthy", Message: err.Error()}
			continue
		}
		checks[name] = CheckStatus{Status: "healthy"}
	}
	return checks, ok
}

func writeHealth(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
