package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(GetClientFromContext(r.Context())))
})

func TestAPIKeyAuth(t *testing.T) {
	h := APIKeyAuth(map[string]string{"dashboard": "s3cret"})(ok)

	cases := []struct {
		name   string
		path   string
		header map[string]string
		status int
		body   string
	}{
		{"health is public", "/health", nil, http.StatusOK, ""},
		{"missing key", "/api/simulate", nil, http.StatusUnauthorized, "missing API key"},
		{"bearer", "/api/simulate", map[string]string{"Authorization": "Bearer s3cret"}, http.StatusOK, "dashboard"},
		{"x-api-key", "/api/simulate", map[string]string{"X-API-Key": "s3cret"}, http.StatusOK, "dashboard"},
		{"wrong key", "/api/simulate", map[string]string{"Authorization": "nope"}, http.StatusUnauthorized, "invalid API key"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
		})
	}
}

func TestAPIKeyAuthDisabledWithoutKeys(t *testing.T) {
	rec := httptest.NewRecorder()
	APIKeyAuth(nil)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/verify", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseAPIKeys(t *testing.T) {
	keys := ParseAPIKeys("web:abc, cli:def ,,raw")
	assert.Equal(t, "abc", keys["web"])
	assert.Equal(t, "def", keys["cli"])
	assert.Equal(t, "raw", keys["client3"])
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, 0)
	defer rl.Close()
	h := RateLimitMiddleware(rl)(ok)

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/simulate", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// a different IP has its own bucket
	req := httptest.NewRequest(http.MethodPost, "/api/simulate", nil)
	req.RemoteAddr = "203.0.113.8:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Close()
	rl.Allow("a")
	rl.evict(0)
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	assert.Empty(t, rl.buckets)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	healthy := HealthHandler("demo", map[string]HealthChecker{
		"store": PingChecker{Target: pingFunc(func(context.Context) error { return nil })},
	})
	rec := httptest.NewRecorder()
	healthy(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"demo"`)

	broken := HealthHandler("live", map[string]HealthChecker{
		"store": PingChecker{Target: pingFunc(func(context.Context) error { return errors.New("db down") })},
	})
	rec = httptest.NewRecorder()
	broken(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "db down")
}

func TestReadinessHandler(t *testing.T) {
	ready := ReadinessHandler(nil)
	rec := httptest.NewRecorder()
	ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	notReady := ReadinessHandler(map[string]HealthChecker{
		"storage":  PingChecker{Target: pingFunc(func(context.Context) error { return errors.New("bucket gone") })},
		"database": PingChecker{Target: pingFunc(func(context.Context) error { return nil })},
	})
	rec = httptest.NewRecorder()
	notReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"failing":["storage"]`)
	assert.NotContains(t, rec.Body.String(), "database")
}

func TestRequestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/simulate", nil)
	req.RemoteAddr = "198.51.100.1:1234"
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "198.51.100.1", fields["ip"])
	assert.Equal(t, int64(15), fields["bytes"])
}

func TestMetricsMiddlewareCounts(t *testing.T) {
	before := GetMetrics()["requests_failed"].(uint64)
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, before+1, GetMetrics()["requests_failed"].(uint64))

	sims := GetMetrics()["simulations_fallback"].(uint64)
	IncrementSimulations(false)
	IncrementSimulations(true)
	assert.Equal(t, sims+1, GetMetrics()["simulations_fallback"].(uint64))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidateText("scenario", "short"))
	assert.Error(t, ValidateText("scenario", strings.Repeat("x", MaxTextLength+1)))

	assert.NoError(t, ValidateID("0b6e7f4e-2f55-4d44-9d5a-2f3c4b1a9e10"))
	assert.Error(t, ValidateID("../etc/passwd"))

	assert.NoError(t, ValidateURL("https://feeds.bbci.co.uk/news/world/rss.xml"))
	assert.Error(t, ValidateURL("file:///etc/passwd"))
	assert.Error(t, ValidateURL("http://localhost:8080/feed"))
	assert.Error(t, ValidateURL("http://10.0.0.5/feed"))

	assert.Equal(t, "hello world", SanitizeString(" hello\x00 world\x07 "))
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 100, ValidateLimit(1000))
	assert.Equal(t, 5, ValidateLimit(5))
}
