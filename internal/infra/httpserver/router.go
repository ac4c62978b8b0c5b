package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	appdeep "github.com/bryanwahyu/global-sentinel/internal/application/deepanalysis"
	appsigint "github.com/bryanwahyu/global-sentinel/internal/application/sigint"
	appsim "github.com/bryanwahyu/global-sentinel/internal/application/simulation"
	appval "github.com/bryanwahyu/global-sentinel/internal/application/validation"
	appver "github.com/bryanwahyu/global-sentinel/internal/application/verification"
	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
	"github.com/bryanwahyu/global-sentinel/internal/middleware"
)

const maxBodyBytes = 1 << 20

// Services groups the use-cases the router exposes.
type Services struct {
	Simulation   *appsim.Service
	Validation   *appval.Service
	Verification *appver.Service
	DeepAnalysis *appdeep.Service
	Sigint       *appsigint.Service
}

type Options struct {
	Log         *zap.Logger
	Mode        string
	APIKeys     map[string]string
	CORSOrigins []string
	RateLimiter *middleware.RateLimiter
	Health      map[string]middleware.HealthChecker
}

type Router struct {
	svc Services
	log *zap.Logger
}

func NewRouter(svc Services, opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := &Router{svc: svc, log: log}
	mux := chi.NewRouter()

	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	mux.Use(middleware.RequestLogger(log))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         300,
	}))
	mux.Use(middleware.APIKeyAuth(opts.APIKeys))
	if opts.RateLimiter != nil {
		mux.Use(middleware.RateLimitMiddleware(opts.RateLimiter))
	}

	mux.Get("/health", middleware.HealthHandler(opts.Mode, opts.Health))
	mux.Get("/livez", middleware.LivenessHandler)
	mux.Get("/readyz", middleware.ReadinessHandler(opts.Health))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(rt chi.Router) {
		rt.Post("/simulate", r.wrap("Failed to run live simulation", r.handleSimulate))
		rt.Get("/simulate", r.wrap("Failed to list simulations", r.handleSimulationList))
		rt.Get("/simulate/{id}", r.wrap("Failed to load simulation", r.handleSimulationGet))
		rt.Post("/validate", r.wrap("Failed to record validation", r.handleValidate))
		rt.Post("/verify", r.wrap("Failed to run demo verification", r.handleVerify))
		rt.Post("/crisis/deep-analysis", r.wrap("Failed to run deep analysis", r.handleDeepAnalysis))

		for _, ch := range []sigint.Channel{sigint.ChannelRSS, sigint.ChannelAPI, sigint.ChannelHTML, sigint.ChannelReddit} {
			rt.Post("/sigint/test-"+string(ch)+"-scrape",
				r.wrap(ch.Label()+" scraping test failed", r.handleScrape(ch)))
		}
	})

	mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Route not found"})
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// wrap maps handler errors to status codes. op is the client-facing
// summary used for unexpected failures.
func (r *Router) wrap(op string, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var reqErr *application.RequestError
		switch {
		case errors.As(err, &reqErr):
			writeJSON(w, http.StatusBadRequest, errorBody{Error: reqErr.Msg})
		case errors.Is(err, application.ErrBadRequest):
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		case errors.Is(err, application.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody{Error: "not found", Message: err.Error()})
		case errors.Is(err, intel.ErrQuotaExceeded):
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "intelligence quota exceeded", Message: err.Error()})
		default:
			r.log.Error(op, zap.String("path", req.URL.Path), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: op, Message: err.Error()})
		}
	}
}

// decode reads a JSON body; malformed input is a 400.
func decode(w http.ResponseWriter, req *http.Request, dst any) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(req.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return application.BadRequest("Request body too large")
		}
		return application.BadRequest(fmt.Sprintf("Invalid JSON body: %v", err))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
