package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bryanwahyu/global-sentinel/internal/application"
	appdeep "github.com/bryanwahyu/global-sentinel/internal/application/deepanalysis"
	appsigint "github.com/bryanwahyu/global-sentinel/internal/application/sigint"
	appsim "github.com/bryanwahyu/global-sentinel/internal/application/simulation"
	appval "github.com/bryanwahyu/global-sentinel/internal/application/validation"
	appver "github.com/bryanwahyu/global-sentinel/internal/application/verification"
	"github.com/bryanwahyu/global-sentinel/internal/config"
	"github.com/bryanwahyu/global-sentinel/internal/domain/document"
	"github.com/bryanwahyu/global-sentinel/internal/domain/intel"
	"github.com/bryanwahyu/global-sentinel/internal/domain/scoring"
	domsigint "github.com/bryanwahyu/global-sentinel/internal/domain/sigint"
	domsim "github.com/bryanwahyu/global-sentinel/internal/domain/simulation"
	"github.com/bryanwahyu/global-sentinel/internal/infra/ai/mock"
	"github.com/bryanwahyu/global-sentinel/internal/infra/ai/openai"
	"github.com/bryanwahyu/global-sentinel/internal/infra/ai/prompt"
	mysqlp "github.com/bryanwahyu/global-sentinel/internal/infra/db/mysql"
	pgp "github.com/bryanwahyu/global-sentinel/internal/infra/db/postgres"
	sqlitep "github.com/bryanwahyu/global-sentinel/internal/infra/db/sqlite"
	"github.com/bryanwahyu/global-sentinel/internal/infra/httpserver"
	"github.com/bryanwahyu/global-sentinel/internal/infra/report"
	"github.com/bryanwahyu/global-sentinel/internal/infra/sigint"
	minioStore "github.com/bryanwahyu/global-sentinel/internal/infra/storage"
	"github.com/bryanwahyu/global-sentinel/internal/middleware"
)

// app holds everything the commands need, plus what must be closed on exit.
type app struct {
	svc     httpserver.Services
	health  map[string]middleware.HealthChecker
	limiter *middleware.RateLimiter
	closers []func() error
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func buildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{health: map[string]middleware.HealthChecker{}}
	rnd := scoring.SystemRandom{}
	clock := application.SystemClock{}

	// document store (optional, demo mode kalau env belum lengkap)
	store, err := openStore(ctx, cfg, log, a)
	if err != nil {
		a.Close()
		return nil, err
	}
	if store != nil {
		a.health["database"] = middleware.PingChecker{Target: store}
	}

	// minio archive (optional)
	var archive domsim.ReportArchive
	if cfg.ArchiveEnabled() {
		objects, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("minio init error: %w", err)
		}
		archive = report.NewArchiver(objects, cfg.Minio.Prefix, log)
		a.health["storage"] = middleware.PingChecker{Target: objects}
	}

	// live client hanya kalau API key ada
	var live intel.Client
	if cfg.LiveIntelEnabled() {
		live = openai.NewClient(cfg.Intel.APIKey, openai.Options{
			BaseURL:        cfg.Intel.BaseURL,
			ReasoningModel: cfg.Intel.ReasoningModel,
			SearchModel:    cfg.Intel.SearchModel,
			Timeout:        cfg.Intel.Timeout,
		}, log)
	} else {
		log.Warn("OPENROUTER_API_KEY not set, simulations use intelligence templates")
	}

	delays := mock.Delays{}
	if cfg.Intel.DemoLatency {
		delays = mock.DefaultDelays
	}
	templates := mock.Templates{Rand: rnd}

	a.svc = httpserver.Services{
		Simulation: &appsim.Service{
			Live:      live,
			Templates: templates,
			Store:     store,
			Archive:   archive,
			Rand:      rnd,
			Clock:     clock,
			Log:       log.Named("simulation"),
		},
		Validation: &appval.Service{
			Store: store,
			Rand:  rnd,
			Clock: clock,
			Log:   log.Named("validation"),
		},
		Verification: &appver.Service{
			Verifier: mock.NewClient(log.Named("verifier"), rnd, delays),
			Store:    store,
			Rand:     rnd,
			Clock:    clock,
			Log:      log.Named("verification"),
		},
		DeepAnalysis: &appdeep.Service{
			Live:      live,
			Templates: templates,
			Prompt:    prompt.DeepAnalysis,
			Rand:      rnd,
			Log:       log.Named("deepanalysis"),
		},
		Sigint: appsigint.NewService(log.Named("sigint"), collectors(cfg, rnd, log)...),
	}

	if c := cfg.Security.RateLimit; c.Capacity > 0 && c.RefillPerSecond > 0 {
		a.limiter = middleware.NewRateLimiter(c.Capacity, c.RefillPerSecond)
		a.closers = append(a.closers, func() error { a.limiter.Close(); return nil })
	}
	return a, nil
}

// openStore returns a nil Store when persistence is not configured.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger, a *app) (document.Store, error) {
	if missing := cfg.MissingStoreVars(); len(missing) > 0 {
		log.Warn("document store disabled, running in demo mode", zap.Strings("missing", missing))
		return nil, nil
	}

	db := cfg.Database
	var (
		conn *sql.DB
		err  error
	)
	switch db.Driver {
	case "mysql":
		conn, err = mysqlp.Connect(ctx, mysqlp.DSN(db.User, db.Password, db.Host, db.Port, db.Name))
	case "postgres":
		conn, err = pgp.Connect(ctx, pgp.DSN(db.User, db.Password, db.Host, db.Port, db.Name, db.SSLMode))
	case "sqlite":
		conn, err = sqlitep.Open(ctx, db.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", db.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connect error: %w", db.Driver, err)
	}
	a.closers = append(a.closers, conn.Close)

	schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var store document.Store
	switch db.Driver {
	case "mysql":
		repo := mysqlp.NewDocumentRepository(conn)
		err = repo.EnsureSchema(schemaCtx)
		store = repo
	case "postgres":
		repo := pgp.NewDocumentRepository(conn)
		err = repo.EnsureSchema(schemaCtx)
		store = repo
	default:
		store = sqlitep.NewDocumentRepository(conn)
	}
	if err != nil {
		return nil, fmt.Errorf("%s schema error: %w", db.Driver, err)
	}
	log.Info("document store connected", zap.String("driver", db.Driver))
	return store, nil
}

// collectors returns the simulated channels, overridden by live ones when configured.
func collectors(cfg *config.Config, rnd scoring.Random, log *zap.Logger) []domsigint.Collector {
	out := sigint.SimulatedAll(rnd)
	if feeds := sources(cfg.Sigint.RSS.Feeds, log); len(feeds) > 0 {
		out = append(out, sigint.NewRSSCollector(feeds, cfg.Sigint.Timeout, log.Named("rss")))
	}
	if pages := sources(cfg.Sigint.HTML.Pages, log); len(pages) > 0 {
		out = append(out, sigint.NewHTMLCollector(pages, cfg.Sigint.Timeout, log.Named("html")))
	}
	return out
}

func sources(in []config.Source, log *zap.Logger) []sigint.Source {
	var out []sigint.Source
	for _, s := range in {
		if err := middleware.ValidateURL(s.URL); err != nil {
			log.Warn("skipping sigint source", zap.String("url", s.URL), zap.Error(err))
			continue
		}
		out = append(out, sigint.Source{URL: s.URL, Name: s.Name})
	}
	return out
}
