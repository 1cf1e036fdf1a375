package app

import (
	"context"
	"net/http"
	"slices"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hockey-roster/internal/config"
	"github.com/riskibarqy/hockey-roster/internal/domain/player"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/file"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/mirror"
	"github.com/riskibarqy/hockey-roster/internal/infrastructure/repository/sqlrepo"
	"github.com/riskibarqy/hockey-roster/internal/interfaces/httpapi"
	"github.com/riskibarqy/hockey-roster/internal/observability"
	basecache "github.com/riskibarqy/hockey-roster/internal/platform/cache"
	"github.com/riskibarqy/hockey-roster/internal/platform/logging"
	"github.com/riskibarqy/hockey-roster/internal/platform/resilience"
	"github.com/riskibarqy/hockey-roster/internal/usecase"
)

const metricsNamespace = "hockey_roster"

// App owns the HTTP server and the store connections behind it.
type App struct {
	Server *http.Server

	closers []func() error
}

// New builds the roster stores, service and HTTP server from cfg. Call Close
// after the server has shut down.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (_ *App, err error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	primary, err := a.openStore(ctx, cfg, cfg.RosterStore, logger)
	if err != nil {
		return nil, err
	}

	replicas := make([]mirror.Replica, 0, len(cfg.RosterMirrors))
	for _, kind := range cfg.RosterMirrors {
		repo, err := a.openStore(ctx, cfg, kind, logger)
		if err != nil {
			return nil, err
		}
		replicas = append(replicas, mirror.Replica{Name: kind, Repo: repo})
	}

	stores := mirror.NewRosterRepository(cfg.RosterStore, primary, replicas, mirror.Options{
		Concurrency: cfg.RosterMirrorConcurrency,
		Breaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.MirrorBreakerEnabled,
			FailureThreshold: cfg.MirrorBreakerFailures,
			OpenTimeout:      cfg.MirrorBreakerOpenFor,
		},
	}, logger)

	var repo player.Repository = stores
	if cfg.CacheEnabled {
		repo = cache.NewRosterRepository(stores, basecache.NewStore[player.Roster](cfg.CacheTTL))
	}

	var metrics *observability.HTTPMetrics
	if cfg.MetricsEnabled {
		metrics = observability.NewHTTPMetrics(metricsNamespace)
	}

	rosterService := usecase.NewRosterService(repo, logger)
	handler := httpapi.NewHandler(rosterService, stores, logger)
	router := httpapi.NewRouter(handler, logger, metrics, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("roster stores ready",
		"primary", cfg.RosterStore,
		"mirrors", cfg.RosterMirrors,
		"roster", cfg.RosterName,
		"cache", cfg.CacheEnabled,
	)
	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg config.Config, kind string, logger *logging.Logger) (player.Repository, error) {
	switch kind {
	case config.StoreMemory:
		return memory.NewRosterRepository(nil), nil
	case config.StoreFile:
		return file.NewStore(cfg.RosterDir, logger).Roster(cfg.RosterName), nil
	case config.StorePostgres:
		return a.openSQLStore(ctx, cfg, sqlrepo.OpenOptions{
			Dialect:                     sqlrepo.DialectPostgres,
			DSN:                         cfg.DBURL,
			DisablePreparedBinaryResult: cfg.DBDisablePreparedBinary,
		}, logger)
	case config.StoreSQLite:
		return a.openSQLStore(ctx, cfg, sqlrepo.OpenOptions{
			Dialect: sqlrepo.DialectSQLite,
			DSN:     cfg.SQLitePath,
		}, logger)
	default:
		return nil, crerr.Newf("unsupported roster store %q", kind)
	}
}

func (a *App) openSQLStore(ctx context.Context, cfg config.Config, opts sqlrepo.OpenOptions, logger *logging.Logger) (player.Repository, error) {
	if cfg.DBAutoMigrate {
		if err := sqlrepo.MigrateUp(opts); err != nil {
			return nil, crerr.Wrapf(err, "migrate %s store", opts.Dialect)
		}
	}

	db, err := sqlrepo.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	store := sqlrepo.NewStore(db, opts.Dialect, logger)
	a.closers = append(a.closers, store.Close)

	return store.Roster(cfg.RosterName), nil
}

// Close releases store connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for _, closeFn := range slices.Backward(a.closers) {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return crerr.Join(errs...)
}
