package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gorm.io/gorm"

	"vartheme/internal/config"
	"vartheme/internal/db"
	"vartheme/internal/db/mock"
	applog "vartheme/internal/log"
	"vartheme/internal/server"
	"vartheme/internal/stats"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	setLogFormatFunc    = applog.SetFormat
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	newStatsClientFunc  = stats.NewClient
	watchConfigFunc     = config.Watch
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}
	if err := setLogFormatFunc(cfg.Logging.Format); err != nil {
		applog.Error(ctx, "invalid log format", "format", cfg.Logging.Format, "error", err)
		return 1
	}

	database, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		return 1
	}

	var statsClient *stats.Client
	if cfg.Stats.Enabled {
		statsClient, err = newStatsClientFunc(stats.Config{
			GitHubRepo:    cfg.Stats.GitHubRepo,
			NPMPackage:    cfg.Stats.NPMPackage,
			GitHubBaseURL: cfg.Stats.GitHubBaseURL,
			NPMBaseURL:    cfg.Stats.NPMBaseURL,
			Timeout:       cfg.Stats.Timeout,
		})
		if err != nil {
			applog.Error(ctx, "failed to configure stats client", "error", err)
			return 1
		}
	}

	if path := strings.TrimSpace(os.Getenv(config.FileEnv)); path != "" {
		go func() {
			err := watchConfigFunc(ctx, path, func(next config.Config) {
				applyReloadedLogging(ctx, next.Logging)
			})
			if err != nil {
				applog.Warn(ctx, "config watcher stopped", "error", err)
			}
		}()
	}

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Visitor: server.VisitorConfig{
			CookieName: cfg.Visitor.CookieName,
			Lifetime:   cfg.Visitor.Lifetime,
		},
		Database: database,
		Stats:    statsClient,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	signals, stop := subscribeShutdownSig()
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
		return 0
	case sig := <-signals:
		applog.Info(ctx, "shutting down http server", "signal", sig.String())
	case <-ctx.Done():
		applog.Info(ctx, "shutting down http server", "reason", ctx.Err())
	}

	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		return 1
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		applog.Error(ctx, "server encountered an error", "error", err)
		return 1
	}
	return 0
}

// applyReloadedLogging switches level and format after a config reload.
// Invalid values keep the previous setting.
func applyReloadedLogging(ctx context.Context, cfg config.LoggingConfig) {
	if err := setLogLevelFunc(cfg.Level); err != nil {
		applog.Warn(ctx, "ignoring reloaded log level", "level", cfg.Level, "error", err)
	}
	if err := setLogFormatFunc(cfg.Format); err != nil {
		applog.Warn(ctx, "ignoring reloaded log format", "format", cfg.Format, "error", err)
	}
}

// openDatabase returns nil when no database is configured; preferences
// then live in the session only.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.UseMock {
		applog.Info(ctx, "using in-memory mock database")
		return newMockDatabaseFunc(ctx)
	}
	if strings.TrimSpace(cfg.URL) == "" {
		applog.Info(ctx, "no database configured, preferences are kept per session")
		return nil, nil
	}
	return configureDatabase(cfg)
}
