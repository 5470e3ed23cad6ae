// Package brewnoteservice boots the journal HTTP service: configuration,
// logging, local state, migration, and the API router.
package brewnoteservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/brewnote/brewnote/internal/api"
	"github.com/brewnote/brewnote/internal/config"
	"github.com/brewnote/brewnote/internal/localstate"
	"github.com/brewnote/brewnote/internal/migrate"
	"github.com/brewnote/brewnote/internal/platform/logger"
	"github.com/brewnote/brewnote/internal/storage/sqlite"
	"github.com/brewnote/brewnote/internal/store"
)

// Run starts the journal HTTP server and blocks until shutdown or error.
func Run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New("brewnote", cfg.LogLevel)

	log.Info().
		Str("http_addr", cfg.GetHTTPAddr()).
		Str("state_home", cfg.StateHome).
		Msg("brewnote service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := newServerContext()
	defer stop()

	st, s, err := initDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = st.DB().Close() }()

	router := api.NewRouter(s, st, log)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies opens the local database, seeds it on first run, and loads
// the in-memory collections, migrating legacy beans along the way.
func initDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*sqlite.SqliteStorage, *store.Store, error) {
	dbPath, err := localstate.DBPath(cfg.StateHome)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve state directory")
		return nil, nil, err
	}
	st, err := sqlite.NewSqliteStorage(dbPath)
	if err != nil {
		log.Error().Err(err).Str("db_path", dbPath).Msg("Storage adapter unavailable")
		return nil, nil, err
	}
	s, err := store.Open(ctx, st, migrate.New(log, nil), log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load journal collections")
		return nil, nil, err
	}
	log.Info().
		Str("db_path", dbPath).
		Int("beans", len(s.Beans())).
		Int("recipes", len(s.Recipes())).
		Msg("journal loaded")
	return st, s, nil
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.GetHTTPAddr()).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
