// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/tango-backend/internal/adapter/memory"
	"github.com/heartmarshall/tango-backend/internal/auth"
	"github.com/heartmarshall/tango-backend/internal/config"
	"github.com/heartmarshall/tango-backend/internal/domain"
	"github.com/heartmarshall/tango-backend/internal/service/dictionary"
	"github.com/heartmarshall/tango-backend/internal/service/study"
	"github.com/heartmarshall/tango-backend/internal/transport/middleware"
	"github.com/heartmarshall/tango-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// store, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Database.Driver),
	)

	a, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.serve(ctx)
}

type application struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *store
	limiter *middleware.RateLimiter
	handler http.Handler
}

func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	dictSvc := dictionary.NewService(logger, st.words, st.folders, st.tx, cfg.Dictionary)
	studySvc := study.NewService(logger, st.words, memory.NewSessionStore(), st.tx, domain.StudyConfig{
		Timezone:     cfg.Study.Location,
		DefaultFace:  domain.CardFace(cfg.Study.DefaultFace),
		MaxQueueSize: cfg.Study.MaxQueueSize,
	})
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	a := &application{cfg: cfg, log: logger, store: st}

	global := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	var limit middleware.Middleware
	if cfg.Server.RateLimit > 0 {
		a.limiter = middleware.NewRateLimiter(time.Minute)
		limit = a.limiter.Limit(cfg.Server.RateLimit)
	}

	a.handler = rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(st.ping, st.driver, Version),
		Dictionary: rest.NewDictionaryHandler(dictSvc, logger),
		Study:      rest.NewStudyHandler(studySvc, logger),
	}, global, middleware.Chain(middleware.Auth(tokens), limit))

	return a, nil
}

// Close releases the store and background workers.
func (a *application) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.store.close()
}

func (a *application) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}
