package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/flont-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flont-backend/internal/adapter/postgres/graph"
	"github.com/heartmarshall/flont-backend/internal/config"
	"github.com/heartmarshall/flont-backend/internal/service/lexicon"
	"github.com/heartmarshall/flont-backend/internal/transport/middleware"
	"github.com/heartmarshall/flont-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// graph database, assembles the REST API, and serves it until the context
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repo := graph.New(pool)
	svc := lexicon.NewService(logger, repo)

	lexHandler := rest.NewLexiconHandler(svc, logger)
	healthHandler := rest.NewHealthHandler(repo, BuildVersion())

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rl := middleware.NewRateLimiter(5 * time.Minute)
		defer rl.Stop()
		mws = append(mws, rl.Limit(cfg.Server.RateLimitPerMinute))
	}
	api := middleware.Chain(mws...)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.Handle("GET /api/search", api(http.HandlerFunc(lexHandler.Search)))
	mux.Handle("GET /api/literals/{label}", api(http.HandlerFunc(lexHandler.Lookup)))
	mux.Handle("POST /api/query", api(http.HandlerFunc(lexHandler.Query)))
	// CORS preflight for every API route.
	mux.Handle("OPTIONS /api/", api(http.NotFoundHandler()))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
