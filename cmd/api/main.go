package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/printa-productcard/internal/config"
	"github.com/georgemunganga/printa-productcard/internal/modules/card"
	"github.com/georgemunganga/printa-productcard/internal/modules/storefront"
	"github.com/georgemunganga/printa-productcard/internal/obs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
)

func main() {
	if err := run(); err != nil {
		obs.Logger.Error("service_failed", "error", err)
		os.Exit(1)
	}
}

// openRecorders builds the buy recorder chain. The returned close func
// releases the database handle, if one was opened.
func openRecorders(ctx context.Context, cfg config.Config) (card.MultiRecorder, func() error, error) {
	recorders := card.MultiRecorder{card.NewLogRecorder()}
	noop := func() error { return nil }
	if cfg.DatabaseURL == "" {
		return recorders, noop, nil
	}
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, noop, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, noop, fmt.Errorf("ping db: %w", err)
	}
	if err := card.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, noop, fmt.Errorf("ensure schema: %w", err)
	}
	obs.Logger.Info("db_connected")
	return append(recorders, card.NewPostgresRecorder(db)), db.Close, nil
}

func run() error {
	cfg := config.Load()
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("service_starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Buy recorders ───────────────────────────────────────
	recorders, closeDB, err := openRecorders(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			obs.Logger.Error("db_close_error", "error", err)
		}
	}()

	// ── Card ────────────────────────────────────────────────
	policy := card.Policy{
		AllowFreePrice:     cfg.AllowFreePrice,
		RejectInvalidPrice: cfg.RejectInvalidPrice,
	}
	renderer := card.NewRenderer(policy, cfg.PlaceholderImageURL, recorders)
	cardService := card.NewService(renderer)

	listing, err := storefront.Listing()
	if err != nil {
		return fmt.Errorf("load listing: %w", err)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(obs.RequestLogger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	card.NewHandler(cardService).RegisterRoutes(router)
	storefront.NewHandler(cardService, listing).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		obs.Logger.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		obs.Logger.Info("shutdown_signal")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
	return nil
}
