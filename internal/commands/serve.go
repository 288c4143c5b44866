package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/klabast/wb-services/calendar-api/internal/app"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP API until ctx is cancelled
func Serve(ctx context.Context, cfg app.Config) error {
	var store app.Store
	if cfg.Memory {
		store = app.NewMemoryStore()
	} else {
		store = app.NewFileStore(cfg.DataFile)
	}

	server := app.NewServer(app.NewService(store), cfg)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	if cfg.Memory {
		slog.Info("starting calendar API", "addr", cfg.Addr, "storage", "memory")
	} else {
		slog.Info("starting calendar API", "addr", cfg.Addr, "data_file", cfg.DataFile)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
