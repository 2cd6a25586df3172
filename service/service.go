// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/votingbooth/cliparse"
	"github.com/danielhkuo/votingbooth/middleware"
	"github.com/danielhkuo/votingbooth/store"
)

// ShutdownTimeout bounds how long in-flight requests get after a signal
const ShutdownTimeout = 5 * time.Second

// Run opens the store, builds the routes and serves until SIGINT or SIGTERM.
// The store stays open for the life of the process.
func Run(name string, cfg cliparse.Config, routes func(store.Store) http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())
	slog.Info("database ready", "service", name, "type", cfg.DatabaseType)

	server := &http.Server{
		Handler: middleware.CORS(routes(st)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	return serve(ctx, name, server)
}

func serve(ctx context.Context, name string, server *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		slog.Info("Listening", "service", name, "addr", server.Addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "service", name)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Server closed", "service", name)
	return nil
}
