// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielhkuo/votingbooth/cliparse"
	"github.com/danielhkuo/votingbooth/router"
	"github.com/danielhkuo/votingbooth/service"
	"github.com/danielhkuo/votingbooth/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags("candidates", cliparse.CandidatesPort, os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	err = service.Run("candidates", cfg, func(s store.Store) http.Handler {
		// Out-of-band seeding happens before the first request is served
		if err := store.Seed(context.Background(), s, cfg.SeedCandidates); err != nil {
			slog.Error("seeding failed", "error", err)
		} else if len(cfg.SeedCandidates) > 0 {
			slog.Info("candidates seeded", "count", len(cfg.SeedCandidates))
		}
		return router.NewCandidateRouter(s)
	})
	if err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
}
