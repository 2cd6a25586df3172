// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
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
	cfg, err := cliparse.ParseFlags("voters", cliparse.VotersPort, os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	err = service.Run("voters", cfg, func(s store.Store) http.Handler {
		return router.NewVoterRouter(s)
	})
	if err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
}
