// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votingbooth/middleware"
	"github.com/danielhkuo/votingbooth/store"
)

type CandidateHandler struct {
	store store.CandidateStore
}

func NewCandidateHandler(s store.CandidateStore) *CandidateHandler {
	return &CandidateHandler{store: s}
}

// ListCandidates handles GET /
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.store.ListCandidates(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// ListBallots handles GET /ballots
// Vote counts are derived from voter ballots on every call
func (h *CandidateHandler) ListBallots(w http.ResponseWriter, r *http.Request) {
	tallies, err := h.store.ListCandidateTallies(r.Context())
	if err != nil {
		slog.Error("failed to list candidate tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get candidates with ballots")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tallies)
}
