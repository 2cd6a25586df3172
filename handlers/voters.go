// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votingbooth/middleware"
	"github.com/danielhkuo/votingbooth/models"
	"github.com/danielhkuo/votingbooth/store"
)

// Messages returned to the booth on success
const (
	MsgVoterAdded   = "Voter added successfully."
	MsgVoteRecorded = "Vote recorded successfully."
	MsgVoterDeleted = "Voter deleted successfully."
)

type VoterHandler struct {
	store store.VoterStore
}

func NewVoterHandler(s store.VoterStore) *VoterHandler {
	return &VoterHandler{store: s}
}

// CreateVoter handles POST /
func (h *VoterHandler) CreateVoter(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	result, err := h.store.CreateVoter(r.Context(), req.Name)
	if errors.Is(err, store.ErrDuplicateName) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "A voter with this name already exists.")
		return
	}
	if err != nil {
		slog.Error("failed to insert voter", "error", err, "name", req.Name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add voter.")
		return
	}

	slog.Info("voter added", "name", req.Name, "id", result.InsertedID)

	middleware.JSONResponse(w, http.StatusOK, models.CreateVoterResponse{
		Message: MsgVoterAdded,
		Result:  result,
	})
}

// ListVoters handles GET /
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.store.ListVoters(r.Context())
	if err != nil {
		slog.Error("failed to list voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get voters")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}

// CastVote handles PUT /
// Neither the voter nor the candidate has to exist, and a second vote
// replaces the first.
func (h *VoterHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Candidate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate is required")
		return
	}

	result, err := h.store.CastVote(r.Context(), req.Name, req.Candidate)
	if err != nil {
		slog.Error("failed to update voter", "error", err, "name", req.Name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update voter")
		return
	}

	slog.Info("vote recorded",
		"name", req.Name,
		"candidate", req.Candidate,
		"matched", result.MatchedCount,
		"modified", result.ModifiedCount,
	)

	middleware.JSONResponse(w, http.StatusOK, models.CastVoteResponse{
		Message: MsgVoteRecorded,
		Result:  result,
	})
}

// RemoveVoter handles DELETE /
func (h *VoterHandler) RemoveVoter(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	result, err := h.store.RemoveVoter(r.Context(), req.Name)
	if err != nil {
		slog.Error("failed to delete voter", "error", err, "name", req.Name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete voter")
		return
	}

	slog.Info("voter deleted", "name", req.Name, "deleted", result.DeletedCount)

	middleware.JSONResponse(w, http.StatusOK, models.RemoveVoterResponse{
		Message: MsgVoterDeleted,
		Result:  result,
	})
}
