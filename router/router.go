// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/votingbooth/handlers"
	"github.com/danielhkuo/votingbooth/middleware"
	"github.com/danielhkuo/votingbooth/store"
)

// NewCandidateRouter serves the candidate service
func NewCandidateRouter(s store.CandidateStore) *http.ServeMux {
	mux := http.NewServeMux()

	candidateHandler := handlers.NewCandidateHandler(s)

	mux.HandleFunc("GET /health", health)

	mux.HandleFunc("GET /{$}", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("GET /ballots", middleware.WithLogging(candidateHandler.ListBallots))

	return mux
}

// NewVoterRouter serves the voter service
func NewVoterRouter(s store.VoterStore) *http.ServeMux {
	mux := http.NewServeMux()

	voterHandler := handlers.NewVoterHandler(s)

	mux.HandleFunc("GET /health", health)

	mux.HandleFunc("POST /{$}", middleware.WithLogging(voterHandler.CreateVoter))
	mux.HandleFunc("GET /{$}", middleware.WithLogging(voterHandler.ListVoters))
	mux.HandleFunc("PUT /{$}", middleware.WithLogging(voterHandler.CastVote))
	mux.HandleFunc("DELETE /{$}", middleware.WithLogging(voterHandler.RemoveVoter))

	return mux
}

func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
