// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package booth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/votingbooth/models"
)

// Default service endpoints, matching the services' default ports
const (
	DefaultCandidatesURL = "http://localhost:3006"
	DefaultVotersURL     = "http://localhost:3002"
)

// APIError is a non-2xx answer from one of the services
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// Client talks to the candidate and voter services
type Client struct {
	candidatesURL string
	votersURL     string
	http          *http.Client
}

func NewClient(candidatesURL, votersURL string) *Client {
	return &Client{
		candidatesURL: strings.TrimRight(candidatesURL, "/"),
		votersURL:     strings.TrimRight(votersURL, "/"),
		http:          &http.Client{Timeout: 10 * time.Second},
	}
}

// Candidates fetches GET / from the candidate service
func (c *Client) Candidates(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := c.do(ctx, http.MethodGet, c.candidatesURL+"/", nil, &candidates)
	return candidates, err
}

// Tallies fetches GET /ballots from the candidate service
func (c *Client) Tallies(ctx context.Context) ([]models.CandidateTally, error) {
	var tallies []models.CandidateTally
	err := c.do(ctx, http.MethodGet, c.candidatesURL+"/ballots", nil, &tallies)
	return tallies, err
}

func (c *Client) Voters(ctx context.Context) ([]models.Voter, error) {
	var voters []models.Voter
	err := c.do(ctx, http.MethodGet, c.votersURL+"/", nil, &voters)
	return voters, err
}

func (c *Client) RegisterVoter(ctx context.Context, name string) (models.CreateVoterResponse, error) {
	var resp models.CreateVoterResponse
	err := c.do(ctx, http.MethodPost, c.votersURL+"/", models.CreateVoterRequest{Name: name}, &resp)
	return resp, err
}

func (c *Client) CastVote(ctx context.Context, name, candidate string) (models.CastVoteResponse, error) {
	var resp models.CastVoteResponse
	err := c.do(ctx, http.MethodPut, c.votersURL+"/", models.CastVoteRequest{Name: name, Candidate: candidate}, &resp)
	return resp, err
}

func (c *Client) RemoveVoter(ctx context.Context, name string) (models.RemoveVoterResponse, error) {
	var resp models.RemoveVoterResponse
	err := c.do(ctx, http.MethodDelete, c.votersURL+"/", models.RemoveVoterRequest{Name: name}, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		// Body may not be JSON; the status alone is enough then
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, url, err)
	}
	return nil
}
