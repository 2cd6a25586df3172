// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package booth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/danielhkuo/votingbooth/models"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrMissingVoter  = errors.New("voter name is missing")
	ErrInvalidChoice = errors.New("invalid ballot choice")
)

// PendingVote is a ballot opened for one voter. It is passed from
// OpenBallot to Submit instead of living in the controller.
type PendingVote struct {
	Voter      string
	Candidates []models.Candidate
}

// Choice returns the candidate name for a 1-based ballot position
func (p PendingVote) Choice(n int) (string, error) {
	if n < 1 || n > len(p.Candidates) {
		return "", fmt.Errorf("%w: %d", ErrInvalidChoice, n)
	}
	return p.Candidates[n-1].Name, nil
}

// Controller drives the booth views. It holds no per-vote state.
type Controller struct {
	client *Client
	out    io.Writer
}

func NewController(client *Client, out io.Writer) *Controller {
	return &Controller{client: client, out: out}
}

// Home renders candidates and both voter lists
func (c *Controller) Home(ctx context.Context) error {
	candidates, err := c.client.Candidates(ctx)
	if err != nil {
		slog.Error("error fetching candidates", "error", err)
		return err
	}
	voters, err := c.client.Voters(ctx)
	if err != nil {
		slog.Error("error fetching voters", "error", err)
		return err
	}

	RenderHome(c.out, candidates, voters)
	return nil
}

// Results renders every candidate with its vote count
func (c *Controller) Results(ctx context.Context) error {
	tallies, err := c.client.Tallies(ctx)
	if err != nil {
		slog.Error("error loading results", "error", err)
		return err
	}

	RenderResults(c.out, tallies)
	return nil
}

// Register adds a voter after trimming the name, then refreshes the voter lists
func (c *Controller) Register(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	resp, err := c.client.RegisterVoter(ctx, name)
	if err != nil {
		slog.Error("error adding voter", "name", name, "error", err)
		return err
	}
	fmt.Fprintln(c.out, messageOr(resp.Message, "Voter added successfully."))

	return c.refreshVoters(ctx)
}

// OpenBallot fetches the candidates and renders the ballot for voter
func (c *Controller) OpenBallot(ctx context.Context, voter string) (PendingVote, error) {
	if voter == "" {
		return PendingVote{}, ErrMissingVoter
	}

	candidates, err := c.client.Candidates(ctx)
	if err != nil {
		slog.Error("error fetching candidates", "error", err)
		return PendingVote{}, err
	}

	p := PendingVote{Voter: voter, Candidates: candidates}
	RenderBallot(c.out, p)
	return p, nil
}

// Submit records the vote for the pending voter, then refreshes the voter lists
func (c *Controller) Submit(ctx context.Context, p PendingVote, candidate string) error {
	if p.Voter == "" {
		return ErrMissingVoter
	}

	resp, err := c.client.CastVote(ctx, p.Voter, candidate)
	if err != nil {
		slog.Error("error recording vote", "voter", p.Voter, "candidate", candidate, "error", err)
		return err
	}
	fmt.Fprintln(c.out, messageOr(resp.Message, "Vote recorded successfully."))

	return c.refreshVoters(ctx)
}

// Remove deletes a voter, then refreshes the voter lists
func (c *Controller) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	resp, err := c.client.RemoveVoter(ctx, name)
	if err != nil {
		slog.Error("error removing voter", "name", name, "error", err)
		return err
	}
	fmt.Fprintln(c.out, messageOr(resp.Message, "Voter deleted successfully."))

	return c.refreshVoters(ctx)
}

func (c *Controller) refreshVoters(ctx context.Context) error {
	voters, err := c.client.Voters(ctx)
	if err != nil {
		slog.Error("error fetching voters", "error", err)
		return err
	}
	fmt.Fprintln(c.out)
	RenderVoters(c.out, voters)
	return nil
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
