// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/votingbooth/cliparse"
	"github.com/danielhkuo/votingbooth/db"
	"github.com/danielhkuo/votingbooth/models"
)

// ErrDuplicateName is returned when a voter with the same name already exists
var ErrDuplicateName = errors.New("a voter with this name already exists")

// ServiceError wraps any other failure of the backing database
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func serviceError(op string, err error) error {
	return &ServiceError{Op: op, Err: err}
}

// CandidateStore serves the candidate service
type CandidateStore interface {
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	ListCandidateTallies(ctx context.Context) ([]models.CandidateTally, error)
	SeedCandidates(ctx context.Context, names []string) error
}

// VoterStore serves the voter service
type VoterStore interface {
	CreateVoter(ctx context.Context, name string) (models.InsertResult, error)
	ListVoters(ctx context.Context) ([]models.Voter, error)
	CastVote(ctx context.Context, name, candidate string) (models.UpdateResult, error)
	RemoveVoter(ctx context.Context, name string) (models.DeleteResult, error)
}

type Store interface {
	CandidateStore
	VoterStore
	Close(ctx context.Context) error
}

// Open returns the store for the configured database type. SQL databases get
// their schema created, mongo gets its unique voter name index.
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	if cfg.DatabaseType == cliparse.DatabaseMongo {
		return OpenMongo(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return NewSQLStore(conn), nil
}

// Seed inserts names through s when there are any
func Seed(ctx context.Context, s CandidateStore, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if err := s.SeedCandidates(ctx, names); err != nil {
		return fmt.Errorf("failed to seed candidates: %w", err)
	}
	return nil
}
