// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/votingbooth/models"
)

// SQLStore keeps candidates and voters in postgres or sqlite
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *SQLStore) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM candidate ORDER BY name
	`)
	if err != nil {
		return nil, serviceError("list candidates", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.Name); err != nil {
			return nil, serviceError("list candidates", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serviceError("list candidates", err)
	}

	return candidates, nil
}

// ListCandidateTallies counts ballots per candidate in a single query
func (s *SQLStore) ListCandidateTallies(ctx context.Context) ([]models.CandidateTally, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, COUNT(v.id)
		FROM candidate c
		LEFT JOIN voter v ON v.ballot_name = c.name
		GROUP BY c.name
		ORDER BY c.name
	`)
	if err != nil {
		return nil, serviceError("list candidate tallies", err)
	}
	defer rows.Close()

	tallies := []models.CandidateTally{}
	for rows.Next() {
		var t models.CandidateTally
		if err := rows.Scan(&t.Name, &t.VoteCount); err != nil {
			return nil, serviceError("list candidate tallies", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serviceError("list candidate tallies", err)
	}

	return tallies, nil
}

// SeedCandidates inserts the names, leaving existing candidates untouched
func (s *SQLStore) SeedCandidates(ctx context.Context, names []string) error {
	for _, name := range names {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO candidate (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			return serviceError("seed candidates", err)
		}
	}
	return nil
}

func (s *SQLStore) CreateVoter(ctx context.Context, name string) (models.InsertResult, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO voter (id, name, ballot_name)
		VALUES ($1, $2, NULL)
	`, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return models.InsertResult{}, ErrDuplicateName
		}
		return models.InsertResult{}, serviceError("create voter", err)
	}

	return models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *SQLStore) ListVoters(ctx context.Context) ([]models.Voter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, ballot_name FROM voter ORDER BY name
	`)
	if err != nil {
		return nil, serviceError("list voters", err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		var v models.Voter
		var ballot sql.NullString
		if err := rows.Scan(&v.Name, &ballot); err != nil {
			return nil, serviceError("list voters", err)
		}
		if ballot.Valid {
			v.Ballot = &models.Ballot{Name: ballot.String}
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, serviceError("list voters", err)
	}

	return voters, nil
}

// CastVote overwrites the voter's ballot. A missing voter matches nothing and
// is not an error. Re-casting the same candidate matches but does not modify.
func (s *SQLStore) CastVote(ctx context.Context, name, candidate string) (models.UpdateResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.UpdateResult{}, serviceError("cast vote", err)
	}
	defer tx.Rollback()

	var matched int64
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM voter WHERE name = $1
	`, name).Scan(&matched)
	if err != nil {
		return models.UpdateResult{}, serviceError("cast vote", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE voter
		SET ballot_name = $1
		WHERE name = $2 AND (ballot_name IS NULL OR ballot_name <> $1)
	`, candidate, name)
	if err != nil {
		return models.UpdateResult{}, serviceError("cast vote", err)
	}
	modified, err := res.RowsAffected()
	if err != nil {
		return models.UpdateResult{}, serviceError("cast vote", err)
	}

	if err := tx.Commit(); err != nil {
		return models.UpdateResult{}, serviceError("cast vote", err)
	}

	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
	}, nil
}

func (s *SQLStore) RemoveVoter(ctx context.Context, name string) (models.DeleteResult, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM voter WHERE name = $1
	`, name)
	if err != nil {
		return models.DeleteResult{}, serviceError("remove voter", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, serviceError("remove voter", err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// extended result codes disabled
			return true
		}
	}
	return false
}
