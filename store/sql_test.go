// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/votingbooth/cliparse"
	"github.com/danielhkuo/votingbooth/db"
	"github.com/danielhkuo/votingbooth/models"
)

// setupSQLStore opens a fresh in-memory sqlite store seeded with candidates
func setupSQLStore(t *testing.T, candidates ...string) *SQLStore {
	t.Helper()

	conn, err := db.Open(cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	s := NewSQLStore(conn)
	t.Cleanup(func() { s.Close(context.Background()) })

	if err := s.SeedCandidates(context.Background(), candidates); err != nil {
		t.Fatalf("Failed to seed candidates: %v", err)
	}
	return s
}

func tallyOf(t *testing.T, s *SQLStore, name string) int {
	t.Helper()
	tallies, err := s.ListCandidateTallies(context.Background())
	if err != nil {
		t.Fatalf("ListCandidateTallies: %v", err)
	}
	for _, tally := range tallies {
		if tally.Name == name {
			return tally.VoteCount
		}
	}
	t.Fatalf("candidate %q not in tallies", name)
	return 0
}

func findVoter(t *testing.T, s *SQLStore, name string) (models.Voter, bool) {
	t.Helper()
	voters, err := s.ListVoters(context.Background())
	if err != nil {
		t.Fatalf("ListVoters: %v", err)
	}
	for _, v := range voters {
		if v.Name == name {
			return v, true
		}
	}
	return models.Voter{}, false
}

func TestSQLStore_CreateVoter(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t, "Bob")

	res, err := s.CreateVoter(ctx, "Alice")
	if err != nil {
		t.Fatalf("CreateVoter: %v", err)
	}
	if !res.Acknowledged || res.InsertedID == "" {
		t.Errorf("unexpected insert result: %+v", res)
	}

	v, ok := findVoter(t, s, "Alice")
	if !ok {
		t.Fatal("Alice not listed after creation")
	}
	if v.Ballot != nil {
		t.Errorf("expected nil ballot, got %+v", v.Ballot)
	}
}

func TestSQLStore_CreateVoterDuplicate(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t, "Bob")

	if _, err := s.CreateVoter(ctx, "Alice"); err != nil {
		t.Fatalf("CreateVoter: %v", err)
	}
	if _, err := s.CastVote(ctx, "Alice", "Bob"); err != nil {
		t.Fatalf("CastVote: %v", err)
	}

	_, err := s.CreateVoter(ctx, "Alice")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// Existing record is left alone
	v, ok := findVoter(t, s, "Alice")
	if !ok {
		t.Fatal("Alice disappeared")
	}
	if v.Ballot == nil || v.Ballot.Name != "Bob" {
		t.Errorf("existing ballot altered: %+v", v.Ballot)
	}

	voters, _ := s.ListVoters(ctx)
	if len(voters) != 1 {
		t.Errorf("expected 1 voter, got %d", len(voters))
	}
}

func TestSQLStore_CastVote(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t, "Bob", "Carol")

	if _, err := s.CreateVoter(ctx, "Alice"); err != nil {
		t.Fatalf("CreateVoter: %v", err)
	}

	before := tallyOf(t, s, "Bob")
	res, err := s.CastVote(ctx, "Alice", "Bob")
	if err != nil {
		t.Fatalf("CastVote: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("expected 1 matched / 1 modified, got %+v", res)
	}
	if got := tallyOf(t, s, "Bob"); got != before+1 {
		t.Errorf("expected Bob at %d, got %d", before+1, got)
	}

	v, _ := findVoter(t, s, "Alice")
	if v.Ballot == nil || v.Ballot.Name != "Bob" {
		t.Errorf("expected ballot Bob, got %+v", v.Ballot)
	}

	// Second vote overwrites the first
	if _, err := s.CastVote(ctx, "Alice", "Carol"); err != nil {
		t.Fatalf("CastVote: %v", err)
	}
	if got := tallyOf(t, s, "Bob"); got != before {
		t.Errorf("expected Bob back at %d, got %d", before, got)
	}
	if got := tallyOf(t, s, "Carol"); got != 1 {
		t.Errorf("expected Carol at 1, got %d", got)
	}

	// Same candidate again matches without modifying
	res, err = s.CastVote(ctx, "Alice", "Carol")
	if err != nil {
		t.Fatalf("CastVote: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 0 {
		t.Errorf("expected 1 matched / 0 modified, got %+v", res)
	}
}

func TestSQLStore_CastVoteUnknownVoter(t *testing.T) {
	s := setupSQLStore(t, "Bob")

	res, err := s.CastVote(context.Background(), "Nobody", "Bob")
	if err != nil {
		t.Fatalf("CastVote for missing voter should not fail: %v", err)
	}
	if res.MatchedCount != 0 || res.ModifiedCount != 0 {
		t.Errorf("expected zero counts, got %+v", res)
	}
	if got := tallyOf(t, s, "Bob"); got != 0 {
		t.Errorf("expected no votes for Bob, got %d", got)
	}
}

func TestSQLStore_CastVoteUnknownCandidate(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t, "Bob")

	s.CreateVoter(ctx, "Alice")
	res, err := s.CastVote(ctx, "Alice", "Zed")
	if err != nil {
		t.Fatalf("CastVote: %v", err)
	}
	if res.ModifiedCount != 1 {
		t.Errorf("expected ballot to be written, got %+v", res)
	}

	// Ballots for non-candidates are not reported
	tallies, _ := s.ListCandidateTallies(ctx)
	if len(tallies) != 1 || tallies[0].Name != "Bob" || tallies[0].VoteCount != 0 {
		t.Errorf("unexpected tallies: %+v", tallies)
	}
}

func TestSQLStore_RemoveVoter(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t, "Bob")

	s.CreateVoter(ctx, "Alice")
	s.CastVote(ctx, "Alice", "Bob")
	if got := tallyOf(t, s, "Bob"); got != 1 {
		t.Fatalf("expected 1 vote, got %d", got)
	}

	res, err := s.RemoveVoter(ctx, "Alice")
	if err != nil {
		t.Fatalf("RemoveVoter: %v", err)
	}
	if res.DeletedCount != 1 {
		t.Errorf("expected 1 deleted, got %d", res.DeletedCount)
	}
	if _, ok := findVoter(t, s, "Alice"); ok {
		t.Error("Alice still listed after removal")
	}
	if got := tallyOf(t, s, "Bob"); got != 0 {
		t.Errorf("removed voter still counted: %d", got)
	}

	// Removing again is not an error
	res, err = s.RemoveVoter(ctx, "Alice")
	if err != nil {
		t.Fatalf("RemoveVoter: %v", err)
	}
	if res.DeletedCount != 0 {
		t.Errorf("expected 0 deleted, got %d", res.DeletedCount)
	}
}

func TestSQLStore_ListingsSortedByName(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t, "Zoe", "Adam", "Mia")

	for _, name := range []string{"walter", "Dave", "Bea", "Carl"} {
		if _, err := s.CreateVoter(ctx, name); err != nil {
			t.Fatalf("CreateVoter(%s): %v", name, err)
		}
	}

	candidates, err := s.ListCandidates(ctx)
	if err != nil {
		t.Fatalf("ListCandidates: %v", err)
	}
	wantCandidates := []string{"Adam", "Mia", "Zoe"}
	for i, c := range candidates {
		if c.Name != wantCandidates[i] {
			t.Errorf("candidate %d: expected %s, got %s", i, wantCandidates[i], c.Name)
		}
	}

	tallies, _ := s.ListCandidateTallies(ctx)
	for i, tally := range tallies {
		if tally.Name != wantCandidates[i] {
			t.Errorf("tally %d: expected %s, got %s", i, wantCandidates[i], tally.Name)
		}
	}

	voters, _ := s.ListVoters(ctx)
	wantVoters := []string{"Bea", "Carl", "Dave", "walter"}
	if len(voters) != len(wantVoters) {
		t.Fatalf("expected %d voters, got %d", len(wantVoters), len(voters))
	}
	for i, v := range voters {
		if v.Name != wantVoters[i] {
			t.Errorf("voter %d: expected %s, got %s", i, wantVoters[i], v.Name)
		}
	}
}

func TestSQLStore_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t, "Bob")

	if err := Seed(ctx, s, []string{"Bob", "Carol"}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, s, nil); err != nil {
		t.Fatalf("Seed with no names: %v", err)
	}

	candidates, _ := s.ListCandidates(ctx)
	if len(candidates) != 2 {
		t.Errorf("expected 2 candidates, got %+v", candidates)
	}
}

func TestSQLStore_ServiceError(t *testing.T) {
	ctx := context.Background()
	s := setupSQLStore(t)
	s.Close(ctx)

	_, err := s.ListVoters(ctx)
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Op != "list voters" {
		t.Errorf("unexpected op %q", svcErr.Op)
	}

	if _, err := s.CreateVoter(ctx, "Alice"); errors.Is(err, ErrDuplicateName) || err == nil {
		t.Errorf("expected non-duplicate failure, got %v", err)
	}
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close(ctx)

	if _, ok := st.(*SQLStore); !ok {
		t.Errorf("expected *SQLStore, got %T", st)
	}
	if _, err := st.ListCandidates(ctx); err != nil {
		t.Errorf("schema not created: %v", err)
	}
}
