// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/votingbooth/cliparse"
	"github.com/danielhkuo/votingbooth/db"
	"github.com/danielhkuo/votingbooth/store"
)

// TestDBURL is an in-memory sqlite database, private to each connection pool
const TestDBURL = ":memory:"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         cliparse.VotersPort,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseName: "voting",
	}
}

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupTestStore returns a store over a fresh database seeded with candidates
func SetupTestStore(t *testing.T, candidates ...string) *store.SQLStore {
	t.Helper()

	s := store.NewSQLStore(SetupTestDB(t))
	if err := s.SeedCandidates(context.Background(), candidates); err != nil {
		t.Fatalf("Failed to seed candidates: %v", err)
	}
	return s
}

// ClosedTestStore returns a store whose database is already closed, so every
// call fails with a ServiceError
func ClosedTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	s := SetupTestStore(t)
	s.Close(context.Background())
	return s
}

// CreateTestVoter adds a voter and, when candidate is not empty, casts their vote
func CreateTestVoter(t *testing.T, s store.VoterStore, name, candidate string) {
	t.Helper()

	ctx := context.Background()
	if _, err := s.CreateVoter(ctx, name); err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}
	if candidate == "" {
		return
	}
	if _, err := s.CastVote(ctx, name, candidate); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
