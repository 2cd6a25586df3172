// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielhkuo/votingbooth/cliparse"
	"github.com/danielhkuo/votingbooth/store"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, "test", server) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * ShutdownTimeout):
		t.Fatal("serve did not return after cancel")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	cfg := cliparse.Config{
		Port:         -1,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
	}

	routesBuilt := false
	err := Run("test", cfg, func(s store.Store) http.Handler {
		routesBuilt = true
		return http.NotFoundHandler()
	})

	if err == nil {
		t.Fatal("Expected listen error for invalid port")
	}
	if !routesBuilt {
		t.Error("Expected routes to be built before listening")
	}
}

func TestRun_StoreFailure(t *testing.T) {
	cfg := cliparse.Config{
		Port:         0,
		DatabaseType: "oracle",
		DatabaseURL:  "nowhere",
	}

	err := Run("test", cfg, func(s store.Store) http.Handler {
		t.Error("routes must not be built without a store")
		return nil
	})
	if err == nil {
		t.Fatal("Expected store open error")
	}
}
