// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL connections and creates the schema.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - candidate: one row per candidate, keyed by name
  - voter: registered voters with an optional ballot_name

voter.name is unique. A voter's ballot is the name of the candidate they
chose, or NULL before voting.
*/
package db
