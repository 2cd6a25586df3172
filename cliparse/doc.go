// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the candidate and voter services.

# Configuration

ParseFlags returns a Config struct for one service:

	cfg, err := cliparse.ParseFlags("voters", cliparse.VotersPort, os.Args[1:])

# Config Fields

  - Port: Server listen port (candidates 3006, voters 3002)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: postgres, sqlite or mongo
  - DatabaseName: Mongo database name (default: voting)
  - SeedCandidates: Candidate names inserted at startup

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type
	-db-name  Mongo database name
	-seed     Comma-separated candidate names
	-env      Path to a .env file (default: .env)

# Environment Variables

Flags fall back to environment variables, loaded from .env when present:

	PORT            → -p
	DATABASE_URL    → -d (MONGODB_URI is also accepted)
	DATABASE_TYPE   → -t
	DATABASE_NAME   → -db-name
	SEED_CANDIDATES → -seed

CLI flags take precedence over environment variables. When no type is
given it is inferred from the URL scheme.
*/
package cliparse
