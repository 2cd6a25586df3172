// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting services.

# Handler Types

  - CandidateHandler: candidate listing and tallies
  - VoterHandler: voter registration, voting and removal

Handlers are created via constructor functions that accept a store:

	voterHandler := handlers.NewVoterHandler(st)

# Errors

Failures are written as {"error": message}. Validation problems and
duplicate names return 400; store failures return 500 and are logged.
*/
package handlers
