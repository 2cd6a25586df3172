// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the candidate and voter services.

# Candidate Service

	GET /health
	GET /         - List candidates
	GET /ballots  - Candidates with vote counts

# Voter Service

	GET    /health
	POST   /      - Register a voter
	GET    /      - List voters
	PUT    /      - Cast or change a vote
	DELETE /      - Remove a voter

Both routers take the store they serve:

	mux := router.NewVoterRouter(st)
*/
package router
