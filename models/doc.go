// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateVoterRequest: name
  - CastVoteRequest: name, candidate
  - RemoveVoterRequest: name

# Domain Types

  - Candidate: a name on the ballot
  - CandidateTally: candidate name and voteCount
  - Voter: name and an optional Ballot
  - Ballot: the chosen candidate's name

# Write Results

Mutations report what they touched:

  - InsertResult: acknowledged, insertedId
  - UpdateResult: acknowledged, matchedCount, modifiedCount
  - DeleteResult: acknowledged, deletedCount

A vote for an unknown voter is not an error; it reports matchedCount 0.
*/
package models
