package models

// Request types

type CreateVoterRequest struct {
	Name string `json:"name"`
}

type CastVoteRequest struct {
	Name      string `json:"name"`
	Candidate string `json:"candidate"`
}

type RemoveVoterRequest struct {
	Name string `json:"name"`
}

// Domain types

type Candidate struct {
	Name string `json:"name"`
}

// CandidateTally is a candidate with the number of ballots naming it
type CandidateTally struct {
	Name      string `json:"name"`
	VoteCount int    `json:"voteCount"`
}

type Ballot struct {
	Name string `json:"name"`
}

// Ballot is nil until the voter casts a vote
type Voter struct {
	Name   string  `json:"name"`
	Ballot *Ballot `json:"ballot"`
}

// HasVoted reports whether a ballot is recorded for the voter
func (v Voter) HasVoted() bool {
	return v.Ballot != nil
}

// Write results, shaped like the document-store acknowledgements the
// front end already understands.

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Response types

type CreateVoterResponse struct {
	Message string       `json:"message"`
	Result  InsertResult `json:"result"`
}

type CastVoteResponse struct {
	Message string       `json:"message"`
	Result  UpdateResult `json:"result"`
}

type RemoveVoterResponse struct {
	Message string       `json:"message"`
	Result  DeleteResult `json:"result"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
