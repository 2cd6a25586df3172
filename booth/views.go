// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package booth

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/votingbooth/models"
)

// SplitVoters separates voters without a ballot from those who voted,
// keeping the order they came in.
func SplitVoters(voters []models.Voter) (pending, voted []models.Voter) {
	for _, v := range voters {
		if v.HasVoted() {
			voted = append(voted, v)
		} else {
			pending = append(pending, v)
		}
	}
	return pending, voted
}

// RenderHome writes the candidate list followed by the voter lists
func RenderHome(w io.Writer, candidates []models.Candidate, voters []models.Voter) {
	fmt.Fprintln(w, "Candidates")
	if len(candidates) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, c := range candidates {
		fmt.Fprintf(w, "  - %s\n", c.Name)
	}
	fmt.Fprintln(w)
	RenderVoters(w, voters)
}

// RenderVoters writes the "not yet voted" and "voted" lists
func RenderVoters(w io.Writer, voters []models.Voter) {
	pending, voted := SplitVoters(voters)

	fmt.Fprintln(w, "Not yet voted")
	if len(pending) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, v := range pending {
		fmt.Fprintf(w, "  - %s\n", v.Name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Voted")
	if len(voted) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, v := range voted {
		fmt.Fprintf(w, "  - %s\n", v.Name)
	}
}

// RenderBallot writes the numbered candidate choices for a pending vote
func RenderBallot(w io.Writer, p PendingVote) {
	fmt.Fprintf(w, "Ballot for %s\n", p.Voter)
	for i, c := range p.Candidates {
		fmt.Fprintf(w, "  %d) %s\n", i+1, c.Name)
	}
}

// RenderResults writes each candidate with a humanized vote count
func RenderResults(w io.Writer, tallies []models.CandidateTally) {
	fmt.Fprintln(w, "Results")
	if len(tallies) == 0 {
		fmt.Fprintln(w, "  (no candidates)")
	}
	for _, t := range tallies {
		fmt.Fprintf(w, "  %s: %s\n", t.Name, FormatVotes(t.VoteCount))
	}
}

// FormatVotes renders a count as "1 vote" or "1,204 votes"
func FormatVotes(n int) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, "vote", "")
}
