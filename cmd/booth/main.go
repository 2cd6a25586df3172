// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/votingbooth/booth"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var candidatesURL, votersURL string

	controller := func() *booth.Controller {
		return booth.NewController(booth.NewClient(candidatesURL, votersURL), out)
	}

	root := &cobra.Command{
		Use:           "booth",
		Short:         "Voting booth client for the candidate and voter services",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&candidatesURL, "candidates-url", envOr("BOOTH_CANDIDATES_URL", booth.DefaultCandidatesURL), "Candidate service URL")
	root.PersistentFlags().StringVar(&votersURL, "voters-url", envOr("BOOTH_VOTERS_URL", booth.DefaultVotersURL), "Voter service URL")

	root.AddCommand(&cobra.Command{
		Use:   "home",
		Short: "List candidates and voters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return controller().Home(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "results",
		Short: "Show vote counts per candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return controller().Results(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "register NAME",
		Short: "Register a new voter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return controller().Register(cmd.Context(), args[0])
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a voter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return controller().Remove(cmd.Context(), args[0])
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "vote VOTER [CANDIDATE]",
		Short: "Cast a vote, prompting for the candidate when it is not given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller()
			pending, err := c.OpenBallot(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var candidate string
			if len(args) == 2 {
				candidate = args[1]
			} else {
				candidate, err = promptChoice(in, out, pending)
				if err != nil {
					return err
				}
			}
			return c.Submit(cmd.Context(), pending, candidate)
		},
	})

	return root
}

// promptChoice reads a ballot number from in
func promptChoice(in io.Reader, out io.Writer, pending booth.PendingVote) (string, error) {
	fmt.Fprint(out, "Choice: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no choice entered: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return "", fmt.Errorf("%w: %q", booth.ErrInvalidChoice, strings.TrimSpace(line))
	}
	return pending.Choice(n)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
