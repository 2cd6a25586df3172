// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package booth is the client side of the voting booth.

Client talks to both services over HTTP. Controller drives the booth
screens (home, ballot, results) and writes them as plain text:

	c := booth.NewController(booth.NewClient(candidatesURL, votersURL), os.Stdout)
	pending, err := c.OpenBallot(ctx, "Alice")
	choice, err := pending.Choice(1)
	err = c.Submit(ctx, pending, choice)
*/
package booth
