// Command plannerctl runs offline jobs against the revision planner store:
// migrations, daily seeding, flashcard import, quiz generation, the study
// countdown and token issuing.
//
// Every subcommand reads the same configuration as the server. Commands that
// act for a user take --owner, falling back to planner.default_owner_id.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
