// Command server runs the revision planner REST API. It stops gracefully on
// SIGINT or SIGTERM.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml), a .env file
// and environment variables; see internal/config.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/revision-planner-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
