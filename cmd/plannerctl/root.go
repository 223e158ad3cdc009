package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/revision-planner-backend/internal/app"
	"github.com/heartmarshall/revision-planner-backend/internal/config"
	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

// cli carries state shared by all subcommands after PersistentPreRunE.
type cli struct {
	owner  string
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Offline tools for the revision planner",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.owner, "owner", "", "user id to act as (default planner.default_owner_id)")

	root.AddCommand(
		c.migrateCmd(),
		c.seedCmd(),
		c.flashcardsCmd(),
		c.quizCmd(),
		c.timerCmd(),
		c.tokenCmd(),
	)
	return root
}

// ownerID resolves --owner. The bool reports whether the configured
// placeholder owner was used.
func (c *cli) ownerID() (uuid.UUID, bool, error) {
	if c.owner == "" {
		return c.cfg.Planner.DefaultOwner, true, nil
	}
	id, err := uuid.Parse(c.owner)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false, fmt.Errorf("--owner must be a non-nil UUID (got %q)", c.owner)
	}
	return id, false, nil
}

// principalCtx returns ctx carrying the principal selected by --owner.
func (c *cli) principalCtx(ctx context.Context) (context.Context, error) {
	id, placeholder, err := c.ownerID()
	if err != nil {
		return nil, err
	}
	return ctxutil.WithPrincipal(ctx, ctxutil.Principal{UserID: id, Placeholder: placeholder}), nil
}

// open connects to the configured store and wires the services. The caller
// must Close the store.
func (c *cli) open(ctx context.Context) (*app.Store, app.Services, error) {
	store, err := app.OpenStore(ctx, c.cfg.Database, c.logger, c.cfg.Database.MigrateOnStart)
	if err != nil {
		return nil, app.Services{}, err
	}
	return store, app.NewServices(c.logger, store, c.cfg.Planner), nil
}
