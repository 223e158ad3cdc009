package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/revision-planner-backend/internal/app"
	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply postgres migrations or create mongo indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.OpenStore(cmd.Context(), c.cfg.Database, c.logger, true)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", store.Driver)
			return nil
		},
	}
}

func (c *cli) seedCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create empty daily plans for every subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, svcs, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			day := svcs.Revisions.Today()
			if date != "" {
				if day, err = domain.ParseDate(date); err != nil {
					return err
				}
			}

			res, err := svcs.Revisions.SeedDay(cmd.Context(), day)
			if err != nil {
				return err
			}
			c.logger.Info("seed completed",
				slog.String("date", day.String()),
				slog.Int("subjects", res.Subjects),
				slog.Int("created", res.Created),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d subjects, %d plans created\n", day, res.Subjects, res.Created)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to seed as YYYY-MM-DD (default today in planner.timezone)")
	return cmd
}
