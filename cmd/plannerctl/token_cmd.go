package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/revision-planner-backend/internal/auth"
)

func (c *cli) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for --owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.cfg.Auth.Enabled() {
				return errors.New("auth.jwt_secret is not configured")
			}
			id, placeholder, err := c.ownerID()
			if err != nil {
				return err
			}
			if placeholder {
				return errors.New("--owner is required")
			}

			jwt := auth.NewJWTManager(c.cfg.Auth.JWTSecret, c.cfg.Auth.JWTIssuer, c.cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateToken(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
