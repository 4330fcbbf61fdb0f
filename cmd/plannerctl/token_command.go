package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/contentplanner-backend/internal/auth"
)

func newTokenCommand(ctx *commandContext) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		Long: `Issue a signed access token for a user with the configured secret,
issuer and lifetime. Intended for development and operator scripts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := parseUser(user)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, ctx.clock)
			token, err := tokens.Issue(userID)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User ID the token is issued for")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
