package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yungbote/bacprep-backend/internal/platform/envutil"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
	"github.com/yungbote/bacprep-backend/internal/services"
)

func newTokenCmd() *cobra.Command {
	var (
		user string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token for an identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := uuid.New()
			if user != "" {
				id, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("--user: %w", err)
				}
				userID = id
			}
			identity, err := services.NewIdentityService(logger.Nop(), nil, services.IdentityConfig{
				Secret:   envutil.String("JWT_SECRET", ""),
				Audience: envutil.String("JWT_AUDIENCE", "authenticated"),
				Issuer:   envutil.String("JWT_ISSUER", ""),
			})
			if err != nil {
				return err
			}
			tok, err := identity.IssueToken(userID, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "user: %s\n", userID)
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "identity uuid (random when empty)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
