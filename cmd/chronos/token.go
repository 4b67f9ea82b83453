package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/chronos-workspace/internal/auth"
)

// newTokenCmd mints an access token for local development and smoke tests.
func newTokenCmd() *cobra.Command {
	var (
		userID string
		name   string
		email  string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := uuid.Parse(userID); err != nil {
				return fmt.Errorf("--user must be a UUID: %w", err)
			}
			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive")
			}
			auth.Init()

			token, err := auth.GenerateUserJWT(auth.Identity{
				UserID: userID,
				Name:   name,
				Email:  email,
				Role:   role,
			}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (UUID)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&role, "role", "employee", "role")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
