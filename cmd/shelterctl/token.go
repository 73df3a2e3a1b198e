package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aidforpaws/internal/middleware"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if secret == "" {
				return fmt.Errorf("--secret or JWT_SECRET is required")
			}
			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive")
			}
			token, err := middleware.SignJWT(secret, middleware.NewAdminClaims(subject, "aidforpaws", ttl))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("secret", envOr("JWT_SECRET", ""), "HS256 signing secret")
	cmd.Flags().String("subject", envOr("ADMIN_USERNAME", "admin"), "token subject")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")

	return cmd
}
