package main

import (
	"context"
	"fmt"
	"petregistry/internal/auth"
	"petregistry/internal/config"
	"petregistry/pkg/domain"
	"petregistry/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that signs a bearer token
// for the given user with the configured secret.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a bearer token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			rawID, _ := cmd.Flags().GetString("user-id")
			email, _ := cmd.Flags().GetString("email")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(rawID)
			if err != nil {
				logger.Fatal(ctx, "user id must be a UUID", zap.Error(err))
			}

			gateway, err := auth.New(auth.Options{Secret: cfg.JWT.Secret, TTL: TTL})
			if err != nil {
				logger.Fatal(ctx, "could not create auth gateway", zap.Error(err))
			}

			token, err := gateway.IssueToken(domain.UserID(userID), email)
			if err != nil {
				logger.Fatal(ctx, "could not sign token", zap.Error(err))
			}

			fmt.Println(token.Value) //nolint: forbidigo
		},
	}

	cmd.Flags().String("user-id", "", "User ID carried by the token")
	cmd.Flags().String("email", "", "Email carried by the token")
	cmd.Flags().Duration("ttl", cfg.JWT.TTL, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
