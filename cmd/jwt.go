package main

import (
	"context"
	"fmt"
	"gmao/internal/accounts"
	"gmao/internal/config"
	"gmao/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given subject (user ID) and TTL using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			if _, err := uuid.Parse(subject); err != nil {
				logger.Fatal(ctx, "subject must be a user ID", zap.Error(err))
			}

			issuer, err := accounts.NewTokenIssuer(cfg.JWT.PrivateKey)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			token, err := issuer.Issue(subject, TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(token.AccessToken) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", cfg.JWT.TokenTTL, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
