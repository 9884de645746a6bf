package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"team-tracker.com/team-tracker/internal/auth"
)

var (
	tokenUserID string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET must be set to issue tokens")
		}

		userID, err := uuid.Parse(tokenUserID)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}

		ttl := tokenTTL
		if ttl <= 0 {
			ttl = time.Duration(cfg.JWTTTLMinutes) * time.Minute
		}

		token, err := auth.IssueToken([]byte(cfg.JWTSecret), userID, ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "user id to issue the token for")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to JWT_TTL_MINUTES)")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}
