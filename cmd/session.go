package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/auth"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage session tokens",
}

var sessionIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a session token signed with DAYNE_AUTH_KEY",
	Long: `Issue a signed session token for a user.

Set the printed token as DAYNE_SESSION_TOKEN on the client. The proxy and
the client verify it with the same DAYNE_AUTH_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		cfg := loadConfig(cmd)
		if cfg.AuthKey == "" {
			return fmt.Errorf("DAYNE_AUTH_KEY is not set")
		}

		token, err := auth.Issue(cfg.AuthKey, user, email, ttl)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var sessionWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user of DAYNE_SESSION_TOKEN",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if cfg.SessionToken == "" {
			fmt.Println("Not signed in.")
			return nil
		}
		s, err := auth.NewVerifier(cfg.AuthKey).Verify(cfg.SessionToken)
		if err != nil {
			return err
		}
		fmt.Printf("User:     %s\n", s.UserID)
		if s.Email != "" {
			fmt.Printf("Email:    %s\n", s.Email)
		}
		if !s.ExpiresAt.IsZero() {
			fmt.Printf("Expires:  %s\n", s.ExpiresAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	sessionIssueCmd.Flags().String("user", "", "User ID (required)")
	sessionIssueCmd.Flags().String("email", "", "User e-mail shown in the UI")
	sessionIssueCmd.Flags().Duration("ttl", 30*24*time.Hour, "Token lifetime")
	_ = sessionIssueCmd.MarkFlagRequired("user")

	sessionCmd.AddCommand(sessionIssueCmd)
	sessionCmd.AddCommand(sessionWhoamiCmd)
}
