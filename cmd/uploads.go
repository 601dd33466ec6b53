package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/persist"
)

var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Browse your saved uploads",
}

var uploadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your uploads, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		gw, closeFn, err := signedInGateway(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		uploads, err := gw.Uploads(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list uploads: %w", err)
		}
		if len(uploads) == 0 {
			fmt.Println("No uploads found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-40s  %9s  %9s  %-16s  %s\n",
			"ID", "Name", "Questions", "Size", "Uploaded", "Processed")
		fmt.Println(strings.Repeat("─", 100))

		for _, u := range uploads {
			name := u.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			processed := "✓"
			if !u.Processed {
				processed = "✗"
			}
			fmt.Printf("%-5d  %-40s  %9d  %9s  %-16s  %s\n",
				u.ID, name, u.QuestionCount, humanBytes(u.FileSize),
				u.CreatedAt.Local().Format("2006-01-02 15:04"), processed)
		}

		fmt.Printf("\n%d uploads\n", len(uploads))
		return nil
	},
}

var uploadsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the questions stored for an upload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		gw, closeFn, err := signedInGateway(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		qs, err := gw.Questions(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("load upload %d: %w", id, err)
		}
		if len(qs) == 0 {
			fmt.Println("No questions stored for this upload.")
			return nil
		}
		printQuestions(cmd.OutOrStdout(), qs)
		return nil
	},
}

// signedInGateway opens the store and returns a gateway for the session
// token. It fails when no valid session is configured.
func signedInGateway(cmd *cobra.Command) (*persist.Gateway, func(), error) {
	cfg := loadConfig(cmd)
	if cfg.SessionToken == "" {
		return nil, nil, fmt.Errorf("no session: set DAYNE_SESSION_TOKEN (see 'dayne session issue')")
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	gw, err := newGateway(cfg, st, tokenSessions(cfg), zerolog.Nop())
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	if gw.Session(cmd.Context()) == nil {
		st.Close()
		return nil, nil, fmt.Errorf("session token rejected: check DAYNE_AUTH_KEY")
	}
	return gw, func() { st.Close() }, nil
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

func init() {
	uploadsListCmd.Flags().IntP("limit", "n", 20, "Number of uploads to show")

	uploadsCmd.AddCommand(uploadsListCmd)
	uploadsCmd.AddCommand(uploadsShowCmd)
}
