package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local database and stored upload copies",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		cfg := loadConfig(cmd)

		dsn, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		if store.IsPostgres(dsn) {
			return fmt.Errorf("refusing to reset a remote database")
		}

		targets := []string{dsn, dsn + "-wal", dsn + "-shm"}
		if !cfg.UsesObjectStorage() {
			targets = append(targets, cfg.BlobDir)
		}

		if !yes {
			fmt.Println("This will delete:")
			for _, t := range targets {
				fmt.Println("  " + t)
			}
			fmt.Print("Continue? [y/N] ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		for _, t := range targets {
			if err := os.RemoveAll(t); err != nil {
				return fmt.Errorf("remove %s: %w", t, err)
			}
		}
		fmt.Println("Local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
