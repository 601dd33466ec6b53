package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/store"
	"github.com/dayne-app/dayne/internal/study"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your study history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		gw, closeFn, err := signedInGateway(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		hist, err := gw.History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		if len(hist) == 0 {
			fmt.Println("No study sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %-10s  %6s  %7s  %8s\n", "Completed", "Mode", "Upload", "Score", "Time")
		fmt.Println(strings.Repeat("─", 56))
		for _, h := range hist {
			upload := "-"
			if h.UploadID != nil {
				upload = fmt.Sprint(*h.UploadID)
			}
			score := "-"
			if h.Score != nil {
				score = fmt.Sprintf("%d/%d", *h.Score, h.Total)
			}
			fmt.Printf("%-16s  %-10s  %6s  %7s  %8s\n",
				h.CompletedAt.Local().Format("2006-01-02 15:04"),
				h.Mode, upload, score,
				(time.Duration(h.TimeSpentSecs) * time.Second).String())
		}

		s := summarize(hist)
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%d sessions: %d flashcards, %d tests", len(hist), s.flashcards, s.tests)
		if s.gradedTotal > 0 {
			fmt.Printf(", test accuracy %.0f%%", 100*float64(s.gradedScore)/float64(s.gradedTotal))
		}
		fmt.Printf(", %s studied\n", s.elapsed)
		return nil
	},
}

type historySummary struct {
	flashcards  int
	tests       int
	gradedScore int
	gradedTotal int
	elapsed     time.Duration
}

func summarize(hist []store.StudySession) historySummary {
	var s historySummary
	for _, h := range hist {
		switch study.Mode(h.Mode) {
		case study.ModeFlashcards:
			s.flashcards++
		case study.ModeTest:
			s.tests++
		}
		if h.Score != nil {
			s.gradedScore += *h.Score
			s.gradedTotal += h.Total
		}
		s.elapsed += time.Duration(h.TimeSpentSecs) * time.Second
	}
	return s
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
