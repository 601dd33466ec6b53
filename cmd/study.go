package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/study"
)

var studyCmd = &cobra.Command{
	Use:   "study <upload-id>",
	Short: "Study a saved upload without generating new questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid upload ID %q", args[0])
		}

		modeVal, _ := cmd.Flags().GetString("mode")
		mode := study.Mode(modeVal)
		if mode != study.ModeFlashcards && mode != study.ModeTest {
			return fmt.Errorf("invalid mode %q: must be flashcards or test", modeVal)
		}
		return launch(cmd, id, mode)
	},
}

func init() {
	studyCmd.Flags().StringP("mode", "m", string(study.ModeFlashcards), "Study mode: flashcards or test")
}
