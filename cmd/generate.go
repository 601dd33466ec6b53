package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/pipeline"
	"github.com/dayne-app/dayne/internal/questiongen"
	"github.com/dayne-app/dayne/internal/study"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file|->",
	Short: "Generate questions from a file or from text on stdin",
	Long: `Generate multiple-choice questions without the terminal UI.

Pass a .pdf, .doc, .docx or .txt file, or "-" to read text from stdin.
Files are saved to your uploads when a session token is configured;
text from stdin is not.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntP("count", "n", 0, "Number of questions (default 5 for files, 10 for text)")
	generateCmd.Flags().Bool("json", false, "Print questions as JSON")
	generateCmd.Flags().Bool("quiz", false, "Answer the questions interactively after generating")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)
	count, _ := cmd.Flags().GetInt("count")
	asJSON, _ := cmd.Flags().GetBool("json")
	quiz, _ := cmd.Flags().GetBool("quiz")

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	p, _, err := newPipeline(ctx, cfg, st, zerolog.New(os.Stderr).Level(zerolog.WarnLevel))
	if err != nil {
		return err
	}

	var out pipeline.Outcome
	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, err = p.ProcessText(ctx, string(data), cfg.Language, count)
		if err != nil {
			return err
		}
	} else {
		f, err := pipeline.LoadFile(args[0])
		if err != nil {
			return err
		}
		out, err = p.ProcessFile(ctx, f, cfg.Language, count)
		if err != nil {
			return err
		}
		if out.Persisted.Saved() {
			warnf("Saved as upload %d.", out.Persisted.UploadID)
		} else if out.Persisted.Err != nil {
			warnf("Upload not saved: %v", out.Persisted.Err)
		}
	}

	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out.Questions)
	}
	if quiz {
		return runQuiz(cmd.InOrStdin(), w, out.Questions)
	}
	printQuestions(w, out.Questions)
	return nil
}

func printQuestions(w io.Writer, qs []questiongen.Question) {
	for i, q := range qs {
		fmt.Fprintf(w, "── Question %d/%d ──\n", i+1, len(qs))
		fmt.Fprintln(w, q.Text)
		for j, opt := range q.Options {
			mark := " "
			if opt == q.Answer {
				mark = "*"
			}
			fmt.Fprintf(w, " %s %d) %s\n", mark, j+1, opt)
		}
		fmt.Fprintln(w)
	}
}

// runQuiz asks each question on w and reads the chosen option number from r.
func runQuiz(r io.Reader, w io.Writer, qs []questiongen.Question) error {
	test := study.NewTest(qs)
	scanner := bufio.NewScanner(r)

	for {
		q, ok := test.Current()
		if !ok {
			break
		}
		fmt.Fprintf(w, "── Question %d/%d ──\n", test.Index()+1, test.Len())
		fmt.Fprintln(w, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(w, "  %d) %s\n", j+1, opt)
		}

		fmt.Fprint(w, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintf(w, "Enter a number from 1 to %d.\n\n", len(q.Options))
			continue
		}

		test.Select(q.Options[n-1])
		test.Submit()
		if test.Classify(q.Options[n-1]) == study.Correct {
			fmt.Fprintln(w, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(w, "\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		fmt.Fprintln(w)

		if c := test.Next(); c.Done {
			fmt.Fprintf(w, "── Score: %d/%d ──\n", c.Score, c.Total)
			return nil
		}
	}

	fmt.Fprintf(w, "── Score: %d/%d ──\n", test.Score(), test.Len())
	return nil
}
