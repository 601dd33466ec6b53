package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dayne-app/dayne/internal/llm"
	"github.com/dayne-app/dayne/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded question-generation calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		s, err := openStore(loadConfig(cmd))
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if failed {
			events = failedOnly(events)
		}
		printEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and raw reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		s, err := openStore(loadConfig(cmd))
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		printEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(loadConfig(cmd))
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.EventRepo()
		byPurpose, err := repo.LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return err
		}
		byModel, err := repo.LLMUsageByModel(cmd.Context())
		if err != nil {
			return err
		}
		printUsage(cmd.OutOrStdout(), byPurpose, byModel)
		return nil
	},
}

func failedOnly(events []store.LLMEvent) []store.LLMEvent {
	var out []store.LLMEvent
	for _, e := range events {
		if !e.Success {
			out = append(out, e)
		}
	}
	return out
}

func printEvents(w io.Writer, events []store.LLMEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No LLM calls recorded.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tPURPOSE\tMODEL\tTOKENS\tLATENCY\tRESULT")
	for _, e := range events {
		result := "ok"
		if !e.Success {
			result = "failed: " + truncate(e.ErrorMessage, 40)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d/%d\t%dms\t%s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			e.Purpose,
			truncate(e.Model, 28),
			e.InputTokens, e.OutputTokens,
			e.LatencyMs,
			result,
		)
	}
	tw.Flush()
}

func printEvent(w io.Writer, e *store.LLMEvent) {
	fmt.Fprintf(w, "Call %d  %s\n", e.ID, e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  %s / %s  (%s)\n", e.Provider, e.Model, e.Purpose)
	fmt.Fprintf(w, "  %d input + %d output tokens in %dms\n", e.InputTokens, e.OutputTokens, e.LatencyMs)
	if !e.Success {
		fmt.Fprintf(w, "  failed: %s\n", e.ErrorMessage)
	}

	section := func(title, body string) {
		fmt.Fprintf(w, "\n── %s ──\n", title)
		if body == "" {
			fmt.Fprintln(w, "(not captured)")
			return
		}
		fmt.Fprintln(w, indentJSON(body))
	}
	section("prompt", e.RequestBody)
	section("reply", e.ResponseBody)
}

// indentJSON pretty-prints s when it is JSON and returns it unchanged otherwise.
func indentJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}

func printUsage(w io.Writer, byPurpose []store.PurposeUsage, byModel []store.ModelUsage) {
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PURPOSE\tCALLS\tFAILED\tINPUT\tOUTPUT\tAVG MS\t")
	var calls, failures, in, out int
	for _, u := range byPurpose {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t\n",
			u.Purpose, u.Calls, u.Failures, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		failures += u.Failures
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Fprintf(tw, "total\t%d\t%d\t%d\t%d\t\t\n", calls, failures, in, out)
	tw.Flush()

	if len(byModel) == 0 {
		return
	}

	fmt.Fprintln(w)
	var total float64
	var unpriced []string
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MODEL\tCALLS\tCOST (USD)\t")
	for _, m := range byModel {
		cost := "?"
		if price := llm.LookupCost(m.Model); price != nil {
			c := price.Cost(m.InputTokens, m.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, m.Model)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", truncate(m.Model, 32), m.Calls, cost)
	}
	label := "total"
	if len(unpriced) > 0 {
		label = "total (partial)"
	}
	fmt.Fprintf(tw, "%s\t\t%s\t\n", label, formatCost(total))
	tw.Flush()

	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
	}
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only calls with this purpose (e.g. questions)")
	llmListCmd.Flags().Bool("failed", false, "Only failed calls")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
