package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/svenska/internal/llm"
	"github.com/abhisek/svenska/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged requests to the content provider",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		ev, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer ev.Close()

		list, err := ev.store.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		return printLLMEvents(cmd.OutOrStdout(), list)
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one request with its prompt and response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		ev, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer ev.Close()

		e, err := ev.store.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no request with ID %d", id)
		}
		printLLMEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer ev.Close()

		events := ev.store.EventRepo()
		purposes, err := events.LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		models, err := events.LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		return printUsage(cmd.OutOrStdout(), purposes, models)
	},
}

func printLLMEvents(w io.Writer, list []store.LLMEvent) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No requests logged yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
	for _, e := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), e.Purpose, truncate(e.Model, 28),
			e.InputTokens, e.OutputTokens, e.LatencyMs, mark(e.Success))
	}
	return tw.Flush()
}

func printLLMEvent(w io.Writer, e *store.LLMEvent) {
	fmt.Fprintf(w, "ID:        %d\n", e.ID)
	fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(w, "Provider:  %s (%s)\n", e.Provider, e.Model)
	fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(w, "Tokens:    %d in, %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
	if e.ErrorMessage != "" {
		fmt.Fprintf(w, "Error:     %s\n", e.ErrorMessage)
	}
	for _, sec := range []struct{ name, body string }{
		{"Request", e.RequestBody},
		{"Response", e.ResponseBody},
	} {
		fmt.Fprintf(w, "\n── %s %s\n", sec.name, strings.Repeat("─", 50-len(sec.name)))
		fmt.Fprintln(w, orDash(sec.body))
	}
}

// printUsage writes token totals per purpose, then cost per model where the
// model's pricing is known.
func printUsage(w io.Writer, purposes []store.PurposeUsage, models []store.ModelUsage) error {
	if len(purposes) == 0 {
		_, err := fmt.Fprintln(w, "No requests logged yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PURPOSE\tCALLS\tIN\tOUT\tAVG MS\t")
	var calls, in, out int
	for _, p := range purposes {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", p.Purpose, p.Calls, p.InputTokens, p.OutputTokens, p.AvgLatencyMs)
		calls, in, out = calls+p.Calls, in+p.InputTokens, out+p.OutputTokens
	}
	fmt.Fprintf(tw, "total\t%d\t%d\t%d\t\t\n", calls, in, out)
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(models) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MODEL\tCALLS\tCOST (USD)\t")
	var total float64
	var unpriced []string
	for _, m := range models {
		cost := llm.LookupCost(m.Model)
		if cost == nil {
			unpriced = append(unpriced, m.Model)
			fmt.Fprintf(tw, "%s\t%d\t?\t\n", truncate(m.Model, 32), m.Calls)
			continue
		}
		c := cost.Cost(m.InputTokens, m.OutputTokens)
		total += c
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", truncate(m.Model, 32), m.Calls, formatCost(c))
	}
	fmt.Fprintf(tw, "total\t\t%s\t\n", formatCost(total))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nNo pricing for %s; the total leaves them out.\n", strings.Join(unpriced, ", "))
	}
	return nil
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose, e.g. daily-words or fun-fact")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
