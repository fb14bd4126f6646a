package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/svenska/internal/progress"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished days, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		missed, _ := cmd.Flags().GetBool("missed")

		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctl, err := e.controller(cmd.Context())
		if err != nil {
			return err
		}

		results := ctl.State().History
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No finished days yet.")
			return nil
		}
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}
		printHistory(cmd.OutOrStdout(), results, missed)
		return nil
	},
}

func printHistory(w io.Writer, results []progress.DailyResult, missed bool) {
	fmt.Fprintf(w, "%-10s  %6s  %s\n", "Date", "Points", "Missed")
	fmt.Fprintln(w, strings.Repeat("─", 28))
	for _, r := range results {
		fmt.Fprintf(w, "%-10s  %6d  %d\n", r.Date, r.TotalPoints, len(r.MissedItems))
		if !missed {
			continue
		}
		for _, m := range r.MissedItems {
			fmt.Fprintf(w, "    [%s] %s\n", m.Mode, m.Question)
			fmt.Fprintf(w, "        yours: %s   correct: %s\n", orDash(m.UserAnswer), m.CorrectAnswer)
		}
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 0, "Number of days to show (0 = all)")
	historyCmd.Flags().BoolP("missed", "m", false, "Include missed items")
}
