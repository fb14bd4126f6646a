package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, XP, level and recent practice runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctl, err := e.controller(ctx)
		if err != nil {
			return err
		}
		st := ctl.State()
		out := cmd.OutOrStdout()

		lvl := st.Level
		fmt.Fprintf(out, "Streak:    %d day(s)\n", st.Stats.Streak)
		fmt.Fprintf(out, "XP:        %d\n", st.Stats.XP)
		if lvl.MaxLevel() {
			fmt.Fprintf(out, "Level:     %d %s (top level)\n", lvl.Level, lvl.Name)
		} else {
			fmt.Fprintf(out, "Level:     %d %s (%d XP to next)\n", lvl.Level, lvl.Name, lvl.NextLevelXP-st.Stats.XP)
		}
		fmt.Fprintf(out, "This week: %s  (%d/7)\n", weekStrip(st.Week), st.Week.Count)

		done := make([]string, 0, len(st.Progress.CompletedModes))
		for _, m := range st.Progress.CompletedModes {
			done = append(done, m.DisplayName())
		}
		fmt.Fprintf(out, "Today:     %d/%d modes", len(done), len(progress.AllModes))
		if len(done) > 0 {
			fmt.Fprintf(out, " (%s)", strings.Join(done, ", "))
		}
		fmt.Fprintln(out)

		runs, err := e.store.EventRepo().QueryPracticeEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query practice runs: %w", err)
		}
		if len(runs) == 0 {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-19s  %-10s  %5s  %6s  %6s  %7s  %s\n",
			"Timestamp", "Mode", "XP", "Points", "Missed", "Time", "Credited")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, r := range runs {
			fmt.Fprintf(out, "%-19s  %-10s  %5d  %6d  %6d  %6ds  %s\n",
				r.Timestamp.Local().Format(timeLayout),
				r.Mode, r.XP, r.Points, r.MissedCount, r.DurationMs/1000, mark(r.Accepted))
		}
		return nil
	},
}

// weekStrip renders the Monday-first attendance as "M● T○ ...".
func weekStrip(ws progress.WeekStatus) string {
	parts := make([]string, 0, 7)
	for i, label := range progress.WeekdayLabels {
		mark := "○"
		if ws.Slots[i] {
			mark = "●"
		}
		parts = append(parts, label+mark)
	}
	return strings.Join(parts, " ")
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent practice runs to show")
}
