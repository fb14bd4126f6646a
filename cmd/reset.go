package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restart today's activities, or erase all progress with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if all && !yes && !confirm(cmd.InOrStdin(), out, "Erase streak, XP and history?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}

		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctl, err := e.controller(ctx)
		if err != nil {
			return err
		}

		if all {
			if err := ctl.ResetAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "All progress erased.")
			return nil
		}

		if err := ctl.ResetProgress(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Today's activities can be played again.")
		return nil
	},
}

// confirm asks a yes/no question and reports a "y" or "yes" answer.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	resetCmd.Flags().Bool("all", false, "Erase streak, XP, history and attendance")
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
