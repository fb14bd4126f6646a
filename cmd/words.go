package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/svenska/internal/content"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print today's word list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		refresh, _ := cmd.Flags().GetBool("refresh")

		e, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		svc := e.contentService(ctx)
		var d content.Daily
		if refresh {
			d, err = svc.Refresh(ctx)
		} else {
			d, err = svc.Daily(ctx)
		}
		if err != nil && !errors.Is(err, content.ErrNotConfigured) {
			return err
		}
		if refresh && err == nil && !d.Fallback {
			ctl, err := e.controller(ctx)
			if err != nil {
				return err
			}
			if err := ctl.ResetProgress(ctx); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  ·  %s\n", d.Date, d.Theme)
		if d.Warning != "" {
			fmt.Fprintf(out, "! %s\n", d.Warning)
		}
		fmt.Fprintln(out)
		for i, w := range d.Words {
			fmt.Fprintf(out, "%2d. %-18s %s\n", i+1, w.Swedish, w.English)
			if w.SwedishSentence != "" {
				fmt.Fprintf(out, "    %s\n    %s\n", w.SwedishSentence, w.EnglishSentence)
			}
		}
		if d.FunFact != "" {
			fmt.Fprintf(out, "\nFun fact: %s\n", d.FunFact)
		}
		return nil
	},
}

func init() {
	wordsCmd.Flags().Bool("refresh", false, "Fetch a new word set (also restarts today's activities)")
}
