package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		results := e.history.Recent(limit)
		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No sessions yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-28s  %7s  %5s  %6s  %5s\n",
			"Date", "Topic", "Score", "Acc", "Time", "Coins")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, r := range results {
			fmt.Fprintf(out, "%-16s  %-28s  %7s  %4d%%  %6s  %5d\n",
				r.Date.Local().Format("2006-01-02 15:04"),
				truncate(r.Topic, 28),
				fmt.Sprintf("%d/%d", r.Score, r.TotalQuestions),
				r.Accuracy,
				fmt.Sprintf("%d:%02d", r.TimeSpentSeconds/60, r.TimeSpentSeconds%60),
				r.CoinsEarned,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show (0 for all)")
}
