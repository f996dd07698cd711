package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase progress, bookmarks and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintln(out, "This erases all progress. Run again with --yes to confirm.")
			return nil
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		if err := e.stats.Reset(ctx); err != nil {
			return fmt.Errorf("reset stats: %w", err)
		}
		if err := e.history.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		e.log.Info("profile reset")

		fmt.Fprintln(out, "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
