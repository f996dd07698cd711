package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked questions with their answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		out := cmd.OutOrStdout()
		bookmarks := e.stats.Bookmarks()
		if len(bookmarks) == 0 {
			fmt.Fprintln(out, "No bookmarks yet.")
			return nil
		}

		for i, b := range bookmarks {
			fmt.Fprintf(out, "%d. [%s] %s\n", i+1, b.Topic, b.Question.Question)
			fmt.Fprintf(out, "   Answer: %s\n", b.Question.CorrectOption())
			if b.Question.Explanation != "" {
				fmt.Fprintf(out, "   %s\n", b.Question.Explanation)
			}
		}
		return nil
	},
}
