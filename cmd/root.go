package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/testplus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "testplus",
	Short: "AI study quizzes in your terminal",
	Long:  "TestPlus turns any topic into a timed quiz, a flashcard deck and a study plan.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is fine.
		_ = godotenv.Load()
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TESTPLUS_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Minimum log level: debug, info, warn or error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TESTPLUS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
