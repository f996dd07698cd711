package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/testplus/internal/rewards"
	"github.com/abhisek/testplus/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, coins, streak and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		printStats(cmd.OutOrStdout(), e.stats.Stats())
		return nil
	},
}

func printStats(w io.Writer, s stats.UserStats) {
	lvl := s.Level()
	sep := strings.Repeat("─", 40)

	fmt.Fprintln(w, "Profile")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-18s %d (%d XP, %d to next)\n", "Level", lvl.Level, s.XP, lvl.XPToNext(s.XP))
	fmt.Fprintf(w, "%-18s %d\n", "Coins", s.Coins)
	fmt.Fprintf(w, "%-18s %d\n", "Streak", s.CurrentStreak)
	fmt.Fprintf(w, "%-18s %d%%\n", "Daily goal", s.DailyGoalProgress)
	fmt.Fprintf(w, "%-18s %d\n", "Sessions", s.TotalSessions)
	fmt.Fprintf(w, "%-18s %d\n", "Questions", s.TotalQuestionsAnswered)
	fmt.Fprintf(w, "%-18s %d%%\n", "Avg accuracy", s.AverageAccuracy)
	if s.LastPracticeDate != nil {
		fmt.Fprintf(w, "%-18s %s\n", "Last practice", s.LastPracticeDate.Local().Format("2006-01-02"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Achievements (%d of %d)\n", len(s.UnlockedAchievements), len(rewards.Catalog()))
	fmt.Fprintln(w, sep)
	for _, a := range rewards.Catalog() {
		mark := "  "
		if s.HasAchievement(a.ID) {
			mark = "✓ "
		}
		fmt.Fprintf(w, "%s%-16s %s\n", mark, a.Name, a.Description)
	}
}
