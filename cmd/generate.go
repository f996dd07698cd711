package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/testplus/internal/studygen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a study set and print it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(strings.Join(args, " "))
		if topic == "" {
			return fmt.Errorf("topic must not be empty")
		}

		settings, err := settingsFromFlags(cmd)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		gen, err := e.generator(cmd.Context())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		content, err := gen.Generate(cmd.Context(), topic, settings)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(content)
		}
		printOutline(out, content)
		return nil
	},
}

func settingsFromFlags(cmd *cobra.Command) (studygen.Settings, error) {
	count, _ := cmd.Flags().GetInt("count")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	timer, _ := cmd.Flags().GetString("timer")

	s := studygen.Settings{
		QuestionCount: count,
		Difficulty:    studygen.Difficulty(strings.ToLower(difficulty)),
		TimerMode:     studygen.TimerMode(strings.ToLower(timer)),
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func printOutline(w io.Writer, c *studygen.Content) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(w, "%s\n%s\n\n", c.Topic, sep)
	for i, q := range c.MCQs {
		fmt.Fprintf(w, "%d. %s  [%s, %ds]\n", i+1, q.Question, q.Difficulty, q.TimerSeconds)
		for j, opt := range q.Options {
			mark := " "
			if q.IsCorrect(j) {
				mark = "✓"
			}
			fmt.Fprintf(w, "   %s %c) %s\n", mark, 'A'+j, opt)
		}
		if q.Hint != "" {
			fmt.Fprintf(w, "   Hint: %s\n", q.Hint)
		}
		if q.Explanation != "" {
			fmt.Fprintf(w, "   Why: %s\n", q.Explanation)
		}
		if len(q.Tags) > 0 {
			fmt.Fprintf(w, "   Tags: %s\n", strings.Join(q.Tags, ", "))
		}
		fmt.Fprintln(w)
	}

	if len(c.Flashcards) > 0 {
		fmt.Fprintf(w, "Flashcards\n%s\n", sep)
		for _, f := range c.Flashcards {
			fmt.Fprintf(w, "• %s\n  %s\n", f.Front, f.Back)
			if f.Mnemonic != "" {
				fmt.Fprintf(w, "  Mnemonic: %s\n", f.Mnemonic)
			}
		}
		fmt.Fprintln(w)
	}

	if len(c.StudyPlan) > 0 {
		fmt.Fprintf(w, "Study plan\n%s\n", sep)
		for i, step := range c.StudyPlan {
			fmt.Fprintf(w, "%d. %s\n", i+1, step)
		}
	}
}

func init() {
	defaults := studygen.DefaultSettings()
	generateCmd.Flags().IntP("count", "c", defaults.QuestionCount, "Number of questions (5, 10, 15 or 20)")
	generateCmd.Flags().StringP("difficulty", "d", string(defaults.Difficulty), "Difficulty: mixed, easy, medium or hard")
	generateCmd.Flags().StringP("timer", "t", string(defaults.TimerMode), "Timer: fast, standard or relaxed")
	generateCmd.Flags().Bool("json", false, "Print the study set as JSON")
}
