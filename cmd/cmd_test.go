package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/testplus/internal/rewards"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/store"
	"github.com/abhisek/testplus/internal/studygen"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestStatsCommand_FreshProfile(t *testing.T) {
	db := filepath.Join(t.TempDir(), "testplus.db")
	out := execute(t, "stats", "--db", db)

	assert.Contains(t, out, "Coins              100")
	assert.Contains(t, out, "Level              1")
	assert.Contains(t, out, "Achievements (0 of 7)")
}

func TestHistoryAndBookmarksCommands_Empty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "testplus.db")
	assert.Contains(t, execute(t, "history", "--db", db), "No sessions yet.")
	assert.Contains(t, execute(t, "bookmarks", "--db", db), "No bookmarks yet.")
}

func TestResetCommand_RequiresConfirmation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "testplus.db")
	out := execute(t, "reset", "--db", db)
	assert.Contains(t, out, "--yes")
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "testplus (devel)\n", execute(t, "version"))
}

func TestSettingsFromFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().IntP("count", "c", 10, "")
		c.Flags().StringP("difficulty", "d", "mixed", "")
		c.Flags().StringP("timer", "t", "standard", "")
		return c
	}

	c := newCmd()
	require.NoError(t, c.Flags().Parse([]string{"-c", "5", "-d", "HARD", "-t", "fast"}))
	s, err := settingsFromFlags(c)
	require.NoError(t, err)
	assert.Equal(t, studygen.Settings{QuestionCount: 5, Difficulty: studygen.DifficultyHard, TimerMode: studygen.TimerFast}, s)

	c = newCmd()
	require.NoError(t, c.Flags().Parse([]string{"-c", "7"}))
	_, err = settingsFromFlags(c)
	assert.Error(t, err)
}

func TestPrintOutline(t *testing.T) {
	content := &studygen.Content{
		Topic: "Optics",
		MCQs: []studygen.MCQ{{
			ID:           "q1",
			Question:     "What bends light?",
			Options:      []string{"Mirror", "Lens", "Prism", "Filter"},
			AnswerIndex:  1,
			Difficulty:   studygen.DifficultyEasy,
			TimerSeconds: 30,
			Hint:         "Glasses use one.",
			Tags:         []string{"refraction"},
		}},
		Flashcards: []studygen.Flashcard{{ID: "f1", Front: "Focal point", Back: "Where rays meet", Mnemonic: "F for focus"}},
		StudyPlan:  []string{"Read about lenses"},
	}

	var buf bytes.Buffer
	printOutline(&buf, content)
	out := buf.String()

	assert.Contains(t, out, "1. What bends light?  [easy, 30s]")
	assert.Contains(t, out, "✓ B) Lens")
	assert.Contains(t, out, "    A) Mirror")
	assert.Contains(t, out, "Hint: Glasses use one.")
	assert.Contains(t, out, "Mnemonic: F for focus")
	assert.Contains(t, out, "1. Read about lenses")
}

func TestPrintStats_MarksUnlocked(t *testing.T) {
	day := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	s := stats.Default()
	s.XP = 250
	s.LastPracticeDate = &day
	s.UnlockedAchievements = []string{rewards.FirstSteps}

	var buf bytes.Buffer
	printStats(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "Level              2 (250 XP, 250 to next)")
	assert.Contains(t, out, "Achievements (1 of 7)")

	first, ok := rewards.Lookup(rewards.FirstSteps)
	require.True(t, ok)
	var unlockedLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, first.Name) {
			unlockedLine = line
		}
	}
	assert.True(t, strings.HasPrefix(unlockedLine, "✓ "), unlockedLine)
}

func TestPrintUsage_EstimatesCost(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf,
		[]store.LLMPurposeUsage{{Purpose: "study-gen", Calls: 2, InputTokens: 1_000_000, OutputTokens: 500, AvgLatencyMs: 900}},
		[]store.LLMModelUsage{
			{Model: "claude-sonnet-4-5", Calls: 1, InputTokens: 1_000_000},
			{Model: "local/llama", Calls: 1, OutputTokens: 500},
		},
	)
	out := buf.String()

	assert.Contains(t, out, "study-gen")
	assert.Contains(t, out, "$3.00")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: local/llama")
}

func TestPrintUsage_Empty(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf, nil, nil)
	assert.Equal(t, "No LLM usage recorded yet.\n", buf.String())
}

func TestPrintEvent(t *testing.T) {
	var buf bytes.Buffer
	printEvent(&buf, &store.LLMEventRecord{
		ID:        7,
		Timestamp: time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "study-gen",
			Success:      false,
			ErrorMessage: "rate limited",
			RequestBody:  `{"topic":"Optics"}`,
		},
	})
	out := buf.String()

	assert.Contains(t, out, "ID:        7")
	assert.Contains(t, out, "Error:     rate limited")
	assert.Contains(t, out, `{"topic":"Optics"}`)
	assert.Contains(t, out, "(not captured)")
}

func TestLLMListCommand_Empty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "testplus.db")
	assert.Contains(t, execute(t, "llm", "list", "--db", db), "No LLM requests recorded yet.")
}
