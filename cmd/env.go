package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/llm"
	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/store"
	"github.com/abhisek/testplus/internal/studygen"
)

// env holds the opened store and the services built on it.
type env struct {
	store   *store.Store
	log     *logger.Logger
	stats   *stats.Service
	history *history.Store
}

// openEnv opens the database and loads the stats and history documents.
// With logToFile set, logs go to TESTPLUS_LOG or a file next to the
// database so the TUI is not disturbed.
func openEnv(cmd *cobra.Command, logToFile bool) (*env, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	log, err := newLogger(cmd, dbPath, logToFile)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}

	e := &env{store: st, log: log}
	ctx := cmd.Context()

	e.stats = stats.NewService(st.DocumentRepo(), stats.Config{
		Streak: stats.ParseStreakPolicy(os.Getenv("TESTPLUS_STREAK_RESET")),
		Logger: log,
	})
	if err := e.stats.Load(ctx); err != nil {
		e.Close()
		return nil, err
	}

	e.history = history.NewStore(st.DocumentRepo(), log)
	if err := e.history.Load(ctx); err != nil {
		e.Close()
		return nil, err
	}

	log.Debug("environment ready", "db", dbPath, "streak", e.stats.Stats().CurrentStreak)
	return e, nil
}

// Close flushes the logger and closes the database.
func (e *env) Close() {
	e.log.Sync()
	e.store.Close()
}

// generator builds the study-set generator from the TESTPLUS_* provider
// settings.
func (e *env) generator(ctx context.Context) (studygen.Generator, error) {
	provider, err := llm.NewProviderFromEnv(ctx, e.store.EventRepo(), e.log)
	if err != nil {
		return nil, err
	}
	e.log.Info("llm provider ready", "model", provider.ModelID())
	return studygen.New(provider, studygen.DefaultConfig()), nil
}

func newLogger(cmd *cobra.Command, dbPath string, logToFile bool) (*logger.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = os.Getenv("TESTPLUS_LOG_LEVEL")
	}
	opts := logger.Options{
		Mode:  os.Getenv("TESTPLUS_LOG_MODE"),
		Level: level,
	}

	if logToFile {
		path := os.Getenv("TESTPLUS_LOG")
		if path == "" {
			path = filepath.Join(filepath.Dir(dbPath), "testplus.log")
		}
		if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		opts.OutputPaths = []string{path}
	} else if opts.Level == "" {
		// Keep command output readable unless asked otherwise.
		opts.Level = "warn"
	}

	log, err := logger.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// unavailableGenerator stands in when no LLM provider is configured so the
// TUI can still open and show the reason on every attempt.
type unavailableGenerator struct {
	err error
}

func (g unavailableGenerator) Generate(context.Context, string, studygen.Settings) (*studygen.Content, error) {
	return nil, fmt.Errorf("%w: %v", studygen.ErrGeneration, g.err)
}
