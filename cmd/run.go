package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/testplus/internal/app"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/studygen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	var gen studygen.Generator
	gen, err = e.generator(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Study set generation will be unavailable.")
		e.log.Warn("llm provider not configured", "error", err)
		gen = unavailableGenerator{err: err}
	}

	return app.Run(screen.Services{
		Generator: gen,
		Stats:     e.stats,
		History:   e.history,
		Logger:    e.log,
	})
}
