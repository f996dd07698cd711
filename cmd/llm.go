package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/testplus/internal/llm"
	"github.com/abhisek/testplus/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the log of study-set generation requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withEvents(cmd, func(events store.EventRepo) error {
			records, err := events.QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			printEventList(cmd.OutOrStdout(), records)
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEvents(cmd, func(events store.EventRepo) error {
			rec, err := events.GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if rec == nil {
				return fmt.Errorf("event %d not found", id)
			}
			printEvent(cmd.OutOrStdout(), rec)
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEvents(cmd, func(events store.EventRepo) error {
			ctx := cmd.Context()
			byPurpose, err := events.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			byModel, err := events.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			printUsage(cmd.OutOrStdout(), byPurpose, byModel)
			return nil
		})
	},
}

// withEvents opens only the database; the request log needs no profile.
func withEvents(cmd *cobra.Command, fn func(store.EventRepo) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()
	return fn(st.EventRepo())
}

func printEventList(w io.Writer, records []store.LLMEventRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No LLM requests recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-16s  %-10s  %-28s  %6s  %6s  %6s  %s\n",
		"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(w, rule(96))
	for _, e := range records {
		fmt.Fprintf(w, "%-5d  %-16s  %-10s  %-28s  %6d  %6d  %6d  %s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			truncate(e.Purpose, 10),
			truncate(e.Model, 28),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			okMark(e.Success),
		)
	}
}

func printEvent(w io.Writer, e *store.LLMEventRecord) {
	fields := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Purpose", e.Purpose},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Success", okMark(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-10s %s\n", f[0]+":", f[1])
	}

	for _, section := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule(60), section.title, rule(60))
		if section.body == "" {
			fmt.Fprintln(w, "(not captured)")
			continue
		}
		fmt.Fprintln(w, section.body)
	}
}

func printUsage(w io.Writer, byPurpose []store.LLMPurposeUsage, byModel []store.LLMModelUsage) {
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded yet.")
		return
	}

	fmt.Fprintln(w, "Usage by purpose")
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-16s  %6s  %10s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	var calls, in, out int
	for _, u := range byPurpose {
		fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			truncate(u.Purpose, 16), u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, out, in+out)

	if len(byModel) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Estimated cost (USD)")
	fmt.Fprintln(w, rule(72))
	rows := make([]llm.ModelTokens, 0, len(byModel))
	var unpricedModels []string
	for _, m := range byModel {
		rows = append(rows, llm.ModelTokens{Model: m.Model, InputTokens: m.InputTokens, OutputTokens: m.OutputTokens})
		cost := "?"
		if c := llm.LookupCost(m.Model); c != nil {
			cost = formatCost(c.Cost(m.InputTokens, m.OutputTokens))
		} else {
			unpricedModels = append(unpricedModels, m.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %9s\n", truncate(m.Model, 32), m.Calls, m.InputTokens, m.OutputTokens, cost)
	}

	total, unpriced := llm.EstimateCost(rows)
	label := "TOTAL"
	if unpriced > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(total))
	if len(unpricedModels) > 0 {
		fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unpricedModels, ", "))
	}
}

func okMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func rule(n int) string {
	return strings.Repeat("─", n)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. study-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
