package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamlowkey/studybuddy/internal/llm"
	"github.com/teamlowkey/studybuddy/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged LLM requests",
}

// withStore opens the database for the duration of fn.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, s *store.Store) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	return fn(cmd.Context(), s)
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := store.QueryOpts{}
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		opts.Purpose, _ = cmd.Flags().GetString("purpose")
		if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
			opts.From = time.Now().Add(-since)
		}
		failedOnly, _ := cmd.Flags().GetBool("failed")

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			events, err := s.EventRepo().QueryLLMEvents(ctx, opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No LLM requests logged.")
				return nil
			}

			fmt.Printf("%-5s  %-19s  %-10s  %-24s  %-6s  %-6s  %-7s  %s\n",
				"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Result")
			fmt.Println(strings.Repeat("─", 100))

			for _, e := range events {
				if failedOnly && e.Success {
					continue
				}
				result := "✓"
				if !e.Success {
					result = "✗ " + truncate(e.ErrorMessage, 30)
				}
				fmt.Printf("%-5d  %-19s  %-10s  %-24s  %-6d  %-6d  %-7d  %s\n",
					e.ID,
					e.Timestamp.Local().Format(time.DateTime),
					truncate(e.Purpose, 10),
					truncate(e.Model, 24),
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					result,
				)
			}
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			e, err := s.EventRepo().GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			fmt.Printf("ID:        %d\n", e.ID)
			fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format(time.DateTime))
			fmt.Printf("Provider:  %s\n", e.Provider)
			fmt.Printf("Model:     %s\n", e.Model)
			fmt.Printf("Purpose:   %s\n", e.Purpose)
			fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Printf("Latency:   %dms\n", e.LatencyMs)
			fmt.Printf("Success:   %v\n", e.Success)
			if e.ErrorMessage != "" {
				fmt.Printf("Error:     %s\n", e.ErrorMessage)
			}

			printBody("REQUEST", e.RequestBody)
			printBody("RESPONSE", e.ResponseBody)
			return nil
		})
	},
}

// printBody prints a captured body, indenting it when it is JSON.
func printBody(label, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(sep)
	fmt.Println(label)
	fmt.Println(sep)

	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err == nil {
		fmt.Println(buf.String())
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			stats, err := s.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}

			if len(stats) == 0 {
				fmt.Println("No LLM usage recorded yet.")
				return nil
			}

			rule := strings.Repeat("─", 72)

			fmt.Println("Usage by Purpose")
			fmt.Println(rule)
			fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n",
				"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
			fmt.Println(rule)

			var totalCalls, totalIn, totalOut int
			for _, st := range stats {
				fmt.Printf("%-16s  %6d  %10d  %10d  %10d  %8d\n",
					st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
				totalCalls += st.Calls
				totalIn += st.InputTokens
				totalOut += st.OutputTokens
			}

			fmt.Println(rule)
			fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n",
				"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

			modelUsage, err := s.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(modelUsage) == 0 {
				return nil
			}

			fmt.Println()
			fmt.Println("Estimated Cost (USD)")
			fmt.Println(rule)
			fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
			fmt.Println(rule)

			var totalCost float64
			var unknown []string
			for _, mu := range modelUsage {
				cost := "?"
				if c := llm.LookupCost(mu.Model); c != nil {
					usd := c.Cost(mu.InputTokens, mu.OutputTokens)
					totalCost += usd
					cost = formatCost(usd)
				} else {
					unknown = append(unknown, mu.Model)
				}
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
			}

			fmt.Println(rule)
			label := "TOTAL"
			if len(unknown) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(totalCost))

			if len(unknown) > 0 {
				fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		})
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show this purpose (e.g. recommend)")
	llmListCmd.Flags().Duration("since", 0, "Only show requests newer than this, e.g. 24h")
	llmListCmd.Flags().Bool("failed", false, "Only show failed requests")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
