package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamlowkey/studybuddy/internal/performance"
	"github.com/teamlowkey/studybuddy/internal/recommend"
	"github.com/teamlowkey/studybuddy/internal/roster"
)

var classReportCmd = &cobra.Command{
	Use:   "class-report",
	Short: "Show every student's performance with suggested resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		r := roster.Seed()
		org := r.Org()
		students := r.Students()

		profiles := make([]recommend.Profile, len(students))
		for i, m := range students {
			profiles[i] = m.Student(org).Profile()
		}
		results := e.fetcher.Batch(cmd.Context(), profiles, concurrency)

		fmt.Printf("%s · %d students\n", org.Name, len(students))
		fmt.Println(strings.Repeat("─", 72))

		for i, m := range students {
			report, err := performance.Analyze(m.Marks)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", m.Name, err)
			}
			fmt.Printf("%-12s  Class %-3s %-6s  Avg %5.1f%%  %s\n",
				m.Name, m.Class, m.Stream, report.Average, report.Overall)
			fmt.Printf("  Weak: %s\n", joinTopics(results[i].Profile.WeakTopics))

			st := results[i].State
			if f, ok := st.(recommend.Failed); ok {
				fmt.Printf("  AI suggestions failed: %s\n", f.Reason())
			}
			for _, s := range recommend.Suggestions(st) {
				fmt.Printf("  - %s [%s]\n", s.Title, s.Type)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	classReportCmd.Flags().IntP("concurrency", "c", recommend.DefaultBatchConcurrency, "Maximum requests in flight")
}
