package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/teamlowkey/studybuddy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studybuddy",
	Short: "Student performance dashboard with AI study resources",
	Long: "StudyBuddy shows a student's marks and weak areas, and asks an LLM for " +
		"study resources that target them. Works offline with general suggestions.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYBUDDY_DB env var)")
	rootCmd.PersistentFlags().String("env-file", "", "Load settings from this .env file (default .env when present)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(classReportCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYBUDDY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// ExecuteContext runs the root command with ctx available to every
// subcommand through cmd.Context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
