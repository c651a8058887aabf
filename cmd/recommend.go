package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamlowkey/studybuddy/internal/performance"
	"github.com/teamlowkey/studybuddy/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Fetch study resources for a set of weak topics",
	Long: "Fetch study resources for the given weak topics. Without --topic the " +
		"demo student's weak areas are used.",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := performance.Demo().Profile()
		if v, _ := cmd.Flags().GetString("name"); v != "" {
			profile.Name = v
		}
		if v, _ := cmd.Flags().GetString("class"); v != "" {
			profile.Class = v
		}
		if v, _ := cmd.Flags().GetString("stream"); v != "" {
			profile.Stream = v
		}
		if topics, _ := cmd.Flags().GetStringSlice("topic"); len(topics) > 0 {
			profile.WeakTopics = topics
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		st := e.fetcher.Fetch(cmd.Context(), profile)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(recommend.Suggestions(st))
		}

		printState(st)
		return nil
	},
}

func printState(st recommend.State) {
	switch s := st.(type) {
	case recommend.Ready:
		if s.MissingCredential {
			fmt.Println("No API key configured. Showing general suggestions.")
			fmt.Println()
		}
	case recommend.Failed:
		fmt.Printf("Couldn't load AI suggestions: %s\n\n", s.Reason())
	}

	list := recommend.Suggestions(st)
	if len(list) == 0 {
		fmt.Println("No suggestions.")
		return
	}
	for i, s := range list {
		fmt.Printf("%d. %s [%s]", i+1, s.Title, s.Type)
		if s.Source != "" {
			fmt.Printf(" · %s", s.Source)
		}
		fmt.Println()
		if s.Description != "" {
			fmt.Printf("   %s\n", s.Description)
		}
	}
}

func init() {
	recommendCmd.Flags().StringSliceP("topic", "t", nil, "Weak topic (repeatable or comma separated)")
	recommendCmd.Flags().String("name", "", "Learner name")
	recommendCmd.Flags().String("class", "", "Class or grade, e.g. 12")
	recommendCmd.Flags().String("stream", "", "Stream, e.g. PCM")
	recommendCmd.Flags().Bool("json", false, "Print the suggestions as JSON")
}

func joinTopics(topics []string) string {
	if len(topics) == 0 {
		return "-"
	}
	return strings.Join(topics, ", ")
}
