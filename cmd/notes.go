package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamlowkey/studybuddy/internal/notes"
	"github.com/teamlowkey/studybuddy/internal/store"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Show or clear the saved notes pad",
}

// openPad opens the store directly; notes need no LLM configuration.
func openPad(cmd *cobra.Command) (*notes.Pad, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return notes.NewPad(s.KV()), s, nil
}

var notesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the notes pad",
	RunE: func(cmd *cobra.Command, args []string) error {
		pad, s, err := openPad(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := pad.Load(cmd.Context()); err != nil {
			return err
		}
		if pad.Text() == "" {
			fmt.Println("No notes saved.")
			return nil
		}
		fmt.Println(pad.Text())
		return nil
	},
}

var notesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the notes pad",
	RunE: func(cmd *cobra.Command, args []string) error {
		pad, s, err := openPad(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := pad.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Notes cleared.")
		return nil
	},
}

func init() {
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesClearCmd)
}
