// Note list command lists the notes attached to an event.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteListCmd = &cobra.Command{
	Use:   "list <event-id>",
	Short: "List the notes attached to an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteList,
}

func runNoteList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	notes, err := backend.ListNotes(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if flagJSON {
		return printJSON(notes)
	}

	if len(notes) == 0 {
		fmt.Println("No notes.")
		return nil
	}
	for _, note := range notes {
		fmt.Printf("%s  %s  [%s] importance=%d\n", note.NoteID, note.Title, note.Status, note.Importance)
	}
	return nil
}
