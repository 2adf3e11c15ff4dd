// Note delete command removes a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteDelete,
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.DeleteNote(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]bool{"success": true})
	}
	fmt.Printf("Deleted note: %s\n", args[0])
	return nil
}
