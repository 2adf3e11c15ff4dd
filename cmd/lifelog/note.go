// Note command group for the lifelog CLI.
package main

import "github.com/spf13/cobra"

// newNoteCmd groups the note subcommands.
func newNoteCmd() *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Manage analytic notes attached to events",
	}

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteUpdateCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteListCmd)

	return noteCmd
}
