// Event delete command removes an event.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Delete an event",
	Long: `Delete removes an event along with its attached notes. Sub-events of
a deleted parent are kept and simply lose their living parent; delete
them separately if they should go too.`,
	Args: cobra.ExactArgs(1),
	RunE: runEventDelete,
}

func runEventDelete(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.DeleteEvent(cmd.Context(), owner, args[0]); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]bool{"success": true})
	}
	fmt.Printf("Deleted event: %s\n", args[0])
	return nil
}
