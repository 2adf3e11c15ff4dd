// Event command group for the lifelog CLI.
package main

import "github.com/spf13/cobra"

// newEventCmd groups the event subcommands.
func newEventCmd() *cobra.Command {
	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "Manage recorded events",
	}

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventUpdateCmd)
	eventCmd.AddCommand(eventDeleteCmd)
	eventCmd.AddCommand(eventShowCmd)
	eventCmd.AddCommand(eventListCmd)

	return eventCmd
}
