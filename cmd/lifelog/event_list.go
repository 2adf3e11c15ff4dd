// Event list command lists the owner's events in a time window.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/internal/analytics"
)

var listRange string

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events in a time window",
	Long: `List prints the owner's events with occurrence time inside the given
range, oldest first. Range is a day count ("7", "30"), "month" for the
current calendar month, or "all".`,
	Args: cobra.NoArgs,
	RunE: runEventList,
}

func init() {
	eventListCmd.Flags().StringVar(&listRange, "range", "all", `time window: day count, "month", or "all"`)
}

func runEventList(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	window, err := analytics.ParseRange(listRange)
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	events, err := backend.ListEventsSince(cmd.Context(), owner, window.Cutoff(time.Now()))
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	if flagJSON {
		return printJSON(events)
	}

	if len(events) == 0 {
		fmt.Println("No events in range.")
		return nil
	}
	for _, ev := range events {
		marker := " "
		if !ev.IsRoot() {
			marker = "↳"
		}
		fmt.Printf("%s %s  %s  [%s] intensity=%d importance=%d\n",
			marker, ev.EventID, ev.Title,
			ev.OccurredAt.Format("2006-01-02 15:04"), ev.Intensity, ev.Importance)
	}
	return nil
}
