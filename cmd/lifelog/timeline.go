// Timeline command prints day-grouped, time-sorted event listings.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/internal/analytics"
)

var (
	timelineRange  string
	timelineFilter string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Day-grouped event timeline",
	Long: `Timeline groups the owner's events in the range by calendar day,
newest day first, with the most recent event at the head of each day.
The structural filter narrows the listing to root events ("roots"),
sub-events ("subs"), or everything ("all").`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVar(&timelineRange, "range", "30", `time window: day count, "month", or "all"`)
	timelineCmd.Flags().StringVar(&timelineFilter, "filter", "all", `structural filter: "all", "roots", or "subs"`)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	window, err := analytics.ParseRange(timelineRange)
	if err != nil {
		return err
	}
	filter, err := analytics.ParseStructuralFilter(timelineFilter)
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

	days := analytics.Timeline(events, filter)

	if flagJSON {
		return printJSON(days)
	}

	if len(days) == 0 {
		fmt.Println("No events match this filter.")
		return nil
	}
	for _, day := range days {
		fmt.Printf("%s\n", day.Date)
		for _, ev := range day.Events {
			marker := " "
			if !ev.IsRoot() {
				marker = "↳"
			}
			fmt.Printf("  %s %s  %s  %s\n",
				marker, ev.OccurredAt.UTC().Format("15:04"), ev.EventID, ev.Title)
		}
	}
	return nil
}
