// Event show command prints one event with its sub-events and notes.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

var eventShowCmd = &cobra.Command{
	Use:   "show <event-id>",
	Short: "Show an event, its sub-events, and its notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventShow,
}

func runEventShow(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	ctx := cmd.Context()
	event, err := backend.GetEvent(ctx, owner, args[0])
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	subEvents, err := backend.ListSubEvents(ctx, owner, event.EventID)
	if err != nil {
		return fmt.Errorf("list sub-events: %w", err)
	}

	notes, err := backend.ListNotes(ctx, event.EventID)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if flagJSON {
		return printJSON(struct {
			Event     *types.Event  `json:"event"`
			SubEvents []types.Event `json:"sub_events"`
			Notes     []types.Note  `json:"notes"`
		}{event, subEvents, notes})
	}

	printEventDetail(event)
	if len(subEvents) > 0 {
		fmt.Printf("\nSub-events (%d):\n", len(subEvents))
		for _, sub := range subEvents {
			fmt.Printf("  %s  %s  [%s]\n", sub.EventID, sub.Title, sub.OccurredAt.Format("2006-01-02 15:04"))
		}
	}
	if len(notes) > 0 {
		fmt.Printf("\nNotes (%d):\n", len(notes))
		for _, note := range notes {
			fmt.Printf("  %s  %s  [%s]\n", note.NoteID, note.Title, note.Status)
		}
	}
	return nil
}

// printEventDetail renders one event in the human-readable format.
func printEventDetail(ev *types.Event) {
	fmt.Printf("Event:        %s\n", ev.EventID)
	fmt.Printf("Title:        %s\n", ev.Title)
	if ev.Description != "" {
		fmt.Printf("Description:  %s\n", ev.Description)
	}
	if ev.Category != "" {
		fmt.Printf("Category:     %s\n", ev.Category)
	}
	fmt.Printf("Perception:   %s\n", ev.Perception)
	fmt.Printf("Verification: %s\n", ev.VerificationStatus)
	fmt.Printf("Intensity:    %d\n", ev.Intensity)
	fmt.Printf("Importance:   %d\n", ev.Importance)
	if len(ev.Emotions) > 0 {
		fmt.Printf("Emotions:     %s\n", strings.Join(ev.Emotions, ", "))
	}
	if len(ev.PhysicalSensations) > 0 {
		fmt.Printf("Sensations:   %s\n", strings.Join(ev.PhysicalSensations, ", "))
	}
	if len(ev.Tags) > 0 {
		fmt.Printf("Tags:         %s\n", strings.Join(ev.Tags, ", "))
	}
	if ev.ParentEventID != "" {
		fmt.Printf("Parent:       %s\n", ev.ParentEventID)
	}
	fmt.Printf("Occurred:     %s\n", ev.OccurredAt.Format("2006-01-02 15:04"))
}
