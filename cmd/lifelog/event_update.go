// Event update command applies a partial update to an event.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

var (
	updTitle        string
	updDescription  string
	updCategory     string
	updPerception   string
	updVerification string
	updIntensity    int
	updImportance   int
	updEmotions     []string
	updSensations   []string
	updTags         []string
	updImages       []string
	updParent       string
	updOccurredAt   string
)

var eventUpdateCmd = &cobra.Command{
	Use:   "update <event-id>",
	Short: "Update an existing event",
	Long: `Update applies a partial update: only flags that are set change the
stored event, everything else keeps its current value. Supplying an
empty value clears a field where that is meaningful, for example
--tags "" clears the tags and --parent "" detaches a sub-event from
its parent.

Example:
  lifelog event update 0193d2f0-... --intensity 9
  lifelog event update 0193d2f0-... --tags work,conflict
  lifelog event update 0193d2f0-... --parent ""`,
	Args: cobra.ExactArgs(1),
	RunE: runEventUpdate,
}

func init() {
	eventUpdateCmd.Flags().StringVar(&updTitle, "title", "", "event title")
	eventUpdateCmd.Flags().StringVar(&updDescription, "description", "", "free-form description")
	eventUpdateCmd.Flags().StringVar(&updCategory, "category", "", "category label")
	eventUpdateCmd.Flags().StringVar(&updPerception, "perception", "", "perception: Positive, Neutral, Negative, Mixed")
	eventUpdateCmd.Flags().StringVar(&updVerification, "verification", "", "verification status")
	eventUpdateCmd.Flags().IntVar(&updIntensity, "intensity", 0, "intensity on the 1-10 scale")
	eventUpdateCmd.Flags().IntVar(&updImportance, "importance", 0, "importance on the 1-10 scale")
	eventUpdateCmd.Flags().StringSliceVar(&updEmotions, "emotions", nil, "emotion labels (replaces the stored set)")
	eventUpdateCmd.Flags().StringSliceVar(&updSensations, "sensations", nil, "physical sensation labels (replaces the stored set)")
	eventUpdateCmd.Flags().StringSliceVar(&updTags, "tags", nil, "tags (replaces the stored set)")
	eventUpdateCmd.Flags().StringSliceVar(&updImages, "images", nil, "image reference strings (replaces the stored set)")
	eventUpdateCmd.Flags().StringVar(&updParent, "parent", "", "parent event id (empty detaches)")
	eventUpdateCmd.Flags().StringVar(&updOccurredAt, "occurred-at", "", "when the event happened (RFC3339, date, or epoch)")
}

func runEventUpdate(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	// Only flags the user actually set become part of the patch;
	// omitted fields preserve their stored values.
	var patch types.EventPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = stringPtr(updTitle)
	}
	if flags.Changed("description") {
		patch.Description = stringPtr(updDescription)
	}
	if flags.Changed("category") {
		patch.Category = stringPtr(updCategory)
	}
	if flags.Changed("perception") {
		p := types.Perception(updPerception)
		patch.Perception = &p
	}
	if flags.Changed("verification") {
		v := types.VerificationStatus(updVerification)
		patch.VerificationStatus = &v
	}
	if flags.Changed("intensity") {
		patch.Intensity = intPtr(updIntensity)
	}
	if flags.Changed("importance") {
		patch.Importance = intPtr(updImportance)
	}
	if flags.Changed("emotions") {
		patch.Emotions = slicePtr(updEmotions)
	}
	if flags.Changed("sensations") {
		patch.PhysicalSensations = slicePtr(updSensations)
	}
	if flags.Changed("tags") {
		patch.Tags = slicePtr(updTags)
	}
	if flags.Changed("images") {
		patch.Images = slicePtr(updImages)
	}
	if flags.Changed("parent") {
		patch.ParentEventID = stringPtr(updParent)
	}
	if flags.Changed("occurred-at") {
		occurredAt, err := types.ParseTimestamp(updOccurredAt)
		if err != nil {
			return err
		}
		patch.OccurredAt = &occurredAt
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	event, err := backend.UpdateEvent(cmd.Context(), owner, args[0], patch)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	if flagJSON {
		return printJSON(event)
	}
	fmt.Printf("Updated event: %s\n", event.EventID)
	return nil
}
