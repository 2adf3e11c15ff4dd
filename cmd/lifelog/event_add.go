// Event add command records a new event.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

var (
	addTitle        string
	addDescription  string
	addCategory     string
	addPerception   string
	addVerification string
	addIntensity    int
	addImportance   int
	addEmotions     []string
	addSensations   []string
	addTags         []string
	addImages       []string
	addParent       string
	addOccurredAt   string
)

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new event",
	Long: `Add records a new event owned by the current user.

Tags are lower-cased and deduped; emotions, physical sensations, and
image references are trimmed and deduped. Intensity and importance are
clamped to the 1-10 scale. Supplying --parent nests the event one
level under an existing root event.

Example:
  lifelog event add --title "Difficult meeting" --intensity 7 --importance 8
  lifelog event add --title "Follow-up call" --parent 0193d2f0-... --emotions Anxious,Relieved
  lifelog event add --title "Morning run" --occurred-at 2026-08-30T07:15:00Z --tags gym,routine`,
	Args: cobra.NoArgs,
	RunE: runEventAdd,
}

func init() {
	eventAddCmd.Flags().StringVar(&addTitle, "title", "", "event title (required)")
	eventAddCmd.Flags().StringVar(&addDescription, "description", "", "free-form description")
	eventAddCmd.Flags().StringVar(&addCategory, "category", "", "category label")
	eventAddCmd.Flags().StringVar(&addPerception, "perception", "", "perception: Positive, Neutral, Negative, Mixed (default: Neutral)")
	eventAddCmd.Flags().StringVar(&addVerification, "verification", "", "verification status (default: Pending)")
	eventAddCmd.Flags().IntVar(&addIntensity, "intensity", 5, "intensity on the 1-10 scale")
	eventAddCmd.Flags().IntVar(&addImportance, "importance", 5, "importance on the 1-10 scale")
	eventAddCmd.Flags().StringSliceVar(&addEmotions, "emotions", nil, "emotion labels")
	eventAddCmd.Flags().StringSliceVar(&addSensations, "sensations", nil, "physical sensation labels")
	eventAddCmd.Flags().StringSliceVar(&addTags, "tags", nil, "tags (lower-cased, deduped)")
	eventAddCmd.Flags().StringSliceVar(&addImages, "images", nil, "image reference strings")
	eventAddCmd.Flags().StringVar(&addParent, "parent", "", "parent event id (nests one level deep)")
	eventAddCmd.Flags().StringVar(&addOccurredAt, "occurred-at", "", "when the event happened (RFC3339, date, or epoch; default: now)")
	_ = eventAddCmd.MarkFlagRequired("title")
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	draft := types.EventDraft{
		Title:              addTitle,
		Description:        addDescription,
		Category:           addCategory,
		Perception:         types.Perception(addPerception),
		VerificationStatus: types.VerificationStatus(addVerification),
		Intensity:          addIntensity,
		Importance:         addImportance,
		Emotions:           addEmotions,
		PhysicalSensations: addSensations,
		Tags:               addTags,
		Images:             addImages,
		ParentEventID:      addParent,
	}

	if addOccurredAt != "" {
		occurredAt, err := types.ParseTimestamp(addOccurredAt)
		if err != nil {
			return err
		}
		draft.OccurredAt = occurredAt
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	event, err := backend.CreateEvent(cmd.Context(), owner, draft)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if flagJSON {
		return printJSON(event)
	}
	fmt.Printf("Created event: %s\n", event.EventID)
	return nil
}
