// Note update command applies a partial update to a note.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

var (
	noteUpdTitle       string
	noteUpdDescription string
	noteUpdPerception  string
	noteUpdImportance  int
	noteUpdStatus      string
	noteUpdFacts       string
	noteUpdAssumptions string
	noteUpdPatterns    string
	noteUpdActions     string
	noteUpdImages      []string
)

var noteUpdateCmd = &cobra.Command{
	Use:   "update <note-id>",
	Short: "Update an existing note",
	Long: `Update applies a partial update: only flags that are set change the
stored note, everything else keeps its current value.`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteUpdate,
}

func init() {
	noteUpdateCmd.Flags().StringVar(&noteUpdTitle, "title", "", "note title")
	noteUpdateCmd.Flags().StringVar(&noteUpdDescription, "description", "", "free-form description")
	noteUpdateCmd.Flags().StringVar(&noteUpdPerception, "perception", "", "perception: Positive, Neutral, Negative, Mixed")
	noteUpdateCmd.Flags().IntVar(&noteUpdImportance, "importance", 0, "importance on the 1-10 scale")
	noteUpdateCmd.Flags().StringVar(&noteUpdStatus, "status", "", "status: Open, In Progress, Needs Watch, Resolved")
	noteUpdateCmd.Flags().StringVar(&noteUpdFacts, "facts", "", "what verifiably happened")
	noteUpdateCmd.Flags().StringVar(&noteUpdAssumptions, "assumptions", "", "assumptions made about the event")
	noteUpdateCmd.Flags().StringVar(&noteUpdPatterns, "patterns", "", "thinking patterns identified")
	noteUpdateCmd.Flags().StringVar(&noteUpdActions, "actions", "", "planned actions")
	noteUpdateCmd.Flags().StringSliceVar(&noteUpdImages, "images", nil, "image reference strings (replaces the stored set)")
}

func runNoteUpdate(cmd *cobra.Command, args []string) error {
	var patch types.NotePatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = stringPtr(noteUpdTitle)
	}
	if flags.Changed("description") {
		patch.Description = stringPtr(noteUpdDescription)
	}
	if flags.Changed("perception") {
		p := types.Perception(noteUpdPerception)
		patch.Perception = &p
	}
	if flags.Changed("importance") {
		patch.Importance = intPtr(noteUpdImportance)
	}
	if flags.Changed("status") {
		s := types.NoteStatus(noteUpdStatus)
		patch.Status = &s
	}
	if flags.Changed("facts") {
		patch.Facts = stringPtr(noteUpdFacts)
	}
	if flags.Changed("assumptions") {
		patch.Assumptions = stringPtr(noteUpdAssumptions)
	}
	if flags.Changed("patterns") {
		patch.Patterns = stringPtr(noteUpdPatterns)
	}
	if flags.Changed("actions") {
		patch.Actions = stringPtr(noteUpdActions)
	}
	if flags.Changed("images") {
		patch.Images = slicePtr(noteUpdImages)
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	note, err := backend.UpdateNote(cmd.Context(), args[0], patch)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	if flagJSON {
		return printJSON(note)
	}
	fmt.Printf("Updated note: %s\n", note.NoteID)
	return nil
}
