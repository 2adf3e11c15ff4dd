// Note add command attaches an analytic note to an event.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

var (
	noteAddTitle       string
	noteAddDescription string
	noteAddPerception  string
	noteAddImportance  int
	noteAddStatus      string
	noteAddFacts       string
	noteAddAssumptions string
	noteAddPatterns    string
	noteAddActions     string
	noteAddImages      []string
)

var noteAddCmd = &cobra.Command{
	Use:   "add <event-id>",
	Short: "Attach a new note to an event",
	Long: `Add attaches a free-form analytic note to an existing event. The
four reasoning fields separate what happened (--facts) from the
interpretation layered on top (--assumptions, --patterns) and the
planned response (--actions).

Example:
  lifelog note add 0193d2f0-... --title "First pass" --facts "Meeting ran long" --importance 6`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteAdd,
}

func init() {
	noteAddCmd.Flags().StringVar(&noteAddTitle, "title", "", "note title")
	noteAddCmd.Flags().StringVar(&noteAddDescription, "description", "", "free-form description")
	noteAddCmd.Flags().StringVar(&noteAddPerception, "perception", "", "perception: Positive, Neutral, Negative, Mixed (default: Neutral)")
	noteAddCmd.Flags().IntVar(&noteAddImportance, "importance", 5, "importance on the 1-10 scale")
	noteAddCmd.Flags().StringVar(&noteAddStatus, "status", "", "status: Open, In Progress, Needs Watch, Resolved (default: Open)")
	noteAddCmd.Flags().StringVar(&noteAddFacts, "facts", "", "what verifiably happened")
	noteAddCmd.Flags().StringVar(&noteAddAssumptions, "assumptions", "", "assumptions made about the event")
	noteAddCmd.Flags().StringVar(&noteAddPatterns, "patterns", "", "thinking patterns identified")
	noteAddCmd.Flags().StringVar(&noteAddActions, "actions", "", "planned actions")
	noteAddCmd.Flags().StringSliceVar(&noteAddImages, "images", nil, "image reference strings")
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	draft := types.NoteDraft{
		Title:       noteAddTitle,
		Description: noteAddDescription,
		Perception:  types.Perception(noteAddPerception),
		Importance:  noteAddImportance,
		Status:      types.NoteStatus(noteAddStatus),
		Facts:       noteAddFacts,
		Assumptions: noteAddAssumptions,
		Patterns:    noteAddPatterns,
		Actions:     noteAddActions,
		Images:      noteAddImages,
	}

	note, err := backend.CreateNote(cmd.Context(), args[0], draft)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	if flagJSON {
		return printJSON(note)
	}
	fmt.Printf("Created note: %s\n", note.NoteID)
	return nil
}
