// Seed command generates demo data for trying out the analytics views.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

var (
	seedEvents int
	seedDays   int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo events, sub-events, and notes",
	Long: `Seed fills the owner's journal with generated events spread over the
recent past, each with a few sub-events and analytic notes. Useful for
exploring the summary, calendar, and timeline views on a fresh store.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedEvents, "events", 20, "number of root events to generate")
	seedCmd.Flags().IntVar(&seedDays, "days", 365, "spread events over this many past days")
}

// Demo vocabularies.
var (
	seedCategories = []string{"Career", "Relationships", "Health", "Finances", "Daily Life"}
	seedPerceptions = []types.Perception{
		types.PerceptionNegative, types.PerceptionNeutral,
		types.PerceptionPositive, types.PerceptionMixed,
	}
	seedEmotions = []string{
		"Anxious", "Sad", "Angry", "Frustrated", "Disappointed",
		"Proud", "Relieved", "Calm", "Content", "Excited",
	}
	seedSensations = []string{
		"Tight chest", "Warm face", "Tension in shoulders", "Headache",
		"Butterflies in stomach", "Increased heart rate", "Heavy limbs",
	}
	seedTags = []string{
		"work", "career", "conflict", "family", "friends", "gym",
		"sleep", "money", "routine", "coping", "progress", "setback",
	}
	seedStatuses = []types.NoteStatus{
		types.NoteStatusOpen, types.NoteStatusInProgress,
		types.NoteStatusNeedsWatch, types.NoteStatusResolved,
	}
)

func runSeed(cmd *cobra.Command, args []string) error {
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
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	var created, subCreated, noteCreated int
	for i := 0; i < seedEvents; i++ {
		category := seedCategories[rng.Intn(len(seedCategories))]
		occurredAt := now.AddDate(0, 0, -rng.Intn(seedDays)).
			Truncate(24 * time.Hour).
			Add(time.Duration(7+rng.Intn(15)) * time.Hour)

		event, err := backend.CreateEvent(ctx, owner, types.EventDraft{
			Title:              fmt.Sprintf("%s event #%d", category, i+1),
			Description:        fmt.Sprintf("Generated %s event for demo purposes.", category),
			Category:           category,
			Perception:         seedPerceptions[rng.Intn(len(seedPerceptions))],
			Intensity:          3 + rng.Intn(7),
			Importance:         3 + rng.Intn(7),
			Emotions:           pickSome(rng, seedEmotions, 4),
			PhysicalSensations: pickSome(rng, seedSensations, 3),
			Tags:               pickSome(rng, seedTags, 4),
			OccurredAt:         occurredAt,
		})
		if err != nil {
			return fmt.Errorf("seed event: %w", err)
		}
		created++

		for j := 0; j < 1+rng.Intn(3); j++ {
			_, err := backend.CreateEvent(ctx, owner, types.EventDraft{
				Title:         fmt.Sprintf("%s follow-up #%d", event.Title, j+1),
				Category:      category,
				Perception:    seedPerceptions[rng.Intn(len(seedPerceptions))],
				Intensity:     2 + rng.Intn(8),
				Importance:    2 + rng.Intn(8),
				Emotions:      pickSome(rng, seedEmotions, 3),
				Tags:          pickSome(rng, seedTags, 3),
				ParentEventID: event.EventID,
				OccurredAt:    occurredAt.Add(time.Duration(1+rng.Intn(12)) * time.Hour),
			})
			if err != nil {
				return fmt.Errorf("seed sub-event: %w", err)
			}
			subCreated++
		}

		for k := 0; k < 1+rng.Intn(2); k++ {
			_, err := backend.CreateNote(ctx, event.EventID, types.NoteDraft{
				Title:       fmt.Sprintf("Note #%d for %s", k+1, event.Title),
				Importance:  1 + rng.Intn(10),
				Status:      seedStatuses[rng.Intn(len(seedStatuses))],
				Facts:       "Generated fact block.",
				Assumptions: "Generated assumptions.",
				Patterns:    "Generated patterns.",
				Actions:     "Generated action plan.",
				Perception:  seedPerceptions[rng.Intn(len(seedPerceptions))],
			})
			if err != nil {
				return fmt.Errorf("seed note: %w", err)
			}
			noteCreated++
		}
	}

	fmt.Printf("Seeded %d events, %d sub-events, %d notes\n", created, subCreated, noteCreated)
	return nil
}

// pickSome returns 1..max random distinct elements of pool.
func pickSome(rng *rand.Rand, pool []string, max int) []string {
	if max > len(pool) {
		max = len(pool)
	}
	count := 1 + rng.Intn(max)
	idx := rng.Perm(len(pool))[:count]
	out := make([]string, 0, count)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
