// Emotions command prints the emotion frequency table.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/internal/analytics"
)

var emotionsRange string

var emotionsCmd = &cobra.Command{
	Use:   "emotions",
	Short: "Emotion frequency over a time window",
	Long: `Emotions counts how many events in the range carry each distinct
emotion label, most frequent first. Each event contributes a given
emotion at most once.`,
	Args: cobra.NoArgs,
	RunE: runEmotions,
}

func init() {
	emotionsCmd.Flags().StringVar(&emotionsRange, "range", "30", `time window: day count, "month", or "all"`)
}

func runEmotions(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	window, err := analytics.ParseRange(emotionsRange)
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

	frequency := analytics.EmotionFrequency(events)

	if flagJSON {
		return printJSON(frequency)
	}

	if len(frequency) == 0 {
		fmt.Println("No emotions recorded in range.")
		return nil
	}
	for _, entry := range frequency {
		fmt.Printf("%4d  %s\n", entry.Count, entry.Emotion)
	}
	return nil
}
