// Summary command prints the daily series and derived statistics.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/internal/analytics"
)

var summaryRange string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Daily intensity/importance averages with overall statistics",
	Long: `Summary groups the owner's events in the given range by calendar day
and prints per-day counts and average intensity/importance, followed
by the count-weighted overall averages and the volatility of the
daily intensity series.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryRange, "range", "30", `time window: day count, "month", or "all"`)
}

// summaryOutput is the JSON shape of the summary command.
type summaryOutput struct {
	Days          []analytics.DaySummary `json:"days"`
	AvgIntensity  *float64               `json:"avg_intensity"`
	AvgImportance *float64               `json:"avg_importance"`
	Volatility    *float64               `json:"volatility"`
	Label         string                 `json:"volatility_label,omitempty"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	window, err := analytics.ParseRange(summaryRange)
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

	days := analytics.DailySummary(events)

	out := summaryOutput{Days: days}
	if avgIntensity, avgImportance, ok := analytics.OverallAverages(days); ok {
		out.AvgIntensity = &avgIntensity
		out.AvgImportance = &avgImportance
	}
	if mad, label, ok := analytics.Volatility(days); ok {
		out.Volatility = &mad
		out.Label = label
	}

	if flagJSON {
		return printJSON(out)
	}

	if len(days) == 0 {
		fmt.Println("No events in range.")
		return nil
	}
	fmt.Printf("%-12s %6s %10s %11s\n", "Day", "Count", "Intensity", "Importance")
	for _, d := range days {
		fmt.Printf("%-12s %6d %10.2f %11.2f\n", d.Date, d.Count, d.AvgIntensity, d.AvgImportance)
	}
	fmt.Println()
	fmt.Printf("Overall: intensity %.2f, importance %.2f\n", *out.AvgIntensity, *out.AvgImportance)
	if out.Volatility != nil {
		fmt.Printf("Volatility: %.2f (%s)\n", *out.Volatility, out.Label)
	}
	return nil
}
