// Calendar command prints per-day event counts for a month.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lifelog/internal/analytics"
	"github.com/mesh-intelligence/lifelog/pkg/types"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Per-day event counts for a calendar month",
	Long: `Calendar counts the owner's events per day of the given month.
Only occurrences inside the month are counted. Each day also carries
an activity level from 0 (no events) to 4 (ten or more).`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "month as YYYY-MM (default: current month)")
}

// calendarDay is one JSON row of the calendar command.
type calendarDay struct {
	Day   int `json:"day"`
	Count int `json:"count"`
	Level int `json:"level"`
}

func runCalendar(cmd *cobra.Command, args []string) error {
	owner, err := resolveOwner()
	if err != nil {
		return err
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	if calendarMonth != "" {
		parsed, err := time.Parse("2006-01", calendarMonth)
		if err != nil {
			return fmt.Errorf("%w: month %q", types.ErrInvalidDate, calendarMonth)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	// Fetch the whole owner set; CalendarCounts keeps only in-month
	// occurrences.
	events, err := backend.ListEvents(cmd.Context(), owner)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	counts := analytics.CalendarCounts(events, year, month)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	if flagJSON {
		out := make([]calendarDay, 0, daysInMonth)
		for day := 1; day <= daysInMonth; day++ {
			out = append(out, calendarDay{
				Day:   day,
				Count: counts[day],
				Level: analytics.ActivityLevel(counts[day]),
			})
		}
		return printJSON(out)
	}

	fmt.Printf("%s %d\n", month, year)
	for day := 1; day <= daysInMonth; day++ {
		if counts[day] == 0 {
			continue
		}
		fmt.Printf("%2d: %d event(s), level %d\n", day, counts[day], analytics.ActivityLevel(counts[day]))
	}
	return nil
}
