package analytics

import (
	"time"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// CalendarCounts counts events per calendar day of the given month,
// keyed by day of month. Only occurrences inside the month are
// counted; adjacent-month days shown as grid padding in a 6-week
// calendar view carry no counts.
func CalendarCounts(events []types.Event, year int, month time.Month) map[int]int {
	counts := make(map[int]int)
	for _, ev := range events {
		t := ev.OccurredAt.UTC()
		if t.Year() != year || t.Month() != month {
			continue
		}
		counts[t.Day()]++
	}
	return counts
}

// ActivityLevel buckets a day's event count into a display intensity
// level: 0 none, 1 for 1-2 events, 2 for 3-5, 3 for 6-9, 4 for 10+.
func ActivityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}
