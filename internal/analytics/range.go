package analytics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// Symbolic range names.
const (
	RangeMonth = "month"
	RangeAll   = "all"
)

// Range is a symbolic time window used to filter events before
// aggregation: a positive day count ("7", "30"), the current calendar
// month ("month"), or everything ("all").
type Range struct {
	days  int
	month bool
	all   bool
}

// ParseRange parses a symbolic range string. Day counts must be
// positive integers.
func ParseRange(s string) (Range, error) {
	switch s {
	case RangeMonth:
		return Range{month: true}, nil
	case RangeAll:
		return Range{all: true}, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 {
		return Range{}, fmt.Errorf("%w: range %q", types.ErrInvalidInput, s)
	}
	return Range{days: days}, nil
}

// Cutoff computes the lower-bound timestamp for the window, relative
// to now. A day count of N covers today and the N-1 preceding days,
// truncated to local midnight. "month" starts at the first day of the
// current month. "all" returns the zero time (no lower bound).
func (r Range) Cutoff(now time.Time) time.Time {
	switch {
	case r.all:
		return time.Time{}
	case r.month:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		day := now.AddDate(0, 0, -(r.days - 1))
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	}
}

// String renders the range in its symbolic form.
func (r Range) String() string {
	switch {
	case r.all:
		return RangeAll
	case r.month:
		return RangeMonth
	default:
		return strconv.Itoa(r.days)
	}
}

// FilterEvents returns the events whose occurrence time is at or
// after cutoff. A zero cutoff returns the input unchanged.
func FilterEvents(events []types.Event, cutoff time.Time) []types.Event {
	if cutoff.IsZero() {
		return events
	}
	out := make([]types.Event, 0, len(events))
	for _, ev := range events {
		if !ev.OccurredAt.Before(cutoff) {
			out = append(out, ev)
		}
	}
	return out
}
