package analytics

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// StructuralFilter narrows a timeline to root events, sub-events, or
// everything.
type StructuralFilter string

// StructuralFilter values.
const (
	FilterAll   StructuralFilter = "all"
	FilterRoots StructuralFilter = "roots"
	FilterSubs  StructuralFilter = "subs"
)

// ParseStructuralFilter parses a filter name. The empty string means
// FilterAll.
func ParseStructuralFilter(s string) (StructuralFilter, error) {
	switch StructuralFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterRoots:
		return FilterRoots, nil
	case FilterSubs:
		return FilterSubs, nil
	}
	return "", fmt.Errorf("%w: filter %q", types.ErrInvalidInput, s)
}

// matches reports whether the event passes the filter.
func (f StructuralFilter) matches(ev *types.Event) bool {
	switch f {
	case FilterRoots:
		return ev.IsRoot()
	case FilterSubs:
		return !ev.IsRoot()
	default:
		return true
	}
}

// TimelineDay holds one calendar day's events, most recent first.
type TimelineDay struct {
	Date   string // UTC calendar day, YYYY-MM-DD.
	Events []types.Event
}

// Timeline groups events by UTC calendar day. Days are emitted newest
// first, and events within a day are sorted descending by occurrence
// time, so the head of the structure is always the most recent entry.
func Timeline(events []types.Event, filter StructuralFilter) []TimelineDay {
	byDay := make(map[string][]types.Event)
	for _, ev := range events {
		if !filter.matches(&ev) {
			continue
		}
		key := dayKey(ev.OccurredAt)
		byDay[key] = append(byDay[key], ev)
	}

	days := make([]TimelineDay, 0, len(byDay))
	for key, evs := range byDay {
		sort.SliceStable(evs, func(i, j int) bool {
			return evs[i].OccurredAt.After(evs[j].OccurredAt)
		})
		days = append(days, TimelineDay{Date: key, Events: evs})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	return days
}
