package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

func TestCalendarCounts(t *testing.T) {
	events := []types.Event{
		{OccurredAt: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)},
		{OccurredAt: time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC)},
		{OccurredAt: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)},
		{OccurredAt: time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)}, // previous month
		{OccurredAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},  // next month
		{OccurredAt: time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)}, // same month, other year
	}

	counts := CalendarCounts(events, 2026, time.September)
	assert.Equal(t, map[int]int{1: 2, 15: 1}, counts)
}

func TestCalendarCountsUsesUTCDay(t *testing.T) {
	// 01:00 local on Oct 1 in UTC+2 is still 23:00 UTC on Sep 30.
	zone := time.FixedZone("UTC+2", 2*3600)
	events := []types.Event{
		{OccurredAt: time.Date(2026, 10, 1, 1, 0, 0, 0, zone)},
	}

	counts := CalendarCounts(events, 2026, time.September)
	assert.Equal(t, map[int]int{30: 1}, counts)
	assert.Empty(t, CalendarCounts(events, 2026, time.October))
}

func TestActivityLevel(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 2},
		{6, 3},
		{9, 3},
		{10, 4},
		{25, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ActivityLevel(tt.count), "count %d", tt.count)
	}
}
