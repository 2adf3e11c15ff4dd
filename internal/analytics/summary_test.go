package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

func eventAt(day string, hour, intensity, importance int) types.Event {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return types.Event{
		OccurredAt: d.Add(time.Duration(hour) * time.Hour),
		Intensity:  intensity,
		Importance: importance,
	}
}

func TestDailySummary(t *testing.T) {
	events := []types.Event{
		eventAt("2026-09-02", 9, 7, 4),
		eventAt("2026-09-01", 8, 5, 6),
		eventAt("2026-09-01", 20, 6, 9),
		eventAt("2026-09-01", 12, 5, 5),
	}

	days := DailySummary(events)
	require.Len(t, days, 2)

	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, 3, days[0].Count)
	assert.InDelta(t, 5.33, days[0].AvgIntensity, 1e-9)
	assert.InDelta(t, 6.67, days[0].AvgImportance, 1e-9)

	assert.Equal(t, "2026-09-02", days[1].Date)
	assert.Equal(t, 1, days[1].Count)
	assert.InDelta(t, 7, days[1].AvgIntensity, 1e-9)
	assert.InDelta(t, 4, days[1].AvgImportance, 1e-9)
}

func TestDailySummaryGroupsByUTCDay(t *testing.T) {
	// 23:30 UTC and 01:30 UTC the next day land in different buckets
	// regardless of the wall-clock zone they were recorded in.
	zone := time.FixedZone("UTC+2", 2*3600)
	events := []types.Event{
		{OccurredAt: time.Date(2026, 9, 2, 1, 30, 0, 0, zone), Intensity: 4, Importance: 4}, // 2026-09-01 UTC
		{OccurredAt: time.Date(2026, 9, 2, 5, 0, 0, 0, zone), Intensity: 8, Importance: 8},  // 2026-09-02 UTC
	}

	days := DailySummary(events)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, "2026-09-02", days[1].Date)
}

func TestDailySummaryEmpty(t *testing.T) {
	assert.Empty(t, DailySummary(nil))
}

func TestOverallAverages(t *testing.T) {
	// Two days at avg 4, one day at avg 10: the weighted mean is
	// (2*4 + 1*10) / 3 = 6, not the mean of the daily means (7).
	days := []DaySummary{
		{Date: "2026-09-01", Count: 2, AvgIntensity: 4, AvgImportance: 4},
		{Date: "2026-09-02", Count: 1, AvgIntensity: 10, AvgImportance: 10},
	}

	intensity, importance, ok := OverallAverages(days)
	require.True(t, ok)
	assert.InDelta(t, 6.00, intensity, 1e-9)
	assert.InDelta(t, 6.00, importance, 1e-9)
}

func TestOverallAveragesEmpty(t *testing.T) {
	_, _, ok := OverallAverages(nil)
	assert.False(t, ok)
}

func TestVolatility(t *testing.T) {
	tests := []struct {
		name      string
		daily     []float64
		wantMAD   float64
		wantLabel string
	}{
		{
			name:      "flat series is low",
			daily:     []float64{5, 5, 5},
			wantMAD:   0,
			wantLabel: VolatilityLow,
		},
		{
			name:      "small swings are medium",
			daily:     []float64{4, 6, 4, 6},
			wantMAD:   1,
			wantLabel: VolatilityMedium,
		},
		{
			// mean of [3,5,9] is 5.67; deviations 2.67+0.67+3.33 over 3 days.
			name:      "wide swings are high",
			daily:     []float64{3, 5, 9},
			wantMAD:   2.22,
			wantLabel: VolatilityHigh,
		},
		{
			name:      "single day is low",
			daily:     []float64{8},
			wantMAD:   0,
			wantLabel: VolatilityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := make([]DaySummary, len(tt.daily))
			for i, avg := range tt.daily {
				days[i] = DaySummary{Count: 1, AvgIntensity: avg}
			}
			mad, label, ok := Volatility(days)
			require.True(t, ok)
			assert.InDelta(t, tt.wantMAD, mad, 1e-9)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestVolatilityEmpty(t *testing.T) {
	_, _, ok := Volatility(nil)
	assert.False(t, ok)
}
