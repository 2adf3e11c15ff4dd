package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// DaySummary holds the per-day aggregates of one calendar day.
type DaySummary struct {
	Date          string  // UTC calendar day, YYYY-MM-DD.
	Count         int
	AvgIntensity  float64 // Mean intensity, rounded to 2 decimals.
	AvgImportance float64 // Mean importance, rounded to 2 decimals.
}

// dayKey renders the UTC calendar day of a timestamp.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// DailySummary groups events by the UTC calendar day of occurrence
// and computes per-day count and mean intensity/importance, emitted
// ascending by day.
func DailySummary(events []types.Event) []DaySummary {
	type acc struct {
		count         int
		sumIntensity  int
		sumImportance int
	}
	byDay := make(map[string]*acc)
	for _, ev := range events {
		key := dayKey(ev.OccurredAt)
		a := byDay[key]
		if a == nil {
			a = &acc{}
			byDay[key] = a
		}
		a.count++
		a.sumIntensity += ev.Intensity
		a.sumImportance += ev.Importance
	}

	days := make([]DaySummary, 0, len(byDay))
	for key, a := range byDay {
		days = append(days, DaySummary{
			Date:          key,
			Count:         a.count,
			AvgIntensity:  round2(float64(a.sumIntensity) / float64(a.count)),
			AvgImportance: round2(float64(a.sumImportance) / float64(a.count)),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// OverallAverages computes the count-weighted mean intensity and
// importance across the daily series, rounded to 2 decimals. It is a
// weighted mean, not a mean of the daily means: a day with more events
// carries proportionally more weight. Reports ok=false when the total
// count is zero.
func OverallAverages(days []DaySummary) (avgIntensity, avgImportance float64, ok bool) {
	var total int
	var weightedIntensity, weightedImportance float64
	for _, d := range days {
		total += d.Count
		weightedIntensity += float64(d.Count) * d.AvgIntensity
		weightedImportance += float64(d.Count) * d.AvgImportance
	}
	if total == 0 {
		return 0, 0, false
	}
	return round2(weightedIntensity / float64(total)), round2(weightedImportance / float64(total)), true
}

// Volatility labels.
const (
	VolatilityLow    = "low"
	VolatilityMedium = "medium"
	VolatilityHigh   = "high"
)

// Volatility computes the mean absolute deviation of the daily average
// intensities around their own mean, rounded to 2 decimals, and maps
// it to a qualitative label: <1 low, <2 medium, otherwise high.
// Reports ok=false when the series is empty.
func Volatility(days []DaySummary) (mad float64, label string, ok bool) {
	if len(days) == 0 {
		return 0, "", false
	}

	var sum float64
	for _, d := range days {
		sum += d.AvgIntensity
	}
	mean := sum / float64(len(days))

	var dev float64
	for _, d := range days {
		dev += math.Abs(d.AvgIntensity - mean)
	}
	mad = round2(dev / float64(len(days)))

	switch {
	case mad < 1:
		label = VolatilityLow
	case mad < 2:
		label = VolatilityMedium
	default:
		label = VolatilityHigh
	}
	return mad, label, true
}
