package analytics

import (
	"sort"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// EmotionCount pairs an emotion label with its occurrence count.
type EmotionCount struct {
	Emotion string
	Count   int
}

// EmotionFrequency counts how many events carry each distinct emotion
// label, sorted descending by count. Ties keep first-encountered
// order, so the head of the result is the single most-common emotion.
// An event contributes each of its distinct emotions once.
func EmotionFrequency(events []types.Event) []EmotionCount {
	counts := make(map[string]int)
	var order []string

	for _, ev := range events {
		// Stored emotions are already deduped sets; dedupe again so
		// rows written out-of-band cannot double-count.
		seen := make(map[string]bool, len(ev.Emotions))
		for _, emotion := range ev.Emotions {
			if emotion == "" || seen[emotion] {
				continue
			}
			seen[emotion] = true
			if counts[emotion] == 0 {
				order = append(order, emotion)
			}
			counts[emotion]++
		}
	}

	out := make([]EmotionCount, 0, len(order))
	for _, emotion := range order {
		out = append(out, EmotionCount{Emotion: emotion, Count: counts[emotion]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
