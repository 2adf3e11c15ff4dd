package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

func TestEmotionFrequency(t *testing.T) {
	events := []types.Event{
		{Emotions: []string{"joy", "calm"}},
		{Emotions: []string{"joy"}},
		{Emotions: []string{"calm", "calm"}}, // duplicate within one event counts once
	}

	got := EmotionFrequency(events)
	require.Len(t, got, 2)

	// Both end at 2; ties keep first-encountered order.
	assert.Equal(t, EmotionCount{Emotion: "joy", Count: 2}, got[0])
	assert.Equal(t, EmotionCount{Emotion: "calm", Count: 2}, got[1])
}

func TestEmotionFrequencySortsDescending(t *testing.T) {
	events := []types.Event{
		{Emotions: []string{"anger"}},
		{Emotions: []string{"joy", "anger"}},
		{Emotions: []string{"joy", "fear"}},
		{Emotions: []string{"joy"}},
	}

	got := EmotionFrequency(events)
	require.Len(t, got, 3)
	assert.Equal(t, "joy", got[0].Emotion)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, "anger", got[1].Emotion)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, "fear", got[2].Emotion)
	assert.Equal(t, 1, got[2].Count)
}

func TestEmotionFrequencyEmpty(t *testing.T) {
	assert.Empty(t, EmotionFrequency(nil))
	assert.Empty(t, EmotionFrequency([]types.Event{{}, {Emotions: []string{""}}}))
}
