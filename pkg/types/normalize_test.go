package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "lower-cases trims and dedupes",
			input: []string{"Work", "work", " Work "},
			want:  []string{"work"},
		},
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
		{
			name:  "drops empty results",
			input: []string{"", "  ", "gym"},
			want:  []string{"gym"},
		},
		{
			name:  "preserves first-seen order",
			input: []string{"Setback", "progress", "SETBACK", "coping"},
			want:  []string{"setback", "progress", "coping"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.input))
		})
	}
}

func TestNormalizeLabels(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "preserves case",
			input: []string{"Anxious", "anxious"},
			want:  []string{"Anxious", "anxious"},
		},
		{
			name:  "trims and drops empties",
			input: []string{" Proud ", "", "  "},
			want:  []string{"Proud"},
		},
		{
			name:  "dedupes after trim",
			input: []string{"Calm", " Calm"},
			want:  []string{"Calm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLabels(tt.input))
		})
	}
}

func TestNormalizeImages(t *testing.T) {
	got := NormalizeImages([]string{"/up/a.png", "/up/a.png", "", "/up/B.png"})
	assert.Equal(t, []string{"/up/a.png", "/up/B.png"}, got)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2026-08-30T07:15:00Z",
			want:  time.Date(2026, 8, 30, 7, 15, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			input: "2026-08-30T09:15:00+02:00",
			want:  time.Date(2026, 8, 30, 7, 15, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2026-08-30",
			want:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "datetime without zone",
			input: "2026-08-30 07:15:00",
			want:  time.Date(2026, 8, 30, 7, 15, 0, 0, time.Local),
		},
		{
			name:  "epoch seconds",
			input: "1756536900",
			want:  time.Unix(1756536900, 0),
		},
		{
			name:  "epoch milliseconds",
			input: "1756536900000",
			want:  time.UnixMilli(1756536900000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTimestampRejects(t *testing.T) {
	for _, input := range []string{"", "  ", "not-a-date", "2026-13-40", "31/12/2026"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input)
			assert.True(t, errors.Is(err, ErrInvalidDate), "want ErrInvalidDate, got %v", err)
		})
	}
}
