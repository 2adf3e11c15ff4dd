package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeTags canonicalizes a tag list: each element is trimmed and
// lower-cased, empty results are dropped, and duplicates are removed
// preserving first-seen order. Never fails; nil input yields an empty
// slice.
func NormalizeTags(input []string) []string {
	out := make([]string, 0, len(input))
	seen := make(map[string]bool, len(input))
	for _, raw := range input {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// NormalizeImages canonicalizes image reference strings: trims, drops
// empties, and dedupes preserving first-seen order. Case is preserved
// because references may be case-sensitive paths or URLs.
func NormalizeImages(input []string) []string {
	return NormalizeLabels(input)
}

// NormalizeLabels trims, drops empties, and dedupes free-text labels
// (emotions, physical sensations) preserving first-seen order and case.
func NormalizeLabels(input []string) []string {
	out := make([]string, 0, len(input))
	seen := make(map[string]bool, len(input))
	for _, raw := range input {
		label := strings.TrimSpace(raw)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

// Timestamp layouts accepted by ParseTimestamp, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// epochMillisThreshold separates epoch-second from epoch-millisecond
// input. Values at or above it are read as milliseconds; the boundary
// corresponds to the year 5138 in seconds.
const epochMillisThreshold = 1e11

// ParseTimestamp parses a loosely-typed timestamp value: an RFC3339
// string, a bare date or datetime, or a numeric epoch in seconds or
// milliseconds. Returns ErrInvalidDate when the input does not resolve
// to a valid calendar instant. Layouts without a zone are read in
// local time, matching how users enter event times.
func ParseTimestamp(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		if epoch >= epochMillisThreshold {
			return time.UnixMilli(epoch), nil
		}
		return time.Unix(epoch, 0), nil
	}

	for _, layout := range timestampLayouts {
		loc := time.Local
		if layout == time.RFC3339 {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
}
