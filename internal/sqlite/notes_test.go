package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

func TestCreateNoteDefaults(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	ev := mustCreateEvent(t, b, types.EventDraft{Title: "argument at work"})

	note, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{
		Title: "what actually happened",
		Facts: "meeting ran 40 minutes over",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, note.NoteID)
	assert.Equal(t, ev.EventID, note.EventID)
	assert.Equal(t, types.NoteStatusOpen, note.Status)
	assert.Equal(t, types.PerceptionNeutral, note.Perception)
	assert.Equal(t, types.ScaleMin, note.Importance)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	got, err := b.GetNote(ctx, note.NoteID)
	require.NoError(t, err)
	assert.Equal(t, note, got)
}

func TestCreateNoteRequiresEvent(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.CreateNote(context.Background(), "no-such-event", types.NoteDraft{Title: "x"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCreateNoteRejects(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	ev := mustCreateEvent(t, b, types.EventDraft{Title: "event"})

	_, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{Perception: "meh"})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = b.CreateNote(ctx, ev.EventID, types.NoteDraft{Status: "Parked"})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestUpdateNotePartial(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	ev := mustCreateEvent(t, b, types.EventDraft{Title: "event"})
	note, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{
		Title:       "pattern check",
		Assumptions: "this always happens on Mondays",
		Images:      []string{"chart.png"},
	})
	require.NoError(t, err)

	status := types.NoteStatusResolved
	got, err := b.UpdateNote(ctx, note.NoteID, types.NotePatch{
		Status:   &status,
		Patterns: stringPtr(t, "third occurrence this month"),
	})
	require.NoError(t, err)

	assert.Equal(t, types.NoteStatusResolved, got.Status)
	assert.Equal(t, "third occurrence this month", got.Patterns)
	assert.Equal(t, "pattern check", got.Title, "omitted fields keep stored values")
	assert.Equal(t, "this always happens on Mondays", got.Assumptions)
	assert.Equal(t, []string{"chart.png"}, got.Images)
}

func TestUpdateNoteClearsImages(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	ev := mustCreateEvent(t, b, types.EventDraft{Title: "event"})
	note, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{Images: []string{"a.png"}})
	require.NoError(t, err)

	empty := []string{}
	got, err := b.UpdateNote(ctx, note.NoteID, types.NotePatch{Images: &empty})
	require.NoError(t, err)
	assert.Empty(t, got.Images)
}

func TestUpdateNoteMissing(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.UpdateNote(context.Background(), "no-such-note", types.NotePatch{})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteNote(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	ev := mustCreateEvent(t, b, types.EventDraft{Title: "event"})
	keep, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{Title: "keep"})
	require.NoError(t, err)
	drop, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{Title: "drop"})
	require.NoError(t, err)

	require.NoError(t, b.DeleteNote(ctx, drop.NoteID))

	_, err = b.GetNote(ctx, drop.NoteID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Siblings and the event are untouched.
	_, err = b.GetNote(ctx, keep.NoteID)
	assert.NoError(t, err)
	_, err = b.GetEvent(ctx, testOwner, ev.EventID)
	assert.NoError(t, err)

	assert.ErrorIs(t, b.DeleteNote(ctx, drop.NoteID), types.ErrNotFound)
}

func TestListNotes(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	ev := mustCreateEvent(t, b, types.EventDraft{Title: "event"})
	other := mustCreateEvent(t, b, types.EventDraft{Title: "other"})

	first, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{Title: "first"})
	require.NoError(t, err)
	second, err := b.CreateNote(ctx, ev.EventID, types.NoteDraft{Title: "second"})
	require.NoError(t, err)
	_, err = b.CreateNote(ctx, other.EventID, types.NoteDraft{Title: "elsewhere"})
	require.NoError(t, err)

	notes, err := b.ListNotes(ctx, ev.EventID)
	require.NoError(t, err)
	require.Len(t, notes, 2, "listing is scoped to the event")
	assert.Equal(t, first.NoteID, notes[0].NoteID)
	assert.Equal(t, second.NoteID, notes[1].NoteID)

	empty, err := b.ListNotes(ctx, "no-such-event")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
