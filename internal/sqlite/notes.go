package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// noteColumns is the SELECT list shared by every note query, in
// scanNote order.
const noteColumns = `note_id, event_id, title, description, perception, importance,
	status, facts, assumptions, patterns, actions, images, created_at, updated_at`

// CreateNote attaches a new analytic note to an existing event.
// Defaults: status Open, perception Neutral, importance clamped.
func (b *Backend) CreateNote(ctx context.Context, eventID string, draft types.NoteDraft) (*types.Note, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	note, err := noteFromDraft(eventID, draft)
	if err != nil {
		return nil, err
	}

	// The parent event must exist; the foreign key enforces it too,
	// but the explicit check reports ErrNotFound instead of a
	// constraint failure.
	var exists int
	err = db.QueryRowContext(ctx, "SELECT 1 FROM events WHERE event_id = ?", eventID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %s: %w", eventID, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("checking event existence: %w", err)
	}

	images, err := marshalStrings(note.Images)
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO notes (
		note_id, event_id, title, description, perception, importance,
		status, facts, assumptions, patterns, actions, images, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		note.NoteID, note.EventID, note.Title, note.Description,
		string(note.Perception), note.Importance, string(note.Status),
		note.Facts, note.Assumptions, note.Patterns, note.Actions, images,
		formatTime(note.CreatedAt), formatTime(note.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("persisting note: %w", err)
	}

	return note, nil
}

// UpdateNote applies a partial update to an existing note. Fields
// absent from the patch keep their stored values.
func (b *Backend) UpdateNote(ctx context.Context, id string, patch types.NotePatch) (*types.Note, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	note, err := getNoteRow(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := applyNotePatch(note, patch); err != nil {
		return nil, err
	}
	note.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	images, err := marshalStrings(note.Images)
	if err != nil {
		return nil, fmt.Errorf("encoding images: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE notes SET
		title = ?, description = ?, perception = ?, importance = ?, status = ?,
		facts = ?, assumptions = ?, patterns = ?, actions = ?, images = ?, updated_at = ?
	WHERE note_id = ?`,
		note.Title, note.Description, string(note.Perception), note.Importance,
		string(note.Status), note.Facts, note.Assumptions, note.Patterns,
		note.Actions, images, formatTime(note.UpdatedAt), note.NoteID,
	)
	if err != nil {
		return nil, fmt.Errorf("persisting note update: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing note update: %w", err)
	}

	return note, nil
}

// DeleteNote removes a note, independently of its siblings.
func (b *Backend) DeleteNote(ctx context.Context, id string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM notes WHERE note_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("note %s: %w", id, types.ErrNotFound)
	}
	return nil
}

// GetNote loads a single note by id.
func (b *Backend) GetNote(ctx context.Context, id string) (*types.Note, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	return getNoteRow(ctx, db, id)
}

// ListNotes returns the notes attached to an event, ordered by
// creation time ascending.
func (b *Backend) ListNotes(ctx context.Context, eventID string) ([]types.Note, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+noteColumns+" FROM notes WHERE event_id = ? ORDER BY created_at ASC, note_id ASC",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []types.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating note: %w", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

// noteFromDraft builds a new Note from caller-supplied fields,
// applying defaults, clamping, and normalization.
func noteFromDraft(eventID string, draft types.NoteDraft) (*types.Note, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", types.ErrInvalidInput)
	}

	perception := draft.Perception
	if perception == "" {
		perception = types.PerceptionNeutral
	}
	if !perception.Valid() {
		return nil, fmt.Errorf("%w: perception %q", types.ErrInvalidInput, draft.Perception)
	}

	status := draft.Status
	if status == "" {
		status = types.NoteStatusOpen
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", types.ErrInvalidInput, draft.Status)
	}

	now := time.Now().UTC().Truncate(time.Second)
	return &types.Note{
		NoteID:      generateUUID(),
		EventID:     eventID,
		Title:       draft.Title,
		Description: draft.Description,
		Perception:  perception,
		Importance:  types.ClampScale(draft.Importance),
		Status:      status,
		Facts:       draft.Facts,
		Assumptions: draft.Assumptions,
		Patterns:    draft.Patterns,
		Actions:     draft.Actions,
		Images:      types.NormalizeImages(draft.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// applyNotePatch merges a partial update over the stored note.
func applyNotePatch(note *types.Note, patch types.NotePatch) error {
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Description != nil {
		note.Description = *patch.Description
	}
	if patch.Perception != nil {
		if !patch.Perception.Valid() {
			return fmt.Errorf("%w: perception %q", types.ErrInvalidInput, *patch.Perception)
		}
		note.Perception = *patch.Perception
	}
	if patch.Importance != nil {
		note.Importance = types.ClampScale(*patch.Importance)
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return fmt.Errorf("%w: status %q", types.ErrInvalidInput, *patch.Status)
		}
		note.Status = *patch.Status
	}
	if patch.Facts != nil {
		note.Facts = *patch.Facts
	}
	if patch.Assumptions != nil {
		note.Assumptions = *patch.Assumptions
	}
	if patch.Patterns != nil {
		note.Patterns = *patch.Patterns
	}
	if patch.Actions != nil {
		note.Actions = *patch.Actions
	}
	if patch.Images != nil {
		note.Images = types.NormalizeImages(*patch.Images)
	}
	return nil
}

// getNoteRow loads one note by id.
func getNoteRow(ctx context.Context, q querier, id string) (*types.Note, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: note id is required", types.ErrInvalidInput)
	}

	row := q.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM notes WHERE note_id = ?", id)
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %s: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting note %s: %w", id, err)
	}
	return note, nil
}

// scanNote hydrates one row in noteColumns order.
func scanNote(s scanner) (*types.Note, error) {
	var note types.Note
	var perception, status, images string
	var createdAt, updatedAt string

	err := s.Scan(
		&note.NoteID, &note.EventID, &note.Title, &note.Description,
		&perception, &note.Importance, &status,
		&note.Facts, &note.Assumptions, &note.Patterns, &note.Actions,
		&images, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	note.Perception = types.Perception(perception)
	note.Status = types.NoteStatus(status)

	if note.Images, err = unmarshalStrings(images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}
	if note.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("decoding created_at: %w", err)
	}
	if note.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("decoding updated_at: %w", err)
	}

	return &note, nil
}
