package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// eventColumns is the SELECT list shared by every event query, in
// scanEvent order.
const eventColumns = `event_id, owner_id, title, description, category, perception,
	verification_status, intensity, importance, emotions, physical_sensations,
	tags, images, parent_event_id, occurred_at, created_at, updated_at`

// CreateEvent validates and normalizes the draft, runs the hierarchy
// guard when a parent is supplied, and persists the new event. The
// guard and the insert share one transaction so a concurrent write
// cannot slip a cycle between check and commit.
func (b *Backend) CreateEvent(ctx context.Context, ownerID string, draft types.EventDraft) (*types.Event, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	ev, err := eventFromDraft(ownerID, draft)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if ev.ParentEventID != "" {
		if err := checkParent(ctx, tx, ownerID, ev.EventID, ev.ParentEventID); err != nil {
			return nil, err
		}
	}

	if err := insertEvent(ctx, tx, ev); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing event: %w", err)
	}

	return ev, nil
}

// UpdateEvent loads the stored event, verifies ownership, merges the
// patch over it (omitted fields keep their stored values), re-runs the
// hierarchy guard if the patch carries a parent reference, and writes
// the result. Load, guard, and write share one transaction.
func (b *Backend) UpdateEvent(ctx context.Context, ownerID, id string, patch types.EventPatch) (*types.Event, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	ev, err := getEventRow(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if ev.OwnerID != ownerID {
		return nil, fmt.Errorf("event %s: %w", id, types.ErrUnauthorized)
	}

	if err := applyEventPatch(ev, patch); err != nil {
		return nil, err
	}

	// The guard anchors self-reference checks on the record being
	// updated, not a fresh id.
	if patch.ParentEventID != nil && ev.ParentEventID != "" {
		if err := checkParent(ctx, tx, ownerID, ev.EventID, ev.ParentEventID); err != nil {
			return nil, err
		}
	}

	ev.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	if err := updateEventRow(ctx, tx, ev); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing event update: %w", err)
	}

	return ev, nil
}

// DeleteEvent removes an event after an ownership check. Notes cascade
// through the schema's foreign key; sub-events are left in place with
// a dangling parent reference, the documented orphaning policy.
func (b *Backend) DeleteEvent(ctx context.Context, ownerID, id string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var storedOwner string
	err = tx.QueryRowContext(ctx,
		"SELECT owner_id FROM events WHERE event_id = ?", id,
	).Scan(&storedOwner)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("event %s: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking event existence: %w", err)
	}
	if storedOwner != ownerID {
		return fmt.Errorf("event %s: %w", id, types.ErrUnauthorized)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM events WHERE event_id = ?", id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing event deletion: %w", err)
	}

	return nil
}

// GetEvent loads a single event after an ownership check.
func (b *Backend) GetEvent(ctx context.Context, ownerID, id string) (*types.Event, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	ev, err := getEventRow(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if ev.OwnerID != ownerID {
		return nil, fmt.Errorf("event %s: %w", id, types.ErrUnauthorized)
	}
	return ev, nil
}

// ListEvents returns all events owned by ownerID, ordered by
// occurrence time ascending.
func (b *Backend) ListEvents(ctx context.Context, ownerID string) ([]types.Event, error) {
	return b.ListEventsSince(ctx, ownerID, time.Time{})
}

// ListEventsSince returns the owner's events with occurrence time at
// or after cutoff, ordered ascending. A zero cutoff returns everything.
func (b *Backend) ListEventsSince(ctx context.Context, ownerID string, cutoff time.Time) ([]types.Event, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + eventColumns + " FROM events WHERE owner_id = ?"
	args := []any{ownerID}
	if !cutoff.IsZero() {
		query += " AND occurred_at >= ?"
		args = append(args, formatTime(cutoff))
	}
	query += " ORDER BY occurred_at ASC, event_id ASC"

	return queryEvents(ctx, db, query, args...)
}

// ListSubEvents returns the direct sub-events of parentID owned by
// ownerID, ordered by occurrence time ascending.
func (b *Backend) ListSubEvents(ctx context.Context, ownerID, parentID string) ([]types.Event, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + eventColumns + ` FROM events
		WHERE owner_id = ? AND parent_event_id = ?
		ORDER BY occurred_at ASC, event_id ASC`
	return queryEvents(ctx, db, query, ownerID, parentID)
}

// eventFromDraft builds a new Event from caller-supplied fields,
// applying defaults, clamping, and normalization.
func eventFromDraft(ownerID string, draft types.EventDraft) (*types.Event, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner id is required", types.ErrInvalidInput)
	}
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrInvalidInput)
	}

	perception := draft.Perception
	if perception == "" {
		perception = types.PerceptionNeutral
	}
	if !perception.Valid() {
		return nil, fmt.Errorf("%w: perception %q", types.ErrInvalidInput, draft.Perception)
	}

	verification := draft.VerificationStatus
	if verification == "" {
		verification = types.VerificationPending
	}
	if !verification.Valid() {
		return nil, fmt.Errorf("%w: verification status %q", types.ErrInvalidInput, draft.VerificationStatus)
	}

	now := time.Now().UTC().Truncate(time.Second)
	occurredAt := draft.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}

	return &types.Event{
		EventID:            generateUUID(),
		OwnerID:            ownerID,
		Title:              title,
		Description:        draft.Description,
		Category:           strings.TrimSpace(draft.Category),
		Perception:         perception,
		VerificationStatus: verification,
		Intensity:          types.ClampScale(draft.Intensity),
		Importance:         types.ClampScale(draft.Importance),
		Emotions:           types.NormalizeLabels(draft.Emotions),
		PhysicalSensations: types.NormalizeLabels(draft.PhysicalSensations),
		Tags:               types.NormalizeTags(draft.Tags),
		Images:             types.NormalizeImages(draft.Images),
		ParentEventID:      draft.ParentEventID,
		OccurredAt:         occurredAt.UTC().Truncate(time.Second),
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// applyEventPatch merges a partial update over the stored event.
// Nil fields preserve stored values; non-nil empty collections clear.
func applyEventPatch(ev *types.Event, patch types.EventPatch) error {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return fmt.Errorf("%w: title is required", types.ErrInvalidInput)
		}
		ev.Title = title
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.Category != nil {
		ev.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Perception != nil {
		if !patch.Perception.Valid() {
			return fmt.Errorf("%w: perception %q", types.ErrInvalidInput, *patch.Perception)
		}
		ev.Perception = *patch.Perception
	}
	if patch.VerificationStatus != nil {
		if !patch.VerificationStatus.Valid() {
			return fmt.Errorf("%w: verification status %q", types.ErrInvalidInput, *patch.VerificationStatus)
		}
		ev.VerificationStatus = *patch.VerificationStatus
	}
	if patch.Intensity != nil {
		ev.Intensity = types.ClampScale(*patch.Intensity)
	}
	if patch.Importance != nil {
		ev.Importance = types.ClampScale(*patch.Importance)
	}
	if patch.Emotions != nil {
		ev.Emotions = types.NormalizeLabels(*patch.Emotions)
	}
	if patch.PhysicalSensations != nil {
		ev.PhysicalSensations = types.NormalizeLabels(*patch.PhysicalSensations)
	}
	if patch.Tags != nil {
		ev.Tags = types.NormalizeTags(*patch.Tags)
	}
	if patch.Images != nil {
		ev.Images = types.NormalizeImages(*patch.Images)
	}
	if patch.ParentEventID != nil {
		ev.ParentEventID = *patch.ParentEventID
	}
	if patch.OccurredAt != nil {
		if patch.OccurredAt.IsZero() {
			return fmt.Errorf("%w: zero occurred-at", types.ErrInvalidDate)
		}
		ev.OccurredAt = patch.OccurredAt.UTC().Truncate(time.Second)
	}
	return nil
}

// execer is the subset of *sql.Tx / *sql.DB used by row writers.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertEvent writes a new event row.
func insertEvent(ctx context.Context, e execer, ev *types.Event) error {
	emotions, physical, tags, images, err := marshalEventLists(ev)
	if err != nil {
		return err
	}

	var parent any
	if ev.ParentEventID != "" {
		parent = ev.ParentEventID
	}

	_, err = e.ExecContext(ctx, `INSERT INTO events (
		event_id, owner_id, title, description, category, perception,
		verification_status, intensity, importance, emotions, physical_sensations,
		tags, images, parent_event_id, occurred_at, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.EventID, ev.OwnerID, ev.Title, ev.Description, ev.Category,
		string(ev.Perception), string(ev.VerificationStatus),
		ev.Intensity, ev.Importance, emotions, physical, tags, images,
		parent, formatTime(ev.OccurredAt), formatTime(ev.CreatedAt), formatTime(ev.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("persisting event: %w", err)
	}
	return nil
}

// updateEventRow rewrites every mutable column of an existing event.
func updateEventRow(ctx context.Context, e execer, ev *types.Event) error {
	emotions, physical, tags, images, err := marshalEventLists(ev)
	if err != nil {
		return err
	}

	var parent any
	if ev.ParentEventID != "" {
		parent = ev.ParentEventID
	}

	_, err = e.ExecContext(ctx, `UPDATE events SET
		title = ?, description = ?, category = ?, perception = ?,
		verification_status = ?, intensity = ?, importance = ?, emotions = ?,
		physical_sensations = ?, tags = ?, images = ?, parent_event_id = ?,
		occurred_at = ?, updated_at = ?
	WHERE event_id = ?`,
		ev.Title, ev.Description, ev.Category, string(ev.Perception),
		string(ev.VerificationStatus), ev.Intensity, ev.Importance, emotions,
		physical, tags, images, parent,
		formatTime(ev.OccurredAt), formatTime(ev.UpdatedAt), ev.EventID,
	)
	if err != nil {
		return fmt.Errorf("persisting event update: %w", err)
	}
	return nil
}

// marshalEventLists encodes the event's collection columns.
func marshalEventLists(ev *types.Event) (emotions, physical, tags, images string, err error) {
	if emotions, err = marshalStrings(ev.Emotions); err != nil {
		return "", "", "", "", fmt.Errorf("encoding emotions: %w", err)
	}
	if physical, err = marshalStrings(ev.PhysicalSensations); err != nil {
		return "", "", "", "", fmt.Errorf("encoding physical sensations: %w", err)
	}
	if tags, err = marshalStrings(ev.Tags); err != nil {
		return "", "", "", "", fmt.Errorf("encoding tags: %w", err)
	}
	if images, err = marshalStrings(ev.Images); err != nil {
		return "", "", "", "", fmt.Errorf("encoding images: %w", err)
	}
	return emotions, physical, tags, images, nil
}

// getEventRow loads one event by id, without an ownership check.
func getEventRow(ctx context.Context, q querier, id string) (*types.Event, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", types.ErrInvalidInput)
	}

	row := q.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE event_id = ?", id)
	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %s: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting event %s: %w", id, err)
	}
	return ev, nil
}

// queryEvents runs an event SELECT and hydrates every row.
func queryEvents(ctx context.Context, db *sql.DB, query string, args ...any) ([]types.Event, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []types.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating event: %w", err)
		}
		events = append(events, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEvent hydrates one row in eventColumns order.
func scanEvent(s scanner) (*types.Event, error) {
	var ev types.Event
	var perception, verification string
	var emotions, physical, tags, images string
	var parent sql.NullString
	var occurredAt, createdAt, updatedAt string

	err := s.Scan(
		&ev.EventID, &ev.OwnerID, &ev.Title, &ev.Description, &ev.Category,
		&perception, &verification, &ev.Intensity, &ev.Importance,
		&emotions, &physical, &tags, &images, &parent,
		&occurredAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	ev.Perception = types.Perception(perception)
	ev.VerificationStatus = types.VerificationStatus(verification)
	if parent.Valid {
		ev.ParentEventID = parent.String
	}

	if ev.Emotions, err = unmarshalStrings(emotions); err != nil {
		return nil, fmt.Errorf("decoding emotions: %w", err)
	}
	if ev.PhysicalSensations, err = unmarshalStrings(physical); err != nil {
		return nil, fmt.Errorf("decoding physical sensations: %w", err)
	}
	if ev.Tags, err = unmarshalStrings(tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	if ev.Images, err = unmarshalStrings(images); err != nil {
		return nil, fmt.Errorf("decoding images: %w", err)
	}

	if ev.OccurredAt, err = parseTime(occurredAt); err != nil {
		return nil, fmt.Errorf("decoding occurred_at: %w", err)
	}
	if ev.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("decoding created_at: %w", err)
	}
	if ev.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("decoding updated_at: %w", err)
	}

	return &ev, nil
}
