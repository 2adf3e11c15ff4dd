package types

import (
	"context"
	"time"
)

// Store defines the interface for backend-agnostic access to persisted
// events and notes. Callers attach to a backend at process start,
// issue operations, and detach at shutdown. Every read reflects
// persisted state at query time; the store holds no authoritative
// in-memory copies.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// CreateEvent validates, normalizes, and persists a new event
	// owned by ownerID. A supplied parent reference is checked
	// against the hierarchy invariants before the write.
	CreateEvent(ctx context.Context, ownerID string, draft EventDraft) (*Event, error)

	// UpdateEvent applies a partial update to an existing event.
	// Fields absent from the patch keep their stored values.
	UpdateEvent(ctx context.Context, ownerID, id string, patch EventPatch) (*Event, error)

	// DeleteEvent removes an event after an ownership check. Attached
	// notes are cascade-deleted; sub-events are left in place with a
	// dangling parent reference.
	DeleteEvent(ctx context.Context, ownerID, id string) error

	// GetEvent loads a single event after an ownership check.
	GetEvent(ctx context.Context, ownerID, id string) (*Event, error)

	// ListEvents returns all events owned by ownerID, ordered by
	// occurrence time ascending.
	ListEvents(ctx context.Context, ownerID string) ([]Event, error)

	// ListEventsSince returns the owner's events whose occurrence
	// time is at or after cutoff. A zero cutoff returns everything.
	ListEventsSince(ctx context.Context, ownerID string, cutoff time.Time) ([]Event, error)

	// ListSubEvents returns the direct sub-events of the given event,
	// ordered by occurrence time ascending.
	ListSubEvents(ctx context.Context, ownerID, parentID string) ([]Event, error)

	// CreateNote attaches a new analytic note to an existing event.
	CreateNote(ctx context.Context, eventID string, draft NoteDraft) (*Note, error)

	// UpdateNote applies a partial update to an existing note.
	UpdateNote(ctx context.Context, id string, patch NotePatch) (*Note, error)

	// DeleteNote removes a note, independently of its siblings.
	DeleteNote(ctx context.Context, id string) error

	// GetNote loads a single note.
	GetNote(ctx context.Context, id string) (*Note, error)

	// ListNotes returns the notes attached to an event, ordered by
	// creation time ascending.
	ListNotes(ctx context.Context, eventID string) ([]Note, error)
}
