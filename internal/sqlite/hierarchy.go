package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// maxAncestorHops caps the ancestor walk. Under correct writes the
// two-level nesting invariant makes any longer chain impossible; the
// cap bounds the walk when out-of-band edits to the database file have
// introduced a cycle.
const maxAncestorHops = 100

// querier is the subset of *sql.Tx / *sql.DB used by the guard.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checkParent validates the hierarchy invariants for assigning
// parentID as the parent of eventID (empty for a not-yet-created
// event). It runs inside the caller's write transaction so the guard
// and the subsequent write observe one consistent snapshot.
//
// Rejections, in check order: ErrSelfParent, ErrNotFound (parent row
// missing), ErrUnauthorized (parent owned by another user),
// ErrCircularParent / ErrChainTooDeep from the ancestor walk, and
// ErrNestingTooDeep when the event being written already has
// sub-events of its own or the candidate parent is itself a
// sub-event.
func checkParent(ctx context.Context, q querier, ownerID, eventID, parentID string) error {
	if parentID == eventID {
		return types.ErrSelfParent
	}

	var parentOwner string
	var grandparent sql.NullString
	err := q.QueryRowContext(ctx,
		"SELECT owner_id, parent_event_id FROM events WHERE event_id = ?",
		parentID,
	).Scan(&parentOwner, &grandparent)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("parent %s: %w", parentID, types.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("loading parent %s: %w", parentID, err)
	}
	if parentOwner != ownerID {
		return fmt.Errorf("parent %s: %w", parentID, types.ErrUnauthorized)
	}

	if err := walkAncestors(ctx, q, eventID, grandparent); err != nil {
		return err
	}

	// An event that already has sub-events must stay a root: giving it
	// a parent would put its children three levels deep. Checked after
	// the walk so a true cycle reports as a cycle.
	var child int
	err = q.QueryRowContext(ctx,
		"SELECT 1 FROM events WHERE parent_event_id = ? LIMIT 1",
		eventID,
	).Scan(&child)
	if err == nil {
		return types.ErrNestingTooDeep
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking children of %s: %w", eventID, err)
	}

	// Depth check last so that a corrupted cycle reports as a cycle
	// rather than as excessive nesting.
	if grandparent.Valid && grandparent.String != "" {
		return types.ErrNestingTooDeep
	}

	return nil
}

// walkAncestors follows parent references upward from the candidate
// parent's own parent, rejecting a chain that passes through eventID
// or fails to reach a root within maxAncestorHops. A reference to a
// deleted event terminates the chain: orphaned sub-events keep their
// dangling parent id.
func walkAncestors(ctx context.Context, q querier, eventID string, start sql.NullString) error {
	current := start
	for hops := 0; current.Valid && current.String != ""; hops++ {
		if hops >= maxAncestorHops {
			return types.ErrChainTooDeep
		}
		if current.String == eventID {
			return types.ErrCircularParent
		}

		var next sql.NullString
		err := q.QueryRowContext(ctx,
			"SELECT parent_event_id FROM events WHERE event_id = ?",
			current.String,
		).Scan(&next)
		if errors.Is(err, sql.ErrNoRows) {
			return nil // dangling reference, chain ends here
		}
		if err != nil {
			return fmt.Errorf("walking ancestor %s: %w", current.String, err)
		}
		current = next
	}
	return nil
}
