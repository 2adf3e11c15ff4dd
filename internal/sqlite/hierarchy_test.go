package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

// insertRawEvent writes an event row directly, bypassing the hierarchy
// guard. Used to simulate databases corrupted by out-of-band edits.
func insertRawEvent(t *testing.T, b *Backend, eventID, parentID string) {
	t.Helper()

	var parent any
	if parentID != "" {
		parent = parentID
	}
	now := formatTime(time.Now())
	_, err := b.db.Exec(`INSERT INTO events (
		event_id, owner_id, title, description, category, perception,
		verification_status, intensity, importance, emotions, physical_sensations,
		tags, images, parent_event_id, occurred_at, created_at, updated_at
	) VALUES (?, ?, ?, '', '', 'Neutral', 'Pending', 1, 1, '[]', '[]', '[]', '[]', ?, ?, ?, ?)`,
		eventID, testOwner, eventID, parent, now, now, now,
	)
	require.NoError(t, err)
}

func TestCheckParentSelfReference(t *testing.T) {
	b := newTestBackend(t)

	err := checkParent(context.Background(), b.db, testOwner, "e1", "e1")
	assert.ErrorIs(t, err, types.ErrSelfParent)
}

func TestCheckParentDetectsCycle(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	// b -> c -> a written directly; attaching b as a's parent would
	// close the loop a -> b -> c -> a.
	insertRawEvent(t, b, "cycle-a", "")
	insertRawEvent(t, b, "cycle-b", "cycle-c")
	insertRawEvent(t, b, "cycle-c", "cycle-a")

	err := checkParent(ctx, b.db, testOwner, "cycle-a", "cycle-b")
	assert.ErrorIs(t, err, types.ErrCircularParent)
}

func TestCheckParentChainTooDeep(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	// A chain longer than the walk cap, written directly.
	depth := maxAncestorHops + 2
	for i := 0; i < depth; i++ {
		parent := ""
		if i < depth-1 {
			parent = fmt.Sprintf("chain-%d", i+1)
		}
		insertRawEvent(t, b, fmt.Sprintf("chain-%d", i), parent)
	}

	err := checkParent(ctx, b.db, testOwner, "new-event", "chain-0")
	assert.ErrorIs(t, err, types.ErrChainTooDeep)
}

func TestCheckParentDanglingReferenceTerminates(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	// An orphaned root whose recorded parent no longer exists still
	// rejects new children for depth, not for the dangling reference.
	insertRawEvent(t, b, "orphan", "deleted-parent")

	err := checkParent(ctx, b.db, testOwner, "new-event", "orphan")
	assert.ErrorIs(t, err, types.ErrNestingTooDeep)
}

func TestCheckParentRejectsEventWithChildren(t *testing.T) {
	b := newTestBackend(t)

	insertRawEvent(t, b, "busy-root", "")
	insertRawEvent(t, b, "busy-child", "busy-root")
	insertRawEvent(t, b, "target", "")

	err := checkParent(context.Background(), b.db, testOwner, "busy-root", "target")
	assert.ErrorIs(t, err, types.ErrNestingTooDeep)
}

func TestCheckParentMissingParent(t *testing.T) {
	b := newTestBackend(t)

	err := checkParent(context.Background(), b.db, testOwner, "new-event", "ghost")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
