package types

import "errors"

// Request-scoped error kinds. Each failed operation returns exactly one
// of these, possibly wrapped; callers match with errors.Is.
var (
	// ErrInvalidInput reports a missing or malformed required field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate reports an unparseable timestamp value.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotFound reports that a referenced Event, Note, or parent
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized reports that the resource exists but is owned
	// by another user.
	ErrUnauthorized = errors.New("unauthorized")
)

// Hierarchy-invariant violations.
var (
	// ErrSelfParent reports an event referencing itself as parent.
	ErrSelfParent = errors.New("event cannot be its own parent")

	// ErrNestingTooDeep reports an attempt to nest under an event
	// that is itself a sub-event. Hierarchy depth is capped at two
	// levels: root events and their direct sub-events.
	ErrNestingTooDeep = errors.New("nesting exceeds two levels")

	// ErrCircularParent reports a parent assignment that would close
	// a cycle through the event being written.
	ErrCircularParent = errors.New("circular parent reference")

	// ErrChainTooDeep reports an ancestor chain that did not reach a
	// root within the hop cap. Under correct writes the two-level cap
	// makes this unreachable; it can occur only on corrupted data.
	ErrChainTooDeep = errors.New("parent chain too deep")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
