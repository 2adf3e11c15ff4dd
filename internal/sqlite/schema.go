package sqlite

// Schema DDL. The database file persists across runs, so every
// statement is idempotent.
const (
	// parent_event_id carries no foreign key: deleting a parent
	// leaves sub-events in place with a dangling reference.
	createEvents = `CREATE TABLE IF NOT EXISTS events (
    event_id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    perception TEXT NOT NULL,
    verification_status TEXT NOT NULL,
    intensity INTEGER NOT NULL,
    importance INTEGER NOT NULL,
    emotions TEXT NOT NULL,
    physical_sensations TEXT NOT NULL,
    tags TEXT NOT NULL,
    images TEXT NOT NULL,
    parent_event_id TEXT,
    occurred_at TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    note_id TEXT PRIMARY KEY,
    event_id TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    perception TEXT NOT NULL,
    importance INTEGER NOT NULL,
    status TEXT NOT NULL,
    facts TEXT NOT NULL DEFAULT '',
    assumptions TEXT NOT NULL DEFAULT '',
    patterns TEXT NOT NULL DEFAULT '',
    actions TEXT NOT NULL DEFAULT '',
    images TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (event_id) REFERENCES events(event_id) ON DELETE CASCADE
);`
)

// Index DDL for the common query paths: per-owner time-window scans,
// sub-event lookups, and per-event note listings.
const (
	idxEventsOwnerOccurred = `CREATE INDEX IF NOT EXISTS idx_events_owner_occurred ON events(owner_id, occurred_at);`
	idxEventsParent        = `CREATE INDEX IF NOT EXISTS idx_events_parent ON events(parent_event_id);`
	idxNotesEvent          = `CREATE INDEX IF NOT EXISTS idx_notes_event ON notes(event_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createEvents,
	createNotes,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxEventsOwnerOccurred,
	idxEventsParent,
	idxNotesEvent,
}
