package types

import "time"

// NoteStatus tracks the working state of an analytic note.
type NoteStatus string

// NoteStatus values.
const (
	NoteStatusOpen       NoteStatus = "Open"
	NoteStatusInProgress NoteStatus = "In Progress"
	NoteStatusNeedsWatch NoteStatus = "Needs Watch"
	NoteStatusResolved   NoteStatus = "Resolved"
)

// validNoteStatuses is the set of recognized note status values.
var validNoteStatuses = map[NoteStatus]bool{
	NoteStatusOpen:       true,
	NoteStatusInProgress: true,
	NoteStatusNeedsWatch: true,
	NoteStatusResolved:   true,
}

// Valid reports whether s is a recognized note status.
func (s NoteStatus) Valid() bool { return validNoteStatuses[s] }

// Note is a free-form analytic record attached to exactly one Event.
// Notes are cascade-deleted with their event.
type Note struct {
	NoteID      string     // UUID v7, generated on creation.
	EventID     string     // Owning event (required).
	Title       string
	Description string
	Perception  Perception // Defaults to Neutral.
	Importance  int        // Clamped to [1,10].
	Status      NoteStatus // Defaults to Open.
	Facts       string
	Assumptions string
	Patterns    string
	Actions     string
	Images      []string // Deduped reference strings.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoteDraft carries the caller-supplied fields for CreateNote.
type NoteDraft struct {
	Title       string
	Description string
	Perception  Perception
	Importance  int
	Status      NoteStatus
	Facts       string
	Assumptions string
	Patterns    string
	Actions     string
	Images      []string
}

// NotePatch carries a partial update for UpdateNote. A nil field
// preserves the stored value; a pointer to an empty Images slice
// clears the collection.
type NotePatch struct {
	Title       *string
	Description *string
	Perception  *Perception
	Importance  *int
	Status      *NoteStatus
	Facts       *string
	Assumptions *string
	Patterns    *string
	Actions     *string
	Images      *[]string
}
