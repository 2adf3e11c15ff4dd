package types

import "time"

// Perception classifies how the user experienced an event or note.
type Perception string

// Perception values.
const (
	PerceptionPositive Perception = "Positive"
	PerceptionNeutral  Perception = "Neutral"
	PerceptionNegative Perception = "Negative"
	PerceptionMixed    Perception = "Mixed"
)

// validPerceptions is the set of recognized perception values.
var validPerceptions = map[Perception]bool{
	PerceptionPositive: true,
	PerceptionNeutral:  true,
	PerceptionNegative: true,
	PerceptionMixed:    true,
}

// Valid reports whether p is a recognized perception value.
func (p Perception) Valid() bool { return validPerceptions[p] }

// VerificationStatus records how far an event's account has been
// checked against evidence.
type VerificationStatus string

// VerificationStatus values.
const (
	VerificationPending        VerificationStatus = "Pending"
	VerificationVerifiedTrue   VerificationStatus = "Verified True"
	VerificationVerifiedFalse  VerificationStatus = "Verified False"
	VerificationUnverifiedTrue VerificationStatus = "True without Verification"
	VerificationQuestionMark   VerificationStatus = "Question Mark"
)

// validVerificationStatuses is the set of recognized verification values.
var validVerificationStatuses = map[VerificationStatus]bool{
	VerificationPending:        true,
	VerificationVerifiedTrue:   true,
	VerificationVerifiedFalse:  true,
	VerificationUnverifiedTrue: true,
	VerificationQuestionMark:   true,
}

// Valid reports whether v is a recognized verification status.
func (v VerificationStatus) Valid() bool { return validVerificationStatuses[v] }

// Scale bounds for intensity and importance.
const (
	ScaleMin = 1
	ScaleMax = 10
)

// ClampScale clamps n to the [ScaleMin, ScaleMax] range.
func ClampScale(n int) int {
	if n < ScaleMin {
		return ScaleMin
	}
	if n > ScaleMax {
		return ScaleMax
	}
	return n
}

// Event represents a recorded life event. Events form a two-level
// hierarchy: a root event may have direct sub-events, and a sub-event
// may not have children of its own.
type Event struct {
	EventID            string             // UUID v7, generated on creation.
	OwnerID            string             // Opaque owning-user id (required).
	Title              string             // Required, non-empty.
	Description        string             // Optional, defaults to "".
	Category           string             // Optional label.
	Perception         Perception         // Defaults to Neutral.
	VerificationStatus VerificationStatus // Defaults to Pending.
	Intensity          int                // Clamped to [1,10].
	Importance         int                // Clamped to [1,10].
	Emotions           []string           // Free-text labels, deduped.
	PhysicalSensations []string           // Free-text labels, deduped.
	Tags               []string           // Lower-cased, deduped.
	Images             []string           // Deduped reference strings.
	ParentEventID      string             // Empty for root events.
	OccurredAt         time.Time          // User-assigned event time.
	CreatedAt          time.Time          // Record-creation time, immutable.
	UpdatedAt          time.Time          // Last modification time.
}

// IsRoot reports whether the event has no parent.
func (e *Event) IsRoot() bool { return e.ParentEventID == "" }

// EventDraft carries the caller-supplied fields for CreateEvent.
// Zero-valued optional fields take their documented defaults.
type EventDraft struct {
	Title              string
	Description        string
	Category           string
	Perception         Perception
	VerificationStatus VerificationStatus
	Intensity          int
	Importance         int
	Emotions           []string
	PhysicalSensations []string
	Tags               []string
	Images             []string
	ParentEventID      string
	OccurredAt         time.Time // Zero means "now".
}

// EventPatch carries a partial update for UpdateEvent. A nil field
// preserves the stored value; a non-nil pointer replaces it. For the
// collection fields a pointer to an empty slice clears the collection,
// and a pointer to the empty string clears ParentEventID or Category.
type EventPatch struct {
	Title              *string
	Description        *string
	Category           *string
	Perception         *Perception
	VerificationStatus *VerificationStatus
	Intensity          *int
	Importance         *int
	Emotions           *[]string
	PhysicalSensations *[]string
	Tags               *[]string
	Images             *[]string
	ParentEventID      *string
	OccurredAt         *time.Time
}
