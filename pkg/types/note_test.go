package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteStatusValid(t *testing.T) {
	for _, s := range []NoteStatus{NoteStatusOpen, NoteStatusInProgress, NoteStatusNeedsWatch, NoteStatusResolved} {
		assert.True(t, s.Valid(), "%q should be valid", s)
	}
	assert.False(t, NoteStatus("Closed").Valid())
	assert.False(t, NoteStatus("").Valid())
}
