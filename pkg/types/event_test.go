package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerceptionValid(t *testing.T) {
	for _, p := range []Perception{PerceptionPositive, PerceptionNeutral, PerceptionNegative, PerceptionMixed} {
		assert.True(t, p.Valid(), "%q should be valid", p)
	}
	assert.False(t, Perception("").Valid())
	assert.False(t, Perception("positive").Valid(), "perception values are case-sensitive")
	assert.False(t, Perception("Happy").Valid())
}

func TestVerificationStatusValid(t *testing.T) {
	for _, v := range []VerificationStatus{
		VerificationPending,
		VerificationVerifiedTrue,
		VerificationVerifiedFalse,
		VerificationUnverifiedTrue,
		VerificationQuestionMark,
	} {
		assert.True(t, v.Valid(), "%q should be valid", v)
	}
	assert.False(t, VerificationStatus("Verified").Valid())
	assert.False(t, VerificationStatus("").Valid())
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{5, 5},
		{10, 10},
		{11, 10},
		{100, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampScale(tt.in), "ClampScale(%d)", tt.in)
	}
}

func TestEventIsRoot(t *testing.T) {
	root := Event{EventID: "a"}
	sub := Event{EventID: "b", ParentEventID: "a"}
	assert.True(t, root.IsRoot())
	assert.False(t, sub.IsRoot())
}
