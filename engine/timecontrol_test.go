package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoveTimeBudget(t *testing.T) {
	start := time.Now()

	// No movestogo, early game: 1/40th of the clock.
	s := DefaultSettings()
	s.WTime = 4 * time.Second
	tc := NewTimeController(s, true, 4, start)
	assert.Equal(t, 100*time.Millisecond, tc.MoveTime())

	// No movestogo, later game (move number >= 12): a tenth of the clock.
	tc = NewTimeController(s, true, 30, start)
	assert.Equal(t, 400*time.Millisecond, tc.MoveTime())

	// With movestogo: 0.95*time/N plus a third of the increment.
	s = DefaultSettings()
	s.BTime = 60 * time.Second
	s.BInc = time.Second
	s.MovesToGo = 40
	tc = NewTimeController(s, false, 4, start)
	want := time.Duration(float64(60*time.Second)*0.95)/40 + time.Second/3
	assert.Equal(t, want, tc.MoveTime())

	// The budget is for the side to move.
	tc = NewTimeController(s, true, 4, start)
	assert.Equal(t, s.MaxTime, tc.MoveTime()) // white has no clock info
}

func TestShouldStop(t *testing.T) {
	// Start far enough in the past that any budget is blown.
	past := time.Now().Add(-time.Minute)

	s := DefaultSettings()
	s.WTime = 4 * time.Second
	tc := NewTimeController(s, true, 4, past)
	assert.True(t, tc.ShouldStop(0))

	// Pondering suppresses every stop condition.
	s.Ponder = true
	tc = NewTimeController(s, true, 4, past)
	assert.False(t, tc.ShouldStop(0))

	// A ponderhit turns time management back on.
	tc.PonderHit()
	assert.True(t, tc.ShouldStop(0))

	// Infinite disables the time comparisons but not the node budget.
	s = DefaultSettings()
	s.WTime = 4 * time.Second
	s.Infinite = true
	s.MaxNodes = 1000
	tc = NewTimeController(s, true, 4, past)
	assert.False(t, tc.ShouldStop(999))
	assert.True(t, tc.ShouldStop(1001))

	// Under the budget nothing stops.
	s = DefaultSettings()
	s.WTime = 4 * time.Second
	tc = NewTimeController(s, true, 4, time.Now())
	assert.False(t, tc.ShouldStop(0))
}
