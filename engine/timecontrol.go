// Time management: the soft move-time budget and the stop predicate the
// search polls at every node.

package engine

import (
	"sync/atomic"
	"time"
)

type TimeController struct {
	settings   SearchSettings
	start      time.Time
	lastUpdate time.Time
	moveTime   time.Duration
	ponder     atomic.Bool
}

// NewTimeController computes the budget for one move from the clock state
// of the side to move. positionsPlayed is the length of the position
// history, from which the move number is derived.
func NewTimeController(s SearchSettings, whiteToMove bool, positionsPlayed int, start time.Time) *TimeController {
	tc := &TimeController{settings: s, start: start, lastUpdate: start}
	tc.ponder.Store(s.Ponder)

	mytime, myinc := s.WTime, s.WInc
	if !whiteToMove {
		mytime, myinc = s.BTime, s.BInc
	}
	moveNumber := (positionsPlayed + 2) / 2
	switch {
	case mytime <= 0:
		// No clock information; only MaxTime (e.g. movetime) can bind.
		tc.moveTime = s.MaxTime
	case s.MovesToGo <= 0:
		if moveNumber < 12 {
			tc.moveTime = mytime / 40
		} else {
			tc.moveTime = mytime / 10
		}
	default:
		tc.moveTime = time.Duration(float64(mytime)*0.95)/time.Duration(s.MovesToGo) + myinc/3
	}
	return tc
}

func (tc *TimeController) Elapsed() time.Duration {
	return time.Since(tc.start)
}

func (tc *TimeController) MoveTime() time.Duration {
	return tc.moveTime
}

// ShouldStop is the stop predicate. While pondering nothing stops the
// search; infiniteSearch disables only the time comparisons, the node
// budget still binds.
func (tc *TimeController) ShouldStop(nodes uint64) bool {
	if tc.ponder.Load() {
		return false
	}
	overtime := !tc.settings.Infinite &&
		(tc.Elapsed() > tc.moveTime || tc.Elapsed() > tc.settings.MaxTime)
	return overtime || nodes > tc.settings.MaxNodes
}

// PonderHit re-enables time-based stopping mid-search.
func (tc *TimeController) PonderHit() {
	tc.ponder.Store(false)
}

// telemetryDue throttles the periodic info line to one every two seconds.
func (tc *TimeController) telemetryDue() bool {
	if time.Since(tc.lastUpdate) < 2*time.Second {
		return false
	}
	tc.lastUpdate = time.Now()
	return true
}
