package engine

import (
	"math"
	"time"
)

// SearchSettings is the controller's request for a single search. It is
// written before the search starts and treated as read-only afterwards;
// the only mid-search interaction is PonderHit.
type SearchSettings struct {
	MaxDepth  int    // 0 means no depth limit
	MaxNodes  uint64 // node budget
	MovesToGo int    // 0 means not specified
	Infinite  bool   // disables all time-based stopping
	Ponder    bool   // never stop until ponderhit/stop
	MaxTime   time.Duration
	WTime     time.Duration
	BTime     time.Duration
	WInc      time.Duration
	BInc      time.Duration
}

// DefaultSettings returns settings with all limits effectively off.
func DefaultSettings() SearchSettings {
	return SearchSettings{
		MaxNodes: math.MaxUint64,
		MaxTime:  time.Duration(math.MaxInt64),
	}
}
