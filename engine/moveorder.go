// Staged move ordering for the main search: the transposition table move
// first, then captures by MVV-LVA with losing captures deferred, then
// quiet moves in generator order.

package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// ScoredMove pairs a move with its ordering score. The score means
// MVV-LVA (possibly replaced by SEE) for captures and is unused for
// quiets.
type ScoredMove struct {
	Move  dragon.Move
	Score Eval
}

const (
	stageTTMove = iota
	stageCaptures
	stageQuiets
	stageDeferred
)

type moveOrder struct {
	ttMove   dragon.Move
	captures []ScoredMove
	quiets   []dragon.Move
	deferred []dragon.Move // negative-SEE captures, tried after quiets
	stage    int
	head     int
}

// newMoveOrder generates the legal moves once and buckets them. A table
// move from a colliding hash that is not actually legal here is silently
// dropped by the membership test.
func newMoveOrder(tt *TTable, b *dragon.Board, hash uint64) *moveOrder {
	mo := &moveOrder{}
	legal := b.GenerateLegalMoves()
	if tt != nil {
		if entry := tt.Probe(hash); entry.Key == hash && entry.BestMove != NoMove {
			for _, m := range legal {
				if m == entry.BestMove {
					mo.ttMove = m
					break
				}
			}
		}
	}
	for _, m := range legal {
		if m == mo.ttMove {
			continue
		}
		if dragon.IsCapture(m, b) {
			mo.captures = append(mo.captures, ScoredMove{Move: m, Score: MvvLva(b, m)})
		} else {
			mo.quiets = append(mo.quiets, m)
		}
	}
	return mo
}

// Next yields the next move to search, or false when exhausted. SEE is
// only computed lazily, for captures whose cheap score is already
// negative.
func (mo *moveOrder) Next(b *dragon.Board) (dragon.Move, bool) {
	for {
		switch mo.stage {
		case stageTTMove:
			mo.stage++
			if mo.ttMove != NoMove {
				return mo.ttMove, true
			}
		case stageCaptures:
			if mo.head >= len(mo.captures) {
				mo.stage++
				mo.head = 0
				continue
			}
			best := mo.head
			for i := mo.head + 1; i < len(mo.captures); i++ {
				if mo.captures[i].Score > mo.captures[best].Score {
					best = i
				}
			}
			mo.captures[mo.head], mo.captures[best] = mo.captures[best], mo.captures[mo.head]
			sm := mo.captures[mo.head]
			mo.head++
			if sm.Score < 0 && See(b, sm.Move) < 0 {
				mo.deferred = append(mo.deferred, sm.Move)
				continue
			}
			return sm.Move, true
		case stageQuiets:
			if mo.head >= len(mo.quiets) {
				mo.stage++
				mo.head = 0
				continue
			}
			m := mo.quiets[mo.head]
			mo.head++
			return m, true
		default:
			if mo.head >= len(mo.deferred) {
				return NoMove, false
			}
			m := mo.deferred[mo.head]
			mo.head++
			return m, true
		}
	}
}
