// Negamax alpha-beta with null-move reduction and transposition cutoffs.

package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// alphaBeta returns a fail-soft negamax score for the position. pv
// receives this node's principal variation whenever a move raises alpha.
// nullBranch marks frames underneath a null move, where a second null
// move is forbidden.
func (e *Engine) alphaBeta(b *dragon.Board, pv *PrincipalVariation, alpha, beta Eval, depth int, nullBranch bool) Eval {
	if depth <= 0 {
		return e.quiesce(b, alpha, beta, depth)
	}
	nodeType := AllNode

	e.pollStop()
	e.uciUpdate()

	if b.Halfmoveclock == 50 {
		return 0
	}

	mark := e.hist.mark()
	entryHash := e.hash
	defer func() {
		e.hist.rewind(mark)
		e.hash = entryHash
	}()
	e.hist.Push(e.hash)

	if e.hasher != nil && e.hist.Threefold() {
		e.stats.Repetitions++
		return 0
	}
	e.nodes++
	e.stats.Nodes++

	// Bound cutoffs only: an exact (PV) entry is kept for move ordering
	// but re-searched, so the line under it stays reconstructible.
	if e.ttEnabled() {
		if entry := e.tt.Probe(e.hash); entry.Key == e.hash && int(entry.Depth) > depth {
			if entry.Kind == AllNode && entry.Eval < alpha {
				e.stats.TTCuts++
				return entry.Eval
			}
			if entry.Kind == CutNode && entry.Eval > beta {
				e.stats.TTCuts++
				return entry.Eval
			}
		}
	}

	var pvChild PrincipalVariation

	// Null move: hand the opponent a free tempo and search reduced. If
	// they still cannot reach beta, the real position certainly fails
	// high. Skipped in check (the null move would be illegal) and anywhere
	// underneath an earlier null move.
	if UseNullMove && !nullBranch && !isInCheck(b) {
		bnull := *b
		var delta uint64
		if e.hasher != nil {
			delta = e.hasher.NullUpdate(b)
		}
		bnull.ApplyNullMove()
		e.hash ^= delta
		e.hist.PushMove(NoMove)

		nulleval := -e.alphaBeta(&bnull, &pvChild, -beta, -beta+1, depth-3, true)

		e.hist.PopMove()
		e.hash = entryHash
		if nulleval >= beta {
			e.stats.NullMoveCuts++
			return nulleval
		}
	}

	topMove := NoMove
	bestEval := NegInf
	var tt *TTable
	if e.ttEnabled() {
		tt = e.tt
	}
	moves := newMoveOrder(tt, b, e.hash)
	i := 0
	for {
		m, ok := moves.Next(b)
		if !ok {
			break
		}
		if !Searching.Load() {
			panic(searchCancelled{})
		}

		bcopy := *b
		bcopy.Apply(m)
		e.hist.PushMove(m)
		if e.hasher != nil {
			e.hash ^= e.hasher.IncrementalUpdate(m, b, &bcopy)
		}

		pvChild.clear()
		currEval := -e.alphaBeta(&bcopy, &pvChild, -beta, -alpha, depth-1, nullBranch)

		e.hash = entryHash
		e.hist.PopMove()

		if currEval > bestEval {
			bestEval = currEval
		}
		if bestEval >= beta {
			e.stats.CutNodes++
			if tt != nil {
				tt.TryStore(e.hash, int16(depth), bestEval, m, CutNode, e.hist.Age())
			}
			return bestEval
		}
		if currEval >= alpha {
			nodeType = PVNode
			topMove = m
			alpha = currEval
			pv.update(m, pvChild)
		}
		i++
	}

	if i == 0 {
		e.stats.Mates++
		if isInCheck(b) {
			return NegInf // checkmate
		}
		return 0 // stalemate
	}

	if tt != nil {
		if nodeType == PVNode {
			e.stats.PVNodes++
			tt.Store(e.hash, int16(depth), bestEval, topMove, PVNode, e.hist.Age())
		} else {
			e.stats.AllNodes++
			tt.TryStore(e.hash, int16(depth), bestEval, topMove, AllNode, e.hist.Age())
		}
	}
	return bestEval
}
