// Quiescence search: a bounded tactical extension over captures (and
// evasions when in check) so the main search never evaluates a position
// mid-exchange. Depth here is non-positive; it is used only in the
// transposition depth comparison.

package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

func (e *Engine) quiesce(b *dragon.Board, alpha, beta Eval, depth int) Eval {
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
	if b.Halfmoveclock == 50 {
		return 0
	}
	e.pollStop()
	e.nodes++
	e.stats.QNodes++

	if e.ttEnabled() {
		if entry := e.tt.Probe(e.hash); entry.Key == e.hash && int(entry.Depth) > depth {
			switch entry.Kind {
			case PVNode:
				e.stats.QTTCuts++
				return entry.Eval
			case AllNode:
				if entry.Eval < alpha {
					e.stats.QTTCuts++
					return entry.Eval
				}
			case CutNode:
				if entry.Eval > beta {
					e.stats.QTTCuts++
					return entry.Eval
				}
			}
		}
	}

	ml := genCaptures(b)
	captureIterations := len(ml)
	check := isInCheck(b)

	standpat := NegInf
	if !check {
		standpat = Evaluate(b)
		if standpat >= beta {
			return standpat
		}
		if standpat >= alpha {
			alpha = standpat
		}
	}
	if !check && len(ml) == 0 {
		if len(genQuiets(b)) == 0 {
			return 0 // stalemate
		}
		return standpat
	}
	if check && len(ml) == 0 {
		quiets := genQuiets(b)
		if len(quiets) == 0 {
			return NegInf // checkmate
		}
		for _, q := range quiets {
			ml = append(ml, ScoredMove{Move: q})
		}
	}

	currEval := standpat

	for i := 0; i < captureIterations; i++ {
		ml[i].Score = MvvLva(b, ml[i].Move)
	}

	for i := 0; i < len(ml); i++ {
		// Lazily select the best remaining capture instead of sorting the
		// whole list up front; most nodes cut off after one or two moves.
		if i+1 < captureIterations {
			best := i
			for j := i + 1; j < len(ml); j++ {
				if ml[j].Score > ml[best].Score {
					best = j
				}
			}
			ml[i], ml[best] = ml[best], ml[i]
		}
		if i < captureIterations {
			// Delta pruning: even winning the victim plus a 200cp margin
			// cannot lift this capture above alpha.
			if !check && CaptureValue(b, ml[i].Move)+200+standpat <= alpha {
				continue
			}
			if ml[i].Score < 0 {
				ml[i].Score = See(b, ml[i].Move)
				if ml[i].Score < 0 {
					// Skipping the last capture while in check must not
					// leave us returning off an empty move list.
					if check && i+1 == captureIterations {
						for _, q := range genQuiets(b) {
							ml = append(ml, ScoredMove{Move: q})
						}
					}
					continue
				}
			}
		}
		if !Searching.Load() {
			panic(searchCancelled{})
		}

		m := ml[i].Move
		bcopy := *b
		bcopy.Apply(m)
		e.hist.PushMove(m)
		if e.hasher != nil {
			e.hash ^= e.hasher.IncrementalUpdate(m, b, &bcopy)
		}

		score := -e.quiesce(&bcopy, -beta, -alpha, depth-1)

		e.hash = entryHash
		e.hist.PopMove()

		if score > currEval {
			currEval = score
		}
		if currEval > alpha {
			alpha = currEval
		}
		if alpha >= beta {
			return currEval
		}
		if check && i+1 == captureIterations {
			for _, q := range genQuiets(b) {
				ml = append(ml, ScoredMove{Move: q})
			}
		}
	}
	return currEval
}
