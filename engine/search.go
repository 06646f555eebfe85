// The engine root: iterative deepening, root move ordering, telemetry and
// bestmove emission.

package engine

import (
	"fmt"
	"io"
	"sort"
	"sync/atomic"
	"time"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
)

// Searching is the process-wide search gate. The controller sets it before
// starting a search; anyone may clear it to request a cooperative stop, and
// the search clears it itself when a stop predicate fires.
var Searching atomic.Bool

// searchCancelled unwinds the recursion to RootSearch. It is raised at the
// polling points and recovered nowhere else, so every frame's scoped
// cleanup runs on the way out.
type searchCancelled struct{}

type Engine struct {
	settings SearchSettings
	tt       *TTable
	hasher   Hasher
	out      io.Writer
	logger   zerolog.Logger

	tc          *TimeController
	hist        HistoryStack
	hash        uint64
	nodes       uint64
	currIDdepth int
	rootMoves   []ScoredMove
	mainPV      PrincipalVariation
	eval        Eval
	stats       SearchStats
}

// NewEngine returns an engine writing protocol lines to out. Without a
// hasher the transposition table and repetition detection stay off.
func NewEngine(out io.Writer, logger zerolog.Logger) *Engine {
	return &Engine{
		out:      out,
		logger:   logger,
		settings: DefaultSettings(),
		tc:       NewTimeController(DefaultSettings(), true, 0, time.Now()),
	}
}

func (e *Engine) SetSettings(s SearchSettings) { e.settings = s }
func (e *Engine) SetTTable(tt *TTable)         { e.tt = tt }
func (e *Engine) SetHasher(h Hasher)           { e.hasher = h }

// RootEval is the score of the best root move from the last completed
// iteration.
func (e *Engine) RootEval() Eval { return e.eval }

func (e *Engine) Stats() SearchStats { return e.stats }

// PonderHit switches the running search from pondering to normal time
// management.
func (e *Engine) PonderHit() {
	if tc := e.tc; tc != nil {
		tc.PonderHit()
	}
}

func (e *Engine) ttEnabled() bool {
	return e.tt != nil && e.hasher != nil
}

// pollStop clears the search gate once a stop predicate fires; the
// recursion notices at its next polling point.
func (e *Engine) pollStop() {
	if e.tc.ShouldStop(e.nodes) {
		Searching.Store(false)
	}
}

// RootSearch drives iterative deepening from the given position and
// histories, streaming telemetry, and returns after emitting bestmove. It
// is synchronous on its goroutine; the controller talks to it only
// through the Searching flag.
func (e *Engine) RootSearch(b dragon.Board, start time.Time, moveHist []dragon.Move, posHist []uint64) {
	e.tc = NewTimeController(e.settings, b.Wtomove, len(posHist), start)
	e.nodes = 0
	e.currIDdepth = 0
	e.stats = SearchStats{}
	e.hist.Reset(moveHist, posHist)
	if e.hasher != nil && len(posHist) > 0 {
		e.hash = posHist[len(posHist)-1]
	} else {
		e.hash = 0
	}
	e.mainPV.clear()
	e.eval = NegInf

	e.rootMoves = e.rootMoves[:0]
	for _, m := range genMoves(&b) {
		e.rootMoves = append(e.rootMoves, ScoredMove{Move: m, Score: NegInf})
	}
	if len(e.rootMoves) == 0 {
		e.logger.Warn().Str("fen", b.ToFen()).Msg("root search on terminal position")
		Searching.Store(false)
		fmt.Fprintf(e.out, "bestmove %s\n", moveString(NoMove))
		return
	}

	e.deepen(&b)

	Searching.Store(false)
	e.stats.Dump(e.out)
	e.logger.Debug().
		Uint64("nodes", e.nodes).
		Int("depth", e.currIDdepth).
		Int32("eval", int32(e.eval)).
		Msg("search finished")
	fmt.Fprintf(e.out, "bestmove %s\n", moveString(e.rootMoves[0].Move))
}

// deepen runs iterative deepening passes until depth, time or the
// controller stops it. It is the sole catcher of the cancellation signal:
// the pass in flight is abandoned and rootMoves keeps the order from the
// last completed pass.
func (e *Engine) deepen(b *dragon.Board) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(searchCancelled); !ok {
				panic(r)
			}
			e.logger.Debug().Int("depth", e.currIDdepth).Msg("search cancelled")
		}
	}()

	maxDepth := MaxIDDepth
	if e.settings.MaxDepth > 0 && e.settings.MaxDepth < MaxIDDepth {
		maxDepth = e.settings.MaxDepth
	}
	for k := 1; k <= maxDepth; k++ {
		e.currIDdepth = k
		worstCase := NegInf
		var pvChild PrincipalVariation
		for i := range e.rootMoves {
			if !Searching.Load() {
				return
			}
			pvChild.clear()
			score := e.searchRootMove(b, e.rootMoves[i].Move, &pvChild, k, worstCase)
			e.rootMoves[i].Score = score
			if score > worstCase {
				e.mainPV.update(e.rootMoves[i].Move, pvChild)
				worstCase = score
			}
		}
		sort.SliceStable(e.rootMoves, func(i, j int) bool {
			return e.rootMoves[i].Score > e.rootMoves[j].Score
		})
		e.eval = e.rootMoves[0].Score
		e.printPV()
	}
}

// searchRootMove searches one root move with the sibling-dominance window
// (-inf, -worstCase): each sibling only has to prove itself against the
// best score so far, which orders the root cheaply across iterations.
func (e *Engine) searchRootMove(b *dragon.Board, m dragon.Move, pvChild *PrincipalVariation, k int, worstCase Eval) Eval {
	mark := e.hist.mark()
	entryHash := e.hash
	defer func() {
		e.hist.rewind(mark)
		e.hash = entryHash
	}()

	bcopy := *b
	bcopy.Apply(m)
	e.hist.PushMove(m)
	if e.hasher != nil {
		e.hash ^= e.hasher.IncrementalUpdate(m, b, &bcopy)
	}
	return -e.alphaBeta(&bcopy, pvChild, NegInf, -worstCase, k-1, false)
}

func (e *Engine) printPV() {
	elapsed := e.tc.Elapsed()
	secs := uint64(elapsed / time.Second)
	if secs < 1 {
		secs = 1
	}
	fmt.Fprintf(e.out, "info depth %d score cp %d time %d nodes %d nps %d pv %s\n",
		e.currIDdepth, e.eval, elapsed.Milliseconds(), e.nodes, e.nodes/secs, e.mainPV.String())
}

// uciUpdate emits the periodic depth/nodes/nps line, at most once every
// two seconds.
func (e *Engine) uciUpdate() {
	if !e.tc.telemetryDue() {
		return
	}
	secs := uint64(e.tc.Elapsed() / time.Second)
	if secs > 0 {
		fmt.Fprintf(e.out, "info depth %d nodes %d nps %d\n",
			e.currIDdepth, e.nodes, e.nodes/secs)
	}
}
