// Position and move history for the current line, used for repetition
// detection and for reconstructing the line being searched.

package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// HistoryStack holds the hashes of every position from the game start
// through the node currently being searched, plus the moves that produced
// them. The watermarks separate pre-search game history from search-local
// entries, so Ply and entry ages are relative to the search root.
type HistoryStack struct {
	hashes        []uint64
	moves         []dragon.Move
	initialHashes int
	initialMoves  int
}

// Reset installs the game history for a new search and records the
// watermarks. Both slices are copied; the caller keeps ownership.
func (h *HistoryStack) Reset(moveHist []dragon.Move, posHist []uint64) {
	h.hashes = append(h.hashes[:0], posHist...)
	h.moves = append(h.moves[:0], moveHist...)
	h.initialHashes = len(h.hashes)
	h.initialMoves = len(h.moves)
}

func (h *HistoryStack) Push(hash uint64) {
	h.hashes = append(h.hashes, hash)
}

func (h *HistoryStack) Pop() {
	h.hashes = h.hashes[:len(h.hashes)-1]
}

func (h *HistoryStack) PushMove(m dragon.Move) {
	h.moves = append(h.moves, m)
}

func (h *HistoryStack) PopMove() {
	h.moves = h.moves[:len(h.moves)-1]
}

// Ply is the distance from the search root.
func (h *HistoryStack) Ply() int {
	return len(h.hashes) - h.initialHashes
}

// Age tags transposition table entries with the search they came from, so
// entries from earlier searches lose replacement fights.
func (h *HistoryStack) Age() uint32 {
	return uint32(h.initialHashes)
}

// Threefold reports whether the position on top of the stack has occurred
// three times. Stepping by 2 is mandatory: a repetition requires the same
// side to move, and odd offsets are the opponent's positions.
func (h *HistoryStack) Threefold() bool {
	if len(h.hashes) == 0 {
		return false
	}
	curr := h.hashes[len(h.hashes)-1]
	cnt := 0
	for i := len(h.hashes) - 1; i >= 0; i -= 2 {
		if h.hashes[i] == curr {
			cnt++
		}
	}
	return cnt >= 3
}

type histMark struct {
	hashes, moves int
}

// mark and rewind bracket a search frame: rewind restores both stacks to
// their mark sizes on every exit path, including cancellation unwind.
func (h *HistoryStack) mark() histMark {
	return histMark{hashes: len(h.hashes), moves: len(h.moves)}
}

func (h *HistoryStack) rewind(m histMark) {
	h.hashes = h.hashes[:m.hashes]
	h.moves = h.moves[:m.moves]
}
