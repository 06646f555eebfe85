package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// Hasher produces XOR deltas for the running position hash owned by the
// search. Without a Hasher the running hash stays 0 and the transposition
// table and repetition detection are disabled.
type Hasher interface {
	// IncrementalUpdate returns the delta between the positions before and
	// after m, such that hashBefore ^ delta == hashAfter.
	IncrementalUpdate(m dragon.Move, before, after *dragon.Board) uint64
	// NullUpdate returns the delta for passing the turn (side flips,
	// en-passant state cleared).
	NullUpdate(pos *dragon.Board) uint64
}

// ZobristHasher derives deltas from the board library's own zobrist keys.
type ZobristHasher struct{}

func (ZobristHasher) IncrementalUpdate(m dragon.Move, before, after *dragon.Board) uint64 {
	return before.Hash() ^ after.Hash()
}

func (ZobristHasher) NullUpdate(pos *dragon.Board) uint64 {
	bnull := *pos
	bnull.ApplyNullMove()
	return pos.Hash() ^ bnull.Hash()
}
