// Transposition table for the main search and quiescence probes.

package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// NodeKind classifies the score stored in a table entry.
type NodeKind uint8

const (
	PVNode  NodeKind = iota // exact score
	CutNode                 // lower bound, from a beta cutoff
	AllNode                 // upper bound, no move raised alpha
)

type TTEntry struct {
	Key      uint64
	Eval     Eval
	BestMove dragon.Move
	Depth    int16
	Kind     NodeKind
	Age      uint32
}

// TTable is a fixed-capacity direct-address table. Each hash maps to
// exactly one slot; collisions are resolved by the replacement policy in
// TryStore and detected on probe by the Key field.
type TTable struct {
	entries []TTEntry
	mask    uint64
}

const ttEntrySize = 24 // bytes, approximately

func roundPowerOfTwo(size int) int {
	x := 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

func NewTTable(megabytes int) *TTable {
	size := roundPowerOfTwo(megabytes * 1024 * 1024 / ttEntrySize)
	return &TTable{
		entries: make([]TTEntry, size),
		mask:    uint64(size - 1),
	}
}

func (tt *TTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Probe returns the slot the hash maps to. The caller must check Key
// before trusting anything else in the entry.
func (tt *TTable) Probe(hash uint64) *TTEntry {
	return &tt.entries[hash&tt.mask]
}

// Store unconditionally overwrites the slot.
func (tt *TTable) Store(hash uint64, depth int16, eval Eval, move dragon.Move, kind NodeKind, age uint32) {
	tt.entries[hash&tt.mask] = TTEntry{
		Key:      hash,
		Eval:     eval,
		BestMove: move,
		Depth:    depth,
		Kind:     kind,
		Age:      age,
	}
}

// TryStore overwrites only if the incumbent is empty, from an older search,
// or no deeper than the new entry.
func (tt *TTable) TryStore(hash uint64, depth int16, eval Eval, move dragon.Move, kind NodeKind, age uint32) {
	entry := &tt.entries[hash&tt.mask]
	if entry.Key == 0 || entry.Age < age || entry.Depth <= depth {
		*entry = TTEntry{
			Key:      hash,
			Eval:     eval,
			BestMove: move,
			Depth:    depth,
			Kind:     kind,
			Age:      age,
		}
	}
}
