package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dragon "github.com/dylhunn/dragontoothmg"
)

func drainMoves(b *dragon.Board, mo *moveOrder) []dragon.Move {
	var out []dragon.Move
	for {
		m, ok := mo.Next(b)
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

func TestMoveOrderYieldsEveryLegalMoveOnce(t *testing.T) {
	b := dragon.ParseFen("r1bqkbnr/ppp2ppp/2n5/3pp3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 4")
	legal := b.GenerateLegalMoves()

	got := drainMoves(&b, newMoveOrder(nil, &b, 0))
	require.Len(t, got, len(legal))
	seen := map[dragon.Move]bool{}
	for _, m := range got {
		assert.False(t, seen[m], "move %s yielded twice", moveString(m))
		seen[m] = true
	}
	for _, m := range legal {
		assert.True(t, seen[m], "move %s never yielded", moveString(m))
	}
}

func TestMoveOrderTTMoveFirst(t *testing.T) {
	b := dragon.ParseFen("r1bqkbnr/ppp2ppp/2n5/3pp3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 4")
	hash := b.Hash()
	quiet := findMove(t, &b, "a2a3")

	tt := NewTTable(1)
	tt.Store(hash, 3, 0, quiet, PVNode, 1)

	got := drainMoves(&b, newMoveOrder(tt, &b, hash))
	require.NotEmpty(t, got)
	assert.Equal(t, quiet, got[0], "TT move should be yielded first even when quiet")
}

func TestMoveOrderIgnoresIllegalTTMove(t *testing.T) {
	b := dragon.ParseFen("r1bqkbnr/ppp2ppp/2n5/3pp3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 4")
	hash := b.Hash()

	// A hash collision can hand us a move from an unrelated position.
	bogus, err := dragon.ParseMove("h8g8")
	require.NoError(t, err)

	tt := NewTTable(1)
	tt.Store(hash, 3, 0, bogus, PVNode, 1)

	got := drainMoves(&b, newMoveOrder(tt, &b, hash))
	require.Len(t, got, len(b.GenerateLegalMoves()))
	for _, m := range got {
		assert.NotEqual(t, bogus, m)
	}
}

func TestMoveOrderCapturesBeforeQuiets(t *testing.T) {
	// exd5 is the only capture and wins material; it must come first.
	b := dragon.ParseFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	capture := findMove(t, &b, "e4d5")

	got := drainMoves(&b, newMoveOrder(nil, &b, 0))
	require.NotEmpty(t, got)
	assert.Equal(t, capture, got[0])
}

func TestMoveOrderDefersLosingCaptures(t *testing.T) {
	// Rxd5 loses the exchange, so it goes behind the quiet moves.
	b := dragon.ParseFen("1k6/8/2p5/3p4/3R4/8/8/1K6 w - - 0 1")
	losing := findMove(t, &b, "d4d5")

	got := drainMoves(&b, newMoveOrder(nil, &b, 0))
	require.NotEmpty(t, got)
	assert.Equal(t, losing, got[len(got)-1])

	count := 0
	for _, m := range got {
		if m == losing {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
