package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dragon "github.com/dylhunn/dragontoothmg"
)

func TestHistoryPushPop(t *testing.T) {
	var h HistoryStack
	h.Reset([]dragon.Move{1, 2}, []uint64{10, 20, 30})

	assert.Equal(t, 0, h.Ply())
	assert.Equal(t, uint32(3), h.Age())

	h.Push(40)
	h.PushMove(3)
	assert.Equal(t, 1, h.Ply())

	h.Pop()
	h.PopMove()
	assert.Equal(t, 0, h.Ply())
	assert.Equal(t, []uint64{10, 20, 30}, h.hashes)
	assert.Equal(t, []dragon.Move{1, 2}, h.moves)
}

func TestHistoryMarkRewind(t *testing.T) {
	var h HistoryStack
	h.Reset(nil, []uint64{10})

	m := h.mark()
	h.Push(20)
	h.PushMove(1)
	h.Push(30)
	h.rewind(m)

	assert.Equal(t, []uint64{10}, h.hashes)
	assert.Empty(t, h.moves)
}

func TestThreefoldSameSideOnly(t *testing.T) {
	var h HistoryStack

	// Three occurrences at even offsets from the top: a repetition.
	h.Reset(nil, []uint64{7, 1, 7, 2, 7})
	assert.True(t, h.Threefold())

	// The middle occurrence sits at an odd offset (opponent to move), so
	// it must not count.
	h.Reset(nil, []uint64{7, 7, 7})
	assert.False(t, h.Threefold())

	h.Reset(nil, []uint64{7, 1, 7})
	assert.False(t, h.Threefold())

	h.Reset(nil, nil)
	assert.False(t, h.Threefold())
}
