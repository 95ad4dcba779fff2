package boardpath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oserr/blunder/internal/position"
)

func boards(n int) []*position.Board {
	out := make([]*position.Board, n)
	for i := range out {
		out[i] = position.NewBoard()
	}
	return out
}

func TestPushAndLen(t *testing.T) {
	bp := New()
	for _, b := range boards(3) {
		bp.Push(b)
	}
	assert.Equal(t, 3, bp.Len())
	assert.False(t, bp.IsFull())
}

func TestPushStopsAtCapacity(t *testing.T) {
	bp := New()
	for _, b := range boards(Capacity + 5) {
		bp.Push(b)
	}
	assert.True(t, bp.IsFull())
	assert.Equal(t, Capacity, bp.Len())
}

func TestRootOnEmptyPath(t *testing.T) {
	bp := New()
	assert.Nil(t, bp.Root())
}

func TestRootIsFirstPushed(t *testing.T) {
	bs := boards(2)
	bp := New()
	bp.Push(bs[0])
	bp.Push(bs[1])
	assert.Same(t, bs[0], bp.Root())
}

func TestBoardsPreservesPushOrder(t *testing.T) {
	bs := boards(3)
	bp := New()
	for _, b := range bs {
		bp.Push(b)
	}
	got := bp.Boards()
	for i, b := range bs {
		assert.Same(t, b, got[i])
	}
}

func TestRevPushesFromLastElementForward(t *testing.T) {
	bs := boards(3)
	bp := Rev(bs)
	assert.Equal(t, 3, bp.Len())
	// rev pushes from the last element forward, so root is bs[2].
	assert.Same(t, bs[2], bp.Root())
	got := bp.Boards()
	assert.Same(t, bs[2], got[0])
	assert.Same(t, bs[1], got[1])
	assert.Same(t, bs[0], got[2])
}

func TestRevRespectsCapacity(t *testing.T) {
	bs := boards(Capacity + 3)
	bp := Rev(bs)
	assert.True(t, bp.IsFull())
	assert.Equal(t, Capacity, bp.Len())
}

func TestPushPathCopiesAcrossPaths(t *testing.T) {
	bs := boards(4)
	src := New()
	for _, b := range bs {
		src.Push(b)
	}
	dst := New()
	dst.PushPath(src)
	assert.Equal(t, 4, dst.Len())
	got := dst.Boards()
	for i, b := range bs {
		assert.Same(t, b, got[i])
	}
}
