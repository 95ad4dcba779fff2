package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oserr/blunder/internal/move"
	. "github.com/oserr/blunder/internal/types"
)

func TestEncodeQueenLikeMoveFallsInQueenPlanes(t *testing.T) {
	m := move.New(Rook, SqA1, SqA5)
	enc, err := Encode(m)
	assert.NoError(t, err)
	assert.Equal(t, 0, enc.Row)
	assert.Equal(t, 0, enc.Col)
	assert.True(t, enc.Plane >= 0 && enc.Plane < QueenPlanes)
}

func TestEncodeQueenPromotionUsesQueenPlanesNotUnderPromo(t *testing.T) {
	m := move.Promo(SqA7, SqA8, Queen)
	enc, err := Encode(m)
	assert.NoError(t, err)
	assert.True(t, enc.Plane < QueenPlanes, "queen promotion must not be distinguished from a queen-like move")
}

func TestEncodeKnightMoveFallsInKnightPlanes(t *testing.T) {
	m := move.New(Knight, SqB1, SqC3)
	enc, err := Encode(m)
	assert.NoError(t, err)
	assert.True(t, enc.Plane >= KnightPlaneOffset && enc.Plane < KnightPlaneOffset+KnightPlanes)
}

func TestEncodeAllEightKnightOffsetsAreDistinct(t *testing.T) {
	offsets := [][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	seen := map[int]bool{}
	for _, o := range offsets {
		code := encodeKnightMove(o[0], o[1])
		assert.False(t, seen[code], "duplicate knight code %d", code)
		seen[code] = true
		assert.True(t, code >= 0 && code < KnightPlanes)
	}
	assert.Len(t, seen, 8)
}

func TestEncodeUnderPromotionFallsInUnderPromoPlanes(t *testing.T) {
	m := move.Promo(SqA7, SqA8, Rook)
	enc, err := Encode(m)
	assert.NoError(t, err)
	assert.True(t, enc.Plane >= UnderPromoOffset && enc.Plane < UnderPromoOffset+UnderPromoPlanes)
}

func TestEncodeUnderPromotionCaptureLeftAndRightDiffer(t *testing.T) {
	left := encodeUnderPromo(-1, Bishop)
	straight := encodeUnderPromo(0, Bishop)
	right := encodeUnderPromo(1, Bishop)
	assert.NotEqual(t, left, straight)
	assert.NotEqual(t, straight, right)
	assert.NotEqual(t, left, right)
}

func TestEncodeDegenerateMoveReturnsError(t *testing.T) {
	m := move.New(Rook, SqA1, SqA1)
	_, err := Encode(m)
	assert.ErrorIs(t, err, ErrDegenerateMove)
}

func TestEncodeNoPieceReturnsError(t *testing.T) {
	_, err := Encode(move.None)
	assert.ErrorIs(t, err, ErrNoPiece)
}

func TestEncodeCastleUsesQueenPlanes(t *testing.T) {
	enc, err := Encode(move.WKCastle())
	assert.NoError(t, err)
	assert.True(t, enc.Plane < QueenPlanes)
}

func TestEncodeQueenMoveDirectionsAreAllDistinctWithinDistance(t *testing.T) {
	dirs := [][2]int{
		{-1, 0}, {-1, -1}, {-1, 1},
		{0, -1}, {0, 1},
		{1, 0}, {1, -1}, {1, 1},
	}
	seen := map[int]bool{}
	for _, d := range dirs {
		code := encodeQueenMove(d[0], d[1])
		assert.False(t, seen[code], "duplicate queen code %d for dir %v", code, d)
		seen[code] = true
		assert.True(t, code >= 0 && code < QueenPlanes)
	}
}

func TestEncodeQueenMoveDistanceSpansSevenPerDirection(t *testing.T) {
	seen := map[int]bool{}
	for dist := 1; dist <= 7; dist++ {
		code := encodeQueenMove(0, dist)
		assert.False(t, seen[code])
		seen[code] = true
	}
	assert.Len(t, seen, 7)
}
