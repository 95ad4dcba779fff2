package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWhitePieceSetIsValid(t *testing.T) {
	ps := NewWhitePieceSet()
	assert.True(t, ps.IsValid())
	assert.Equal(t, 16, ps.All().PopCount())
	assert.Equal(t, SqE1.Bb(), ps.Get(King))
	assert.Equal(t, Rank2Bb, ps.Get(Pawn))
}

func TestNewBlackPieceSetIsValid(t *testing.T) {
	ps := NewBlackPieceSet()
	assert.True(t, ps.IsValid())
	assert.Equal(t, 16, ps.All().PopCount())
	assert.Equal(t, SqE8.Bb(), ps.Get(King))
	assert.Equal(t, Rank7Bb, ps.Get(Pawn))
}

func TestPieceSetSetClearUpdateBit(t *testing.T) {
	var ps PieceSet
	ps.SetBit(Pawn, SqE2)
	assert.Equal(t, Pawn, ps.FindType(SqE2))
	ps.UpdateBit(Pawn, Queen, SqE2)
	assert.Equal(t, Queen, ps.FindType(SqE2))
	ps.ClearBit(Queen, SqE2)
	assert.Equal(t, PtNone, ps.FindType(SqE2))
}

func TestPieceSetIsValidRejectsTwoKings(t *testing.T) {
	var ps PieceSet
	ps.SetBit(King, SqE1)
	ps.SetBit(King, SqE8)
	assert.False(t, ps.IsValid())
}

func TestPieceSetIsValidRejectsPawnOnBackRank(t *testing.T) {
	ps := NewWhitePieceSet()
	ps.SetBit(Pawn, SqE8)
	assert.False(t, ps.IsValid())
}

func TestPieceSetFlipMirrorsVertically(t *testing.T) {
	ps := NewWhitePieceSet()
	flipped := ps.Flip()
	assert.Equal(t, SqE8.Bb(), flipped.Get(King))
	assert.Equal(t, Rank7Bb, flipped.Get(Pawn))
}
