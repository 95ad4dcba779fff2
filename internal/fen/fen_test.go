package fen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oserr/blunder/internal/magic"
	"github.com/oserr/blunder/internal/position"
	. "github.com/oserr/blunder/internal/types"
)

var magicsOnce sync.Once

func ensureMagics(t *testing.T) {
	t.Helper()
	magicsOnce.Do(func() {
		a, err := magic.NewAttacks(magic.SimpleComputer{MaxIterations: 50_000_000})
		require.NoError(t, err)
		position.RegisterMagics(a)
	})
}

func TestReadStartingPosition(t *testing.T) {
	ensureMagics(t)
	b, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.True(t, b.Eq(position.NewBoard()))
}

func TestReadBlackToMove(t *testing.T) {
	ensureMagics(t)
	b, err := Read("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	assert.False(t, b.IsWhiteNext())
	assert.True(t, b.White().Get(Pawn).Has(SqE4))
}

func TestReadEnPassant(t *testing.T) {
	ensureMagics(t)
	b, err := Read("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	assert.True(t, b.HasEnPassant())
	assert.Equal(t, FileD, b.EnPassantFile())
}

func TestReadCastlingSubset(t *testing.T) {
	ensureMagics(t)
	b, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kq - 0 1")
	require.NoError(t, err)
	assert.True(t, b.HasWKCastling())
	assert.False(t, b.HasWQCastling())
	assert.False(t, b.HasBKCastling())
	assert.True(t, b.HasBQCastling())
}

func TestReadMissingField(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrMissingField, fenErr.Kind)
}

func TestReadInvalidPieceChar(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidPieceChar, fenErr.Kind)
}

func TestReadPieceRowInconsistent(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrPieceRowInconsistent, fenErr.Kind)
}

func TestReadInvalidRowCount(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidRow, fenErr.Kind)
}

func TestReadInvalidColor(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidColor, fenErr.Kind)
}

func TestReadInvalidCastling(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqx - 0 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidCastling, fenErr.Kind)
}

func TestReadInvalidEnPassant(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidEnPassant, fenErr.Kind)
}

func TestReadInvalidHalfMove(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidHalfMove, fenErr.Kind)
}

func TestReadHalfMoveOver100IsRejectedAtBuild(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 101 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidHalfMove, fenErr.Kind)
}

func TestReadInvalidFullMove(t *testing.T) {
	ensureMagics(t)
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidFullMove, fenErr.Kind)
}

func TestReadWhiteNotLogical(t *testing.T) {
	ensureMagics(t)
	// two white kings
	_, err := Read("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKKNR w KQkq - 0 1")
	require.Error(t, err)
	fenErr, ok := err.(*Err)
	require.True(t, ok)
	assert.Equal(t, ErrWhiteNotLogical, fenErr.Kind)
}
