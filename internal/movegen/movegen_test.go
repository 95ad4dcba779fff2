package movegen

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

func TestGenerateFromStartingPositionHas20Moves(t *testing.T) {
	ensureMagics(t)
	b := position.NewBoard()
	moves := Generate(b)
	assert.Len(t, moves, 20)
	for _, m := range moves {
		assert.False(t, m.IsCapture())
		assert.False(t, m.IsCastle())
	}
}

func TestGenerateStartingPositionHasEightDoublePushes(t *testing.T) {
	ensureMagics(t)
	b := position.NewBoard()
	moves := Generate(b)
	doublePushes := 0
	for _, m := range moves {
		if m.FromPiece() == Pawn && m.ToSquare().RankOf() == Rank4 {
			doublePushes++
		}
	}
	assert.Equal(t, 8, doublePushes)
}

func TestGenerateCaptureEmitted(t *testing.T) {
	ensureMagics(t)
	white := NewWhitePieceSet()
	black := NewBlackPieceSet()
	// Move the white c1 bishop to b6, where it attacks the black pawns
	// on a7 and c7; the test looks for the capture on a7.
	white.ClearBit(Bishop, SqC1)
	white.SetBit(Bishop, SqB6)
	b, err := position.NewBuilder().
		SetPieces(White, white, black).
		SetWKCastling(true).SetWQCastling(true).
		SetBKCastling(true).SetBQCastling(true).
		Build()
	require.NoError(t, err)

	moves := Generate(b)
	found := false
	for _, m := range moves {
		if m.FromPiece() == Bishop && m.FromSquare() == SqB6 && m.ToSquare() == SqA7 {
			require.True(t, m.IsCapture())
			assert.Equal(t, Pawn, m.ToPiece())
			found = true
		}
	}
	assert.True(t, found, "expected bishop on b6 to capture pawn on a7")
}

func TestGeneratePromotion(t *testing.T) {
	ensureMagics(t)
	var white, black PieceSet
	white.SetBit(King, SqE1)
	white.SetBit(Pawn, SqA7)
	black.SetBit(King, SqE8)

	b, err := position.NewBuilder().SetPieces(White, white, black).Build()
	require.NoError(t, err)

	moves := Generate(b)
	promos := 0
	for _, m := range moves {
		if m.FromSquare() == SqA7 && m.IsPromo() {
			promos++
		}
	}
	assert.Equal(t, 4, promos)
}

func TestGenerateEnPassant(t *testing.T) {
	ensureMagics(t)
	var white, black PieceSet
	white.SetBit(King, SqE1)
	white.SetBit(Pawn, SqD5)
	black.SetBit(King, SqE8)
	black.SetBit(Pawn, SqE5)

	b, err := position.NewBuilder().
		SetPieces(White, white, black).
		SetEnPassantFile(FileE).
		Build()
	require.NoError(t, err)

	moves := Generate(b)
	found := false
	for _, m := range moves {
		if m.IsEnPassant() {
			assert.Equal(t, SqD5, m.FromSquare())
			assert.Equal(t, SqE6, m.ToSquare())
			assert.Equal(t, SqE5, m.PassantSquare())
			found = true
		}
	}
	assert.True(t, found, "expected an en-passant capture")
}

func TestGenerateCastlingBlockedByPiece(t *testing.T) {
	ensureMagics(t)
	b := position.NewBoard()
	moves := Generate(b)
	for _, m := range moves {
		assert.False(t, m.IsCastle(), "no castle should be available through blocking pieces at game start")
	}
}

func TestGenerateCastlingWhenClear(t *testing.T) {
	ensureMagics(t)
	var white, black PieceSet
	white.SetBit(King, SqE1)
	white.SetBit(Rook, SqA1)
	white.SetBit(Rook, SqH1)
	black.SetBit(King, SqE8)

	b, err := position.NewBuilder().
		SetPieces(White, white, black).
		SetWKCastling(true).
		SetWQCastling(true).
		Build()
	require.NoError(t, err)

	moves := Generate(b)
	kingside, queenside := false, false
	for _, m := range moves {
		if m.IsCastle() && m.IsKingside() {
			kingside = true
		}
		if m.IsCastle() && !m.IsKingside() {
			queenside = true
		}
	}
	assert.True(t, kingside)
	assert.True(t, queenside)
}

func TestGenerateCastlingSuppressedWhenKingInCheck(t *testing.T) {
	ensureMagics(t)
	var white, black PieceSet
	white.SetBit(King, SqE1)
	white.SetBit(Rook, SqA1)
	white.SetBit(Rook, SqH1)
	black.SetBit(King, SqE8)
	black.SetBit(Rook, SqE5) // attacks down the e-file onto e1, the king's origin square

	b, err := position.NewBuilder().
		SetPieces(White, white, black).
		SetWKCastling(true).
		SetWQCastling(true).
		Build()
	require.NoError(t, err)
	require.True(t, b.InCheck(), "black rook on e5 must put the white king in check")

	moves := Generate(b)
	for _, m := range moves {
		assert.False(t, m.IsCastle(), "king in check must not be allowed to castle out of it")
	}
}

func TestGenerateKingsideCastlingSuppressedWhenTransitSquareAttacked(t *testing.T) {
	ensureMagics(t)
	var white, black PieceSet
	white.SetBit(King, SqE1)
	white.SetBit(Rook, SqA1)
	white.SetBit(Rook, SqH1)
	black.SetBit(King, SqE8)
	black.SetBit(Rook, SqF5) // attacks down the f-file onto f1, the kingside transit square

	b, err := position.NewBuilder().
		SetPieces(White, white, black).
		SetWKCastling(true).
		SetWQCastling(true).
		Build()
	require.NoError(t, err)
	require.False(t, b.InCheck())

	moves := Generate(b)
	kingside, queenside := false, false
	for _, m := range moves {
		if m.IsCastle() && m.IsKingside() {
			kingside = true
		}
		if m.IsCastle() && !m.IsKingside() {
			queenside = true
		}
	}
	assert.False(t, kingside, "f1 is attacked, so castling kingside must be suppressed")
	assert.True(t, queenside, "queenside crossing squares are untouched, so it must still be available")
}

func TestReportTalliesGeneratedMoves(t *testing.T) {
	ensureMagics(t)
	b := position.NewBoard()
	s := Report(b)
	assert.Equal(t, 20, s.Total)
	assert.Equal(t, 0, s.Captures)
}
