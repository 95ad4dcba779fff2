package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/oserr/blunder/internal/types"
)

func TestNewQuietMove(t *testing.T) {
	m := New(Knight, SqB1, SqC3)
	assert.Equal(t, Knight, m.FromPiece())
	assert.Equal(t, PtNone, m.ToPiece())
	assert.Equal(t, SqB1, m.FromSquare())
	assert.Equal(t, SqC3, m.ToSquare())
	assert.False(t, m.IsCapture())
	assert.True(t, m.IsValid())
}

func TestNewCaptureMove(t *testing.T) {
	m := NewCapture(Bishop, SqC4, Knight, SqF7)
	assert.Equal(t, Bishop, m.FromPiece())
	assert.Equal(t, Knight, m.ToPiece())
	assert.True(t, m.IsCapture())
}

func TestCastlingMoves(t *testing.T) {
	wk := WKCastle()
	assert.True(t, wk.IsCastle())
	assert.True(t, wk.IsKingside())
	assert.Equal(t, SqE1, wk.FromSquare())
	assert.Equal(t, SqG1, wk.ToSquare())

	wq := WQCastle()
	assert.True(t, wq.IsCastle())
	assert.False(t, wq.IsKingside())
	assert.Equal(t, SqC1, wq.ToSquare())

	bk := BKCastle()
	assert.Equal(t, SqE8, bk.FromSquare())
	assert.Equal(t, SqG8, bk.ToSquare())

	bq := BQCastle()
	assert.Equal(t, SqC8, bq.ToSquare())
}

func TestPromoMove(t *testing.T) {
	m := Promo(SqA7, SqA8, Queen)
	assert.True(t, m.IsPromo())
	assert.Equal(t, Queen, m.PromoPiece())
	assert.Equal(t, Pawn, m.FromPiece())
	assert.False(t, m.IsCapture())
}

func TestPromoCaptureMove(t *testing.T) {
	m := PromoCapture(SqB7, Rook, SqA8, Knight)
	assert.True(t, m.IsPromo())
	assert.True(t, m.IsCapture())
	assert.Equal(t, Knight, m.PromoPiece())
	assert.Equal(t, Rook, m.ToPiece())
}

func TestByEnPassant(t *testing.T) {
	m := ByEnPassant(SqE5, SqD6, SqD5)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
	assert.Equal(t, SqD5, m.PassantSquare())
}

func TestEq(t *testing.T) {
	a := New(Rook, SqA1, SqA4)
	b := New(Rook, SqA1, SqA4)
	c := New(Rook, SqA1, SqA5)
	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}

func TestStringFormat(t *testing.T) {
	m := New(Knight, SqB1, SqC3)
	assert.Equal(t, "{N:b1->c3}", m.String())

	cap := NewCapture(Bishop, SqC4, Knight, SqF7)
	assert.Equal(t, "{B:c4->f7!N}", cap.String())

	promo := Promo(SqA7, SqA8, Queen)
	assert.Equal(t, "{P:a7->a8^Q}", promo.String())
}

func TestNoneIsNotValid(t *testing.T) {
	assert.False(t, None.IsValid())
}
