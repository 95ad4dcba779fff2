/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package move defines the packed Move representation shared by the
// board and move generator. Ported from original_source/src/move.h's
// bitfield struct (from_piece:3, to_piece:3, from_square:6, to_square:6,
// passant_square:6, castle:1, kside:1, en_passant:1, is_promo:1,
// promo_piece:3) into a single packed uint32, the way the teacher's
// pkg/types/move.go packs its own Move into one integer with shifts
// instead of per-field struct members.
package move

import (
	"fmt"
	"strings"

	. "github.com/oserr/blunder/internal/types"
)

// Move is a packed 32-bit encoding of a chess move. Field layout,
// widths, and bit order match original_source/src/move.h exactly so
// that move semantics can be cross-checked against it field by field.
//
//	bit:   0-2      3-5      6-11        12-17     18-23           24      25     26         27       28-30
//	field: fromPiece toPiece fromSquare toSquare passantSquare castle kside enPassant isPromo promoPiece
type Move uint32

const (
	fromPieceShift     = 0
	toPieceShift       = 3
	fromSquareShift    = 6
	toSquareShift      = 12
	passantSquareShift = 18
	castleShift        = 24
	ksideShift         = 25
	enPassantShift     = 26
	isPromoShift       = 27
	promoPieceShift    = 28

	pieceBits  Move = 0x7 // 3 bits
	squareBits Move = 0x3F // 6 bits
	flagBit    Move = 0x1 // 1 bit
)

// None is the sentinel "no move" value: both piece fields set to
// PtNone, which no constructor below ever produces for a real move.
const None Move = Move(PtNone)<<fromPieceShift | Move(PtNone)<<toPieceShift

// IsValid reports whether m looks like a real move: not None, with
// valid squares and a real (non-None) piece being moved.
func (m Move) IsValid() bool {
	return m != None &&
		m.FromPiece().IsValid() &&
		m.FromSquare().IsValid() &&
		m.ToSquare().IsValid()
}

// New returns a quiet (non-capturing) move of fromPiece from fromSq to
// toSq.
func New(fromPiece PieceType, fromSq, toSq Square) Move {
	return Move(fromPiece)<<fromPieceShift |
		Move(PtNone)<<toPieceShift |
		Move(fromSq)<<fromSquareShift |
		Move(toSq)<<toSquareShift
}

// NewCapture returns a move of fromPiece from fromSq to toSq that
// captures toPiece.
func NewCapture(fromPiece PieceType, fromSq Square, toPiece PieceType, toSq Square) Move {
	return Move(fromPiece)<<fromPieceShift |
		Move(toPiece)<<toPieceShift |
		Move(fromSq)<<fromSquareShift |
		Move(toSq)<<toSquareShift
}

// WKCastle, WQCastle, BKCastle, BQCastle return the four castling
// moves as king moves with castle/kside set, squares matching
// original_source/src/move.h's wk_castle/wq_castle/bk_castle/bq_castle
// (e1->g1, e1->c1, e8->g8, e8->c8 respectively).
func WKCastle() Move {
	return New(King, SqE1, SqG1) | Move(1)<<castleShift | Move(1)<<ksideShift
}

func WQCastle() Move {
	return New(King, SqE1, SqC1) | Move(1)<<castleShift
}

func BKCastle() Move {
	return New(King, SqE8, SqG8) | Move(1)<<castleShift | Move(1)<<ksideShift
}

func BQCastle() Move {
	return New(King, SqE8, SqC8) | Move(1)<<castleShift
}

// Promo returns a pawn promotion move without capture.
func Promo(fromSq, toSq Square, promo PieceType) Move {
	m := New(Pawn, fromSq, toSq)
	return m | Move(1)<<isPromoShift | Move(promo)<<promoPieceShift
}

// PromoCapture returns a pawn promotion move that captures toPiece.
func PromoCapture(fromSq Square, toPiece PieceType, toSq Square, promo PieceType) Move {
	m := NewCapture(Pawn, fromSq, toPiece, toSq)
	return m | Move(1)<<isPromoShift | Move(promo)<<promoPieceShift
}

// ByEnPassant returns an en-passant capture: a pawn move whose
// captured pawn sits on passantSq rather than toSq.
func ByEnPassant(fromSq, toSq, passantSq Square) Move {
	m := New(Pawn, fromSq, toSq)
	return m | Move(passantSq)<<passantSquareShift | Move(1)<<enPassantShift
}

// FromPiece returns the type of the piece being moved.
func (m Move) FromPiece() PieceType {
	return PieceType((m >> fromPieceShift) & pieceBits)
}

// ToPiece returns the type of the captured piece, or PtNone if this
// move is not a capture.
func (m Move) ToPiece() PieceType {
	return PieceType((m >> toPieceShift) & pieceBits)
}

// FromSquare returns the square the moved piece starts on.
func (m Move) FromSquare() Square {
	return Square((m >> fromSquareShift) & squareBits)
}

// ToSquare returns the square the moved piece ends on.
func (m Move) ToSquare() Square {
	return Square((m >> toSquareShift) & squareBits)
}

// PassantSquare returns the square of the captured pawn on an
// en-passant move; meaningless unless IsEnPassant is true.
func (m Move) PassantSquare() Square {
	return Square((m >> passantSquareShift) & squareBits)
}

// IsCastle reports whether this move castles.
func (m Move) IsCastle() bool {
	return (m>>castleShift)&flagBit != 0
}

// IsKingside reports whether a castling move castles kingside;
// meaningless unless IsCastle is true.
func (m Move) IsKingside() bool {
	return (m>>ksideShift)&flagBit != 0
}

// IsEnPassant reports whether this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return (m>>enPassantShift)&flagBit != 0
}

// IsPromo reports whether this move promotes a pawn.
func (m Move) IsPromo() bool {
	return (m>>isPromoShift)&flagBit != 0
}

// PromoPiece returns the piece type a pawn promotes to; meaningless
// unless IsPromo is true.
func (m Move) PromoPiece() PieceType {
	return PieceType((m >> promoPieceShift) & pieceBits)
}

// IsCapture reports whether this move captures a piece, either
// directly (ToPiece valid) or via en passant.
func (m Move) IsCapture() bool {
	return m.ToPiece() != PtNone || m.IsEnPassant()
}

// Eq reports whether m and other encode the same move, field by
// field, following original_source/src/move.cc's operator==.
func (m Move) Eq(other Move) bool {
	return m.FromPiece() == other.FromPiece() &&
		m.ToPiece() == other.ToPiece() &&
		m.FromSquare() == other.FromSquare() &&
		m.ToSquare() == other.ToSquare() &&
		m.PassantSquare() == other.PassantSquare() &&
		m.IsCastle() == other.IsCastle() &&
		m.IsKingside() == other.IsKingside() &&
		m.IsEnPassant() == other.IsEnPassant() &&
		m.IsPromo() == other.IsPromo() &&
		m.PromoPiece() == other.PromoPiece()
}

// String renders a debug form "{P:from->to}" with "!" marking a
// captured piece and "^" marking a promotion piece, following
// original_source/src/move.h's documented str() format.
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	sb.WriteString(m.FromPiece().Char())
	sb.WriteString(":")
	sb.WriteString(m.FromSquare().String())
	sb.WriteString("->")
	sb.WriteString(m.ToSquare().String())
	if m.ToPiece() != PtNone {
		sb.WriteString(fmt.Sprintf("!%s", m.ToPiece().Char()))
	}
	if m.IsEnPassant() {
		sb.WriteString(fmt.Sprintf("!ep(%s)", m.PassantSquare().String()))
	}
	if m.IsPromo() {
		sb.WriteString(fmt.Sprintf("^%s", m.PromoPiece().Char()))
	}
	if m.IsCastle() {
		if m.IsKingside() {
			sb.WriteString(",O-O")
		} else {
			sb.WriteString(",O-O-O")
		}
	}
	sb.WriteString("}")
	return sb.String()
}
