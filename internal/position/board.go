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

// Package position holds Board, the chess position representation
// move generation operates on (C8). Ported from
// original_source/src/board.h's Board/BoardBuilder: piece sets are
// kept from the mover's perspective (Mine/Other) to simplify move
// generation, with White()/Black() accessors for callers that need a
// fixed-color view.
package position

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oserr/blunder/internal/attacks"
	"github.com/oserr/blunder/internal/magic"
	. "github.com/oserr/blunder/internal/types"
)

var (
	magicsOnce sync.Once
	slidingAttacks *magic.Attacks
)

// RegisterMagics installs the sliding-attack lookup table every Board
// uses to compute attacked squares and generate rook/bishop/queen
// moves. It must be called once before any Board is built or have
// SetAttacked/moves invoked; following calls after the first are
// no-ops, mirroring original_source/src/board.h's
// Board::register_magics write-once static fields.
func RegisterMagics(a *magic.Attacks) {
	magicsOnce.Do(func() {
		slidingAttacks = a
	})
}

// Board represents a chess position. Fields are written from the
// perspective of the player moving next: Mine is the side to move,
// Other is the side that just moved.
type Board struct {
	mine, other PieceSet
	attacked    Bitboard

	halfMove, fullMove uint16

	next Color

	enPassant     bool
	enPassantFile File

	wkCastle, wqCastle bool
	bkCastle, bqCastle bool

	inCheck bool
}

// Mine returns the piece set of the side to move.
func (b *Board) Mine() *PieceSet { return &b.mine }

// Other returns the piece set of the side that just moved.
func (b *Board) Other() *PieceSet { return &b.other }

// IsWhiteNext reports whether White is next to move.
func (b *Board) IsWhiteNext() bool { return b.next == White }

// Next returns the color to move.
func (b *Board) Next() Color { return b.next }

// AllMine returns every square occupied by the side to move.
func (b *Board) AllMine() Bitboard { return b.mine.All() }

// AllOther returns every square occupied by the side that just moved.
func (b *Board) AllOther() Bitboard { return b.other.All() }

// AllBits returns every occupied square on the board.
func (b *Board) AllBits() Bitboard { return b.AllMine() | b.AllOther() }

// Empty returns every unoccupied square on the board.
func (b *Board) Empty() Bitboard { return b.AllBits().Not() }

// White returns the white side's piece set regardless of whose turn it is.
func (b *Board) White() *PieceSet {
	if b.IsWhiteNext() {
		return &b.mine
	}
	return &b.other
}

// Black returns the black side's piece set regardless of whose turn it is.
func (b *Board) Black() *PieceSet {
	if b.IsWhiteNext() {
		return &b.other
	}
	return &b.mine
}

// HalfMoveCount returns the half-move (ply) clock used for the fifty-move rule.
func (b *Board) HalfMoveCount() uint16 { return b.halfMove }

// FullMoveCount returns the full-move counter.
func (b *Board) FullMoveCount() uint16 { return b.fullMove }

// HasEnPassant reports whether an en-passant capture is available this move.
func (b *Board) HasEnPassant() bool { return b.enPassant }

// EnPassantFile returns the file an en-passant capture targets;
// meaningless unless HasEnPassant is true.
func (b *Board) EnPassantFile() File { return b.enPassantFile }

// Attacked returns every square attacked by the side that just moved
// (Other), as of the last call to SetAttacked.
func (b *Board) Attacked() Bitboard { return b.attacked }

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.inCheck }

func (b *Board) HasWKCastling() bool { return b.wkCastle }
func (b *Board) HasWQCastling() bool { return b.wqCastle }
func (b *Board) HasBKCastling() bool { return b.bkCastle }
func (b *Board) HasBQCastling() bool { return b.bqCastle }

// SetAttacked recomputes b.attacked (every square attacked by Other)
// and b.inCheck (whether Mine's king sits on an attacked square). It
// must be called whenever the board's occupancy changes and before
// relying on Attacked/InCheck or castling legality.
func (b *Board) SetAttacked() {
	occ := b.AllBits()
	other := &b.other
	otherColor := b.next.Flip()

	var attacked Bitboard
	attacked |= leaperAttacksOf(other.Get(King), func(sq Square) Bitboard { return attacks.KingAttacks(sq) })
	attacked |= leaperAttacksOf(other.Get(Knight), func(sq Square) Bitboard { return attacks.KnightAttacks(sq) })
	attacked |= leaperAttacksOf(other.Get(Pawn), func(sq Square) Bitboard { return attacks.PawnAttacks(otherColor, sq) })

	// Sliders see through the moving king's own square: it cannot block
	// an attack along the ray it would have to step away from.
	occWithoutMyKing := occ &^ b.mine.Get(King)
	attacked |= sliderAttacksOf(other.Get(Rook), occWithoutMyKing, slidingAttacks.RookAttacks)
	attacked |= sliderAttacksOf(other.Get(Bishop), occWithoutMyKing, slidingAttacks.BishopAttacks)
	attacked |= sliderAttacksOf(other.Get(Queen), occWithoutMyKing, slidingAttacks.QueenAttacks)

	b.attacked = attacked
	b.inCheck = attacked.Has(b.mine.Get(King).Lsb())
}

// RookAttacksFrom returns the squares a rook on sq attacks given the
// board's current occupancy, via the registered magic lookup table.
func (b *Board) RookAttacksFrom(sq Square) Bitboard {
	return slidingAttacks.RookAttacks(sq, b.AllBits())
}

// BishopAttacksFrom returns the squares a bishop on sq attacks given
// the board's current occupancy, via the registered magic lookup table.
func (b *Board) BishopAttacksFrom(sq Square) Bitboard {
	return slidingAttacks.BishopAttacks(sq, b.AllBits())
}

// QueenAttacksFrom returns the squares a queen on sq attacks given the
// board's current occupancy, via the registered magic lookup table.
func (b *Board) QueenAttacksFrom(sq Square) Bitboard {
	return slidingAttacks.QueenAttacks(sq, b.AllBits())
}

func leaperAttacksOf(pieces Bitboard, attacksFn func(Square) Bitboard) Bitboard {
	var bb Bitboard
	for pieces != BbZero {
		sq := pieces.PopLsb()
		bb |= attacksFn(sq)
	}
	return bb
}

func sliderAttacksOf(pieces, occ Bitboard, attacksFn func(Square, Bitboard) Bitboard) Bitboard {
	var bb Bitboard
	for pieces != BbZero {
		sq := pieces.PopLsb()
		bb |= attacksFn(sq, occ)
	}
	return bb
}

//-----------------------------------------------------------------
// Castling legality.
//
// original_source/src/board.h checks castling legality with a packed
// bit-pattern trick (0b00001001/0b00001111 kingside,
// 0b10001000/0b11111000 queenside) applied to the low byte of
// occupancy|attacked. That trick does not correspond to this board's
// little-endian rank-file square numbering in any way that reproduces
// correctly, so rather than replicate a bit-for-bit mistranslation
// this checks the same real-world conditions directly: the squares
// the king crosses, including its origin and destination, must not
// be attacked, the crossing and destination squares must also be
// empty, and the corresponding castling right must still be held.
//-----------------------------------------------------------------

// WKCanCastle reports whether White may legally castle kingside right now.
func (b *Board) WKCanCastle() bool {
	return b.wkCastle && b.canCastleThrough(SqE1, SqF1, SqG1)
}

// WQCanCastle reports whether White may legally castle queenside right now.
func (b *Board) WQCanCastle() bool {
	return b.wqCastle && b.squaresEmpty(SqB1, SqC1, SqD1) && b.squaresNotAttacked(SqE1, SqC1, SqD1)
}

// BKCanCastle reports whether Black may legally castle kingside right now.
func (b *Board) BKCanCastle() bool {
	return b.bkCastle && b.canCastleThrough(SqE8, SqF8, SqG8)
}

// BQCanCastle reports whether Black may legally castle queenside right now.
func (b *Board) BQCanCastle() bool {
	return b.bqCastle && b.squaresEmpty(SqB8, SqC8, SqD8) && b.squaresNotAttacked(SqE8, SqC8, SqD8)
}

// canCastleThrough checks the king's origin, crossing, and
// destination squares: all three must be unattacked, and crossing and
// destination (the origin is occupied by the king itself) must be
// empty. Per spec.md §4.8 the king may not castle out of, through, or
// into check.
func (b *Board) canCastleThrough(origin, crossing, dest Square) bool {
	return b.squaresEmpty(crossing, dest) && b.squaresNotAttacked(origin, crossing, dest)
}

func (b *Board) squaresEmpty(squares ...Square) bool {
	occ := b.AllBits()
	for _, sq := range squares {
		if occ.Has(sq) {
			return false
		}
	}
	return true
}

func (b *Board) squaresNotAttacked(squares ...Square) bool {
	for _, sq := range squares {
		if b.attacked.Has(sq) {
			return false
		}
	}
	return true
}

// Eq reports whether b and other represent the same position
// (ignoring attacked-square cache and check flag, which are derived).
func (b *Board) Eq(other *Board) bool {
	return b.mine == other.mine &&
		b.other == other.other &&
		b.halfMove == other.halfMove &&
		b.fullMove == other.fullMove &&
		b.next == other.next &&
		b.enPassant == other.enPassant &&
		b.enPassantFile == other.enPassantFile &&
		b.wkCastle == other.wkCastle &&
		b.wqCastle == other.wqCastle &&
		b.bkCastle == other.bkCastle &&
		b.bqCastle == other.bqCastle
}

// NewBoard returns the standard chess starting position, White to move.
func NewBoard() *Board {
	b := &Board{
		mine:     NewWhitePieceSet(),
		other:    NewBlackPieceSet(),
		next:     White,
		fullMove: 1,
		wkCastle: true,
		wqCastle: true,
		bkCastle: true,
		bqCastle: true,
	}
	b.SetAttacked()
	return b
}

// String renders an 8x8 ASCII board from White's perspective with FEN
// piece letters, for debugging and log messages.
func (b *Board) String() string {
	white, black := b.White(), b.Black()
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f < FileLength; f++ {
			sq := SquareOf(f, r)
			ch := " "
			if pt := white.FindType(sq); pt != PtNone {
				ch = Piece{Color: White, Type: pt}.Char()
			} else if pt := black.FindType(sq); pt != PtNone {
				ch = Piece{Color: Black, Type: pt}.Char()
			}
			sb.WriteString(fmt.Sprintf("| %s ", ch))
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(fmt.Sprintf("%s to move, half-move %d, full-move %d\n", b.next, b.halfMove, b.fullMove))
	return sb.String()
}
