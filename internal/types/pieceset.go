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

package types

// PieceSet holds one Bitboard per piece type for a single colour. It is
// the per-side piece store that Board (internal/position) embeds twice,
// once for white and once for black. Ported from the layout of
// original_source/src/piece_set.h, which keeps six independent bitboards
// rather than one combined 6-plane array.
type PieceSet struct {
	boards [PtLength - 1]Bitboard // indexed by King..Pawn, PtNone excluded
}

// NewWhitePieceSet returns the standard starting position piece set for
// White (pawns on rank 2, back rank pieces on rank 1).
func NewWhitePieceSet() PieceSet {
	var ps PieceSet
	ps.boards[King] = SqE1.Bb()
	ps.boards[Queen] = SqD1.Bb()
	ps.boards[Rook] = SqA1.Bb() | SqH1.Bb()
	ps.boards[Bishop] = SqC1.Bb() | SqF1.Bb()
	ps.boards[Knight] = SqB1.Bb() | SqG1.Bb()
	ps.boards[Pawn] = Rank2Bb
	return ps
}

// NewBlackPieceSet returns the standard starting position piece set for
// Black (pawns on rank 7, back rank pieces on rank 8).
func NewBlackPieceSet() PieceSet {
	var ps PieceSet
	ps.boards[King] = SqE8.Bb()
	ps.boards[Queen] = SqD8.Bb()
	ps.boards[Rook] = SqA8.Bb() | SqH8.Bb()
	ps.boards[Bishop] = SqC8.Bb() | SqF8.Bb()
	ps.boards[Knight] = SqB8.Bb() | SqG8.Bb()
	ps.boards[Pawn] = Rank7Bb
	return ps
}

// Get returns the bitboard of all squares occupied by pieces of type pt.
func (ps *PieceSet) Get(pt PieceType) Bitboard {
	if !pt.IsValid() {
		return BbZero
	}
	return ps.boards[pt]
}

// All returns the union of every piece type: every square this side
// occupies.
func (ps *PieceSet) All() Bitboard {
	var u Bitboard
	for pt := King; pt < PtNone; pt++ {
		u |= ps.boards[pt]
	}
	return u
}

// SetBit adds sq to the bitboard of piece type pt.
func (ps *PieceSet) SetBit(pt PieceType, sq Square) {
	ps.boards[pt] = ps.boards[pt].Set(sq)
}

// ClearBit removes sq from the bitboard of piece type pt.
func (ps *PieceSet) ClearBit(pt PieceType, sq Square) {
	ps.boards[pt] = ps.boards[pt].Clear(sq)
}

// UpdateBit moves sq from the bitboard of piece type from to the
// bitboard of piece type to, used for promotion where a pawn's square
// becomes a queen/rook/bishop/knight's square in place.
func (ps *PieceSet) UpdateBit(from, to PieceType, sq Square) {
	ps.ClearBit(from, sq)
	ps.SetBit(to, sq)
}

// FindType returns the piece type occupying sq, or PtNone if the square
// is empty in this set.
func (ps *PieceSet) FindType(sq Square) PieceType {
	for pt := King; pt < PtNone; pt++ {
		if ps.boards[pt].Has(sq) {
			return pt
		}
	}
	return PtNone
}

// IsValid reports whether the set satisfies the basic structural
// invariants of a legal single-side piece placement: exactly one king,
// no pawns on the back ranks, no two piece types sharing a square, and
// no more than 16 pieces total.
func (ps *PieceSet) IsValid() bool {
	if ps.boards[King].PopCount() != 1 {
		return false
	}
	if ps.boards[Pawn]&(Rank1Bb|Rank8Bb) != BbZero {
		return false
	}
	var seen Bitboard
	total := 0
	for pt := King; pt < PtNone; pt++ {
		bb := ps.boards[pt]
		if bb&seen != BbZero {
			return false
		}
		seen |= bb
		total += bb.PopCount()
	}
	return total <= 16
}

// Flip mirrors every piece's square vertically (rank r -> rank 7-r),
// turning a set built for one colour's perspective into the view from
// the opposite edge of the board. Ported from PieceSet::flip in
// original_source/src/piece_set.h, used when a caller wants a
// colour-agnostic "from the side to move" view of the board.
func (ps *PieceSet) Flip() PieceSet {
	var out PieceSet
	for pt := King; pt < PtNone; pt++ {
		bb := ps.boards[pt]
		var flipped Bitboard
		for bb != BbZero {
			sq := bb.PopLsb()
			mirrored := SquareOf(sq.FileOf(), Rank8-sq.RankOf())
			flipped = flipped.Set(mirrored)
		}
		out.boards[pt] = flipped
	}
	return out
}
