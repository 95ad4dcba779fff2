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

// Package encoding maps a Move into the AlphaZero action space (C12):
// a (row, col) origin square plus a plane in [0,72]. Ported from
// original_source/src/coding_util.cc's encode_move/encode_knight_move/
// encode_under_promo/encode_queen_move, with the degenerate 0-distance
// queen-move case guarded per spec.md §9 item 4 (the source asserts
// it away; this returns an error instead since a real Move should
// never hit it, but untrusted callers should get a value, not a
// panic).
package encoding

import (
	"errors"

	"github.com/oserr/blunder/internal/move"
	. "github.com/oserr/blunder/internal/types"
)

// Number of planes per action-space category, from spec.md §4.12.
const (
	QueenPlanes         = 56 // planes 0-55
	KnightPlaneOffset   = QueenPlanes
	KnightPlanes        = 8 // planes 56-63
	UnderPromoOffset    = KnightPlaneOffset + KnightPlanes
	UnderPromoPlanes    = 9 // planes 64-72
	TotalPlanes         = UnderPromoOffset + UnderPromoPlanes // 73
)

// ErrDegenerateMove is returned when a move's origin and destination
// squares coincide, which has no direction/distance encoding.
var ErrDegenerateMove = errors.New("encoding: move has zero row/col distance")

// ErrNoPiece is returned when encoding a move with no piece set.
var ErrNoPiece = errors.New("encoding: move has no piece")

// Encoded is a Move rewritten as an AlphaZero action: the square it
// moves from (Row, Col, both 0-7) and a plane in [0, TotalPlanes).
type Encoded struct {
	Row, Col int
	Plane    int
}

// Encode maps m to its AlphaZero action-space encoding.
func Encode(m move.Move) (Encoded, error) {
	piece := m.FromPiece()
	if piece == PtNone {
		return Encoded{}, ErrNoPiece
	}

	fromRow, fromCol := rowCol(m.FromSquare())
	toRow, toCol := rowCol(m.ToSquare())
	rowDiff := toRow - fromRow
	colDiff := toCol - fromCol

	if rowDiff == 0 && colDiff == 0 {
		return Encoded{}, ErrDegenerateMove
	}

	enc := Encoded{Row: fromRow, Col: fromCol}

	if piece == Knight {
		enc.Plane = KnightPlaneOffset + encodeKnightMove(rowDiff, colDiff)
		return enc, nil
	}

	if piece == Pawn && m.IsPromo() && m.PromoPiece() != Queen {
		enc.Plane = UnderPromoOffset + encodeUnderPromo(colDiff, m.PromoPiece())
		return enc, nil
	}

	enc.Plane = encodeQueenMove(rowDiff, colDiff)
	return enc, nil
}

func rowCol(sq Square) (row, col int) {
	return int(sq.RankOf()), int(sq.FileOf())
}

// encodeKnightMove maps one of the 8 knight offsets to [0,7].
func encodeKnightMove(rowDiff, colDiff int) int {
	switch {
	case rowDiff < 0 && colDiff < 0: // lower-left quadrant
		if rowDiff == -2 {
			return 0
		}
		return 1
	case rowDiff > 0 && colDiff < 0: // upper-left quadrant
		if rowDiff == 1 {
			return 2
		}
		return 3
	case rowDiff > 0 && colDiff > 0: // upper-right quadrant
		if rowDiff == 2 {
			return 4
		}
		return 5
	default: // lower-right quadrant
		if rowDiff == -1 {
			return 6
		}
		return 7
	}
}

// encodeUnderPromo maps a Rook/Bishop/Knight underpromotion, by
// capture direction, to [0,8].
func encodeUnderPromo(colDiff int, piece PieceType) int {
	code := 0
	switch piece {
	case Rook:
		code = 0
	case Bishop:
		code = 3
	case Knight:
		code = 6
	}
	switch colDiff {
	case 0:
		code += 1
	case 1:
		code += 2
	}
	return code
}

// encodeQueenMove maps an 8-direction x 7-distance queen-like move to
// [0,55]. Direction ordering follows
// original_source/src/coding_util.cc's encode_queen_move exactly: a
// negative row_diff (moving toward rank 1) comes first, split by
// column direction, then zero row_diff split by column direction,
// then positive row_diff split by column direction.
func encodeQueenMove(rowDiff, colDiff int) int {
	if rowDiff < 0 {
		nrows := -rowDiff
		switch {
		case colDiff == 0:
			return nrows - 1
		case colDiff < 0:
			return 7 + nrows - 1
		default:
			return 14 + nrows - 1
		}
	}
	if rowDiff == 0 {
		if colDiff < 0 {
			return 21 + (-colDiff) - 1
		}
		return 28 + colDiff - 1
	}
	switch {
	case colDiff == 0:
		return 35 + rowDiff - 1
	case colDiff < 0:
		return 42 + rowDiff - 1
	default:
		return 49 + rowDiff - 1
	}
}
