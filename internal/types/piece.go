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

import "strings"

// PieceType enumerates the six chess piece kinds plus the empty marker
// None. The order and encoding (0..6) matches the packed Move field
// layout in the move package, so this order must not change without
// updating move.go's bit-width assumptions.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PtNone
	PtLength = 7
)

// IsValid reports whether pt is one of the six piece kinds (not PtNone).
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

var pieceTypeToChar = [PtLength]string{"K", "Q", "R", "B", "N", "P", "-"}

// Char returns the single uppercase letter for the piece type, or "-" for
// PtNone.
func (pt PieceType) Char() string {
	if pt >= PtLength {
		return "-"
	}
	return pieceTypeToChar[pt]
}

func (pt PieceType) String() string {
	names := [PtLength]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn", "None"}
	if pt >= PtLength {
		return "None"
	}
	return names[pt]
}

// Piece combines a color and a piece type, e.g. the letter used in FEN
// piece placement ("P" for a white pawn, "n" for a black knight).
type Piece struct {
	Color Color
	Type  PieceType
}

// Char returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Char() string {
	c := p.Type.Char()
	if p.Color == Black {
		return strings.ToLower(c)
	}
	return c
}
