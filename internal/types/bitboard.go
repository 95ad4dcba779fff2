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

// Package types holds the primitive chess data types shared by every other
// package in the engine: squares, files, ranks, colors, piece types and the
// Bitboard set-of-squares type with its constant-time mask tables.
package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square, bit i set means square
// i (see Square) is a member of the set.
type Bitboard uint64

// Direction is one of the eight compass directions a sliding piece or a
// single-step shift can move in.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	Northeast
	Northwest
	Southeast
	Southwest
)

const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File masks.
var fileBb = [FileLength]Bitboard{}

// Rank masks.
var rankBb = [RankLength]Bitboard{}

// FileA .. FileH as a Bitboard, and the two board-edge masks used
// everywhere to guard wraparound shifts.
var (
	FileABb Bitboard
	FileBBb Bitboard
	FileCBb Bitboard
	FileDBb Bitboard
	FileEBb Bitboard
	FileFBb Bitboard
	FileGBb Bitboard
	FileHBb Bitboard

	Rank1Bb Bitboard
	Rank2Bb Bitboard
	Rank3Bb Bitboard
	Rank4Bb Bitboard
	Rank5Bb Bitboard
	Rank6Bb Bitboard
	Rank7Bb Bitboard
	Rank8Bb Bitboard
)

// NotFileABb / NotFileHBb are the masks used to clear the wrap-around
// column before shifting a bitboard east or west.
var (
	NotFileABb Bitboard
	NotFileHBb Bitboard
)

// DiagA1H8Bb and DiagA8H1Bb anchor the two long diagonals; diagMask and
// fileRankMask are the per-square combined masks spec.md §4.1 requires.
var (
	DiagA1H8Bb Bitboard = 0x8040201008040201
	DiagA8H1Bb Bitboard = 0x0102040810204080
)

var diagMask [SqLength]Bitboard
var fileRankMask [SqLength]Bitboard

func init() {
	for f := FileA; f < FileLength; f++ {
		fileBb[f] = 0x0101010101010101 << uint(f)
	}
	for r := Rank1; r < RankLength; r++ {
		rankBb[r] = 0xFF << (8 * uint(r))
	}

	FileABb, FileBBb, FileCBb, FileDBb = fileBb[FileA], fileBb[FileB], fileBb[FileC], fileBb[FileD]
	FileEBb, FileFBb, FileGBb, FileHBb = fileBb[FileE], fileBb[FileF], fileBb[FileG], fileBb[FileH]
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb = rankBb[Rank1], rankBb[Rank2], rankBb[Rank3], rankBb[Rank4]
	Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb = rankBb[Rank5], rankBb[Rank6], rankBb[Rank7], rankBb[Rank8]

	NotFileABb = ^FileABb
	NotFileHBb = ^FileHBb

	// Every square's combined file+rank mask and combined diagonal mask,
	// built from first principles rather than emitted as raw literals —
	// see TestDiagMaskOf / TestFileRankMaskOf for the
	// cross-check spec.md §4.1 requires of derived constant tables.
	for sq := SqA1; sq < SqLength; sq++ {
		fileRankMask[sq] = sq.FileOf().Bb() | sq.RankOf().Bb()
		diagMask[sq] = diagonalMaskOf(sq)
	}
}

// diagonalMaskOf walks all four diagonal rays from sq on an empty board
// and unions them, giving the two diagonals passing through sq.
func diagonalMaskOf(sq Square) Bitboard {
	var bb Bitboard
	for _, d := range []Direction{Northeast, Northwest, Southeast, Southwest} {
		s := sq
		for {
			next, ok := stepOnce(s, d)
			if !ok {
				break
			}
			bb |= next.Bb()
			s = next
		}
	}
	return bb
}

// stepOnce moves one square in direction d from sq, reporting false if
// that would leave the board or wrap around a file.
func stepOnce(sq Square, d Direction) (Square, bool) {
	f, r := sq.FileOf(), sq.RankOf()
	switch d {
	case North:
		if r == Rank8 {
			return SqNone, false
		}
		return SquareOf(f, r+1), true
	case South:
		if r == Rank1 {
			return SqNone, false
		}
		return SquareOf(f, r-1), true
	case East:
		if f == FileH {
			return SqNone, false
		}
		return SquareOf(f+1, r), true
	case West:
		if f == FileA {
			return SqNone, false
		}
		return SquareOf(f-1, r), true
	case Northeast:
		if f == FileH || r == Rank8 {
			return SqNone, false
		}
		return SquareOf(f+1, r+1), true
	case Northwest:
		if f == FileA || r == Rank8 {
			return SqNone, false
		}
		return SquareOf(f-1, r+1), true
	case Southeast:
		if f == FileH || r == Rank1 {
			return SqNone, false
		}
		return SquareOf(f+1, r-1), true
	case Southwest:
		if f == FileA || r == Rank1 {
			return SqNone, false
		}
		return SquareOf(f-1, r-1), true
	}
	return SqNone, false
}

// DiagMaskOf returns the union of the two diagonals through sq.
func DiagMaskOf(sq Square) Bitboard {
	return diagMask[sq]
}

// FileRankMaskOf returns the union of the file and rank through sq.
func FileRankMaskOf(sq Square) Bitboard {
	return fileRankMask[sq]
}

//-----------------------------------------------------------------
// Bit-twiddling primitives (C1).
//-----------------------------------------------------------------

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone if
// b is empty. This is the ctz/"first_bit" operation of spec.md §4.1.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant square and clears it from *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// ClearLsb clears the least significant set bit of b and returns the
// result; undefined (returns b) if b is empty.
func (b Bitboard) ClearLsb() Bitboard {
	if b == BbZero {
		return b
	}
	return b & (b - 1)
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Not returns the bitwise complement of b.
func (b Bitboard) Not() Bitboard {
	return ^b
}

//-----------------------------------------------------------------
// Directional shifts. East/west shifts must clear the wrap-around file
// before shifting, or bits would wrap from the H-file to the A-file (or
// vice-versa) of the adjacent rank.
//-----------------------------------------------------------------

// North shifts every bit one rank up (towards rank 8); bits leaving the
// board off the top simply fall off the 64-bit word.
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts every bit one rank down (towards rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts every bit one file right, after clearing FileH so no bit
// wraps from file h to file a of the next rank.
func (b Bitboard) East() Bitboard {
	return (b &^ FileHBb) << 1
}

// West shifts every bit one file left, after clearing FileA.
func (b Bitboard) West() Bitboard {
	return (b &^ FileABb) >> 1
}

// NorthEast, NorthWest, SouthEast, SouthWest are the diagonal one-step
// shifts, each guarded against wraparound on the relevant edge file.
func (b Bitboard) NorthEast() Bitboard {
	return (b &^ FileHBb) << 9
}

func (b Bitboard) NorthWest() Bitboard {
	return (b &^ FileABb) << 7
}

func (b Bitboard) SouthEast() Bitboard {
	return (b &^ FileHBb) >> 7
}

func (b Bitboard) SouthWest() Bitboard {
	return (b &^ FileABb) >> 9
}

// Shift dispatches to the directional shift named by d.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b.North()
	case South:
		return b.South()
	case East:
		return b.East()
	case West:
		return b.West()
	case Northeast:
		return b.NorthEast()
	case Northwest:
		return b.NorthWest()
	case Southeast:
		return b.SouthEast()
	case Southwest:
		return b.SouthWest()
	}
	return b
}

// String renders b as 64 '0'/'1' characters, most significant bit (h8)
// first and a1 last.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 first, for
// debugging output and log messages.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f < FileLength; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
