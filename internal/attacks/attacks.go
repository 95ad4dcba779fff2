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

// Package attacks computes sliding-piece ray attacks and occupancy
// masks from first principles (C3/C4), and the precomputed leaper
// tables for kings, knights and pawns (C7). This is the ground-truth
// layer magic bitboards are verified against: slow but obviously
// correct, one ray step at a time.
package attacks

import (
	"github.com/op/go-logging"

	mylogging "github.com/oserr/blunder/internal/logging"
	. "github.com/oserr/blunder/internal/types"
)

var log *logging.Logger

func init() {
	log = mylogging.Get("attacks")
	computeLeapers()
}

// rookDirections and bishopDirections group the four directions
// relevant to a rook and to a bishop respectively.
var rookDirections = [4]Direction{North, South, East, West}
var bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}

// RookRays returns the squares a rook on sq attacks given the board
// occupancy occ, sliding until (and including) the first blocker in
// each of the four orthogonal directions.
func RookRays(sq Square, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, rookDirections[:])
}

// BishopRays returns the squares a bishop on sq attacks given the board
// occupancy occ, sliding until (and including) the first blocker in
// each of the four diagonal directions.
func BishopRays(sq Square, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, bishopDirections[:])
}

// QueenRays is the union of RookRays and BishopRays.
func QueenRays(sq Square, occ Bitboard) Bitboard {
	return RookRays(sq, occ) | BishopRays(sq, occ)
}

func rayAttacks(sq Square, occ Bitboard, dirs []Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		bb := sq.Bb()
		for {
			next := bb.Shift(d)
			if next == BbZero {
				break
			}
			attacks |= next
			if next&occ != BbZero {
				break
			}
			bb = next
		}
	}
	return attacks
}

// RookMask returns the relevant-occupancy mask for a rook on sq: the
// squares whose occupancy can affect the rook's attack set, excluding
// board-edge squares (a blocker on the edge never changes the attack
// set since the ray would have stopped there anyway) and excluding sq
// itself. This is the C4 mask used to size and index a rook's magic.
func RookMask(sq Square) Bitboard {
	return edgeTrimmedRay(sq, rookDirections[:])
}

// BishopMask returns the relevant-occupancy mask for a bishop on sq,
// analogous to RookMask but along the diagonals.
func BishopMask(sq Square) Bitboard {
	return edgeTrimmedRay(sq, bishopDirections[:])
}

func edgeTrimmedRay(sq Square, dirs []Direction) Bitboard {
	var mask Bitboard
	for _, d := range dirs {
		bb := sq.Bb()
		for {
			next := bb.Shift(d)
			if next == BbZero {
				break
			}
			// stop before adding a square that has no further square
			// beyond it in this direction: an edge square.
			beyond := next.Shift(d)
			if beyond == BbZero {
				break
			}
			mask |= next
			bb = next
		}
	}
	return mask
}

//-----------------------------------------------------------------
// Leaper tables (C7): kings, knights, and pawn attacks are fixed,
// position-independent jumps, so they are fully precomputed at
// package init rather than recomputed per call like the sliders.
//-----------------------------------------------------------------

var kingAttacks [SqLength]Bitboard
var knightAttacks [SqLength]Bitboard
var pawnAttacksTable [ColorLength][SqLength]Bitboard

func computeLeapers() {
	for sq := SqA1; sq < SqLength; sq++ {
		bb := sq.Bb()
		kingAttacks[sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()
		knightAttacks[sq] = knightJumps(bb)
		pawnAttacksTable[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacksTable[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
	log.Debugf("computed leaper attack tables for %d squares", SqLength)
}

// knightJumps computes all eight knight-move targets from a single-bit
// bitboard, each a composition of two shifts in different axes so that
// wraparound on either axis is independently guarded.
func knightJumps(bb Bitboard) Bitboard {
	var targets Bitboard
	targets |= bb.North().North().East()
	targets |= bb.North().North().West()
	targets |= bb.South().South().East()
	targets |= bb.South().South().West()
	targets |= bb.East().East().North()
	targets |= bb.East().East().South()
	targets |= bb.West().West().North()
	targets |= bb.West().West().South()
	return targets
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq captures to
// (diagonal forward captures, not the straight push).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksTable[c][sq]
}
