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

// Package movegen generates pseudo-legal moves for the side to move on
// a position.Board (C9). Ported from the intent of
// original_source/src/move_gen.h/move_gen.cc and src/moves.h/moves.cc;
// those files do not compile as checked into the reference sources (a
// duplicate MoveGen definition split across move_gen.cc and moves.cc,
// and a king-move castle branch that builds the non-castle king move
// with Piece::Bishop instead of Piece::King) so this generates moves
// from the rules stated in the specification rather than
// transliterating the broken text. Full legality (is the mover's own
// king left in check) is left to the caller; the only legality
// refinement done here is castling path safety.
package movegen

import (
	"github.com/oserr/blunder/internal/attacks"
	"github.com/oserr/blunder/internal/move"
	"github.com/oserr/blunder/internal/position"
	. "github.com/oserr/blunder/internal/types"
)

// Generate returns every pseudo-legal move for the side to move on b,
// in no particular order. Callers that need determinism must sort the
// result themselves; test suites must compare as multisets.
func Generate(b *position.Board) []move.Move {
	var moves []move.Move
	empty := b.Empty()
	opponent := b.AllOther()

	moves = genLeapers(moves, b, King, empty, opponent)
	moves = genLeapers(moves, b, Knight, empty, opponent)
	moves = genSliders(moves, b, Bishop, empty, opponent)
	moves = genSliders(moves, b, Rook, empty, opponent)
	moves = genSliders(moves, b, Queen, empty, opponent)
	moves = genPawns(moves, b, empty, opponent)
	moves = genCastles(moves, b)

	return moves
}

func genLeapers(moves []move.Move, b *position.Board, pt PieceType, empty, opponent Bitboard) []move.Move {
	bb := b.Mine().Get(pt)
	for bb != BbZero {
		from := bb.PopLsb()
		candidates := leaperAttacks(pt, from)
		moves = emitQuietAndCaptures(moves, b, pt, from, candidates, empty, opponent)
	}
	return moves
}

func genSliders(moves []move.Move, b *position.Board, pt PieceType, empty, opponent Bitboard) []move.Move {
	bb := b.Mine().Get(pt)
	for bb != BbZero {
		from := bb.PopLsb()
		candidates := sliderAttacks(pt, b, from)
		moves = emitQuietAndCaptures(moves, b, pt, from, candidates, empty, opponent)
	}
	return moves
}

func leaperAttacks(pt PieceType, from Square) Bitboard {
	switch pt {
	case King:
		return attacks.KingAttacks(from)
	case Knight:
		return attacks.KnightAttacks(from)
	}
	return BbZero
}

func sliderAttacks(pt PieceType, b *position.Board, from Square) Bitboard {
	switch pt {
	case Bishop:
		return b.BishopAttacksFrom(from)
	case Rook:
		return b.RookAttacksFrom(from)
	case Queen:
		return b.QueenAttacksFrom(from)
	}
	return BbZero
}

func emitQuietAndCaptures(moves []move.Move, b *position.Board, pt PieceType, from Square, candidates, empty, opponent Bitboard) []move.Move {
	quiet := candidates & empty
	for quiet != BbZero {
		to := quiet.PopLsb()
		moves = append(moves, move.New(pt, from, to))
	}

	captures := candidates & opponent
	for captures != BbZero {
		to := captures.PopLsb()
		victim := b.Other().FindType(to)
		moves = append(moves, move.NewCapture(pt, from, victim, to))
	}
	return moves
}

// genCastles appends the castling moves, if any, that are currently
// legal for the side to move.
func genCastles(moves []move.Move, b *position.Board) []move.Move {
	if b.IsWhiteNext() {
		if b.WKCanCastle() {
			moves = append(moves, move.WKCastle())
		}
		if b.WQCanCastle() {
			moves = append(moves, move.WQCastle())
		}
		return moves
	}
	if b.BKCanCastle() {
		moves = append(moves, move.BKCastle())
	}
	if b.BQCanCastle() {
		moves = append(moves, move.BQCastle())
	}
	return moves
}

var promoPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// genPawns handles pawn single/double push, promotion and en passant,
// the special cases §4.9 carves out from the generic leaper/slider
// pattern above.
func genPawns(moves []move.Move, b *position.Board, empty, opponent Bitboard) []move.Move {
	us := b.Next()
	pawns := b.Mine().Get(Pawn)

	promoRank := Rank8
	doublePushRank := Rank4
	startRank := Rank2
	if us == Black {
		promoRank = Rank1
		doublePushRank = Rank5
		startRank = Rank7
	}

	for pawns != BbZero {
		from := pawns.PopLsb()
		moves = genPawnPushes(moves, from, us, empty, promoRank, doublePushRank, startRank)
		moves = genPawnCaptures(moves, b, from, us, opponent, promoRank)
		moves = genPawnEnPassant(moves, b, from, us)
	}
	return moves
}

func genPawnPushes(moves []move.Move, from Square, us Color, empty Bitboard, promoRank, doublePushRank, startRank Rank) []move.Move {
	single, ok := pawnStep(from, us)
	if !ok || !empty.Has(single) {
		return moves
	}
	moves = emitPawnPush(moves, from, single, promoRank)

	if from.RankOf() != startRank {
		return moves
	}
	double, ok := pawnStep(single, us)
	if !ok || !empty.Has(double) || double.RankOf() != doublePushRank {
		return moves
	}
	moves = append(moves, move.New(Pawn, from, double))
	return moves
}

func emitPawnPush(moves []move.Move, from, to Square, promoRank Rank) []move.Move {
	if to.RankOf() == promoRank {
		for _, promo := range promoPieces {
			moves = append(moves, move.Promo(from, to, promo))
		}
		return moves
	}
	return append(moves, move.New(Pawn, from, to))
}

func genPawnCaptures(moves []move.Move, b *position.Board, from Square, us Color, opponent Bitboard, promoRank Rank) []move.Move {
	targets := attacks.PawnAttacks(us, from) & opponent
	for targets != BbZero {
		to := targets.PopLsb()
		victim := b.Other().FindType(to)
		if to.RankOf() == promoRank {
			for _, promo := range promoPieces {
				moves = append(moves, move.PromoCapture(from, victim, to, promo))
			}
			continue
		}
		moves = append(moves, move.NewCapture(Pawn, from, victim, to))
	}
	return moves
}

func genPawnEnPassant(moves []move.Move, b *position.Board, from Square, us Color) []move.Move {
	if !b.HasEnPassant() {
		return moves
	}
	epRank := Rank6
	passantRank := Rank5
	if us == Black {
		epRank = Rank3
		passantRank = Rank4
	}
	to := SquareOf(b.EnPassantFile(), epRank)
	if attacks.PawnAttacks(us, from)&to.Bb() == BbZero {
		return moves
	}
	passantSq := SquareOf(b.EnPassantFile(), passantRank)
	return append(moves, move.ByEnPassant(from, to, passantSq))
}

// pawnStep returns the single square ahead of from for color us, or
// false if from is already on the far rank (defensive: a real pawn
// never sits there).
func pawnStep(from Square, us Color) (Square, bool) {
	r := int(from.RankOf()) + us.MoveDirection()
	if r < int(Rank1) || r > int(Rank8) {
		return SqNone, false
	}
	return SquareOf(from.FileOf(), Rank(r)), true
}
