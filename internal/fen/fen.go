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

// Package fen reads Forsyth-Edwards Notation into a position.Board
// (C10). Ported from original_source/src/fen.cc's field-by-field
// parser (GetNextField/ParsePieces/ParseColor/ParseCastling/
// ParseEnPassant/ParseNumber), widened to the finer-grained error
// taxonomy spec.md §7 asks for.
package fen

import (
	"strconv"
	"strings"

	"github.com/op/go-logging"

	mylogging "github.com/oserr/blunder/internal/logging"
	"github.com/oserr/blunder/internal/position"
	. "github.com/oserr/blunder/internal/types"
)

var log *logging.Logger

func init() {
	log = mylogging.Get("fen")
}

// ErrKind enumerates the ways a FEN string can fail to parse,
// following spec.md §7's FEN error taxonomy exactly.
type ErrKind int

const (
	ErrMissingField ErrKind = iota
	ErrInvalidRow
	ErrInvalidPieceChar
	ErrPieceRowInconsistent
	ErrInvalidColor
	ErrInvalidCastling
	ErrInvalidEnPassant
	ErrInvalidHalfMove
	ErrInvalidFullMove
	ErrWhiteNotLogical
	ErrBlackNotLogical
)

func (k ErrKind) String() string {
	switch k {
	case ErrMissingField:
		return "missing field"
	case ErrInvalidRow:
		return "invalid piece placement row"
	case ErrInvalidPieceChar:
		return "invalid piece character"
	case ErrPieceRowInconsistent:
		return "piece placement row does not cover 8 files"
	case ErrInvalidColor:
		return "invalid active colour"
	case ErrInvalidCastling:
		return "invalid castling rights"
	case ErrInvalidEnPassant:
		return "invalid en passant target"
	case ErrInvalidHalfMove:
		return "invalid half-move clock"
	case ErrInvalidFullMove:
		return "invalid full-move number"
	case ErrWhiteNotLogical:
		return "white piece placement is not a logical position"
	case ErrBlackNotLogical:
		return "black piece placement is not a logical position"
	}
	return "unknown FEN error"
}

// Err wraps an ErrKind as an error.
type Err struct {
	Kind ErrKind
}

func (e *Err) Error() string { return e.Kind.String() }

func newErr(kind ErrKind) *Err { return &Err{Kind: kind} }

// Read parses a FEN string into a Board. It requires
// position.RegisterMagics to have already been called, the same
// precondition position.Builder.Build has.
func Read(fenStr string) (board *position.Board, err error) {
	defer func() {
		if err != nil {
			log.Debugf("fen %q: %s", fenStr, err)
		}
	}()

	chunk := fenStr

	piecesField, chunk, err := nextField(chunk)
	if err != nil {
		return nil, err
	}
	white, black, err := parsePieces(piecesField)
	if err != nil {
		return nil, err
	}

	colorField, chunk, err := nextField(chunk)
	if err != nil {
		return nil, err
	}
	next, err := parseColor(colorField)
	if err != nil {
		return nil, err
	}

	castlingField, chunk, err := nextField(chunk)
	if err != nil {
		return nil, err
	}
	wk, wq, bk, bq, err := parseCastling(castlingField)
	if err != nil {
		return nil, err
	}

	epField, chunk, err := nextField(chunk)
	if err != nil {
		return nil, err
	}
	epFile, hasEp, err := parseEnPassant(epField)
	if err != nil {
		return nil, err
	}

	halfMoveField, chunk, err := nextField(chunk)
	if err != nil {
		return nil, err
	}
	halfMove, err := parseNumber(halfMoveField, ErrInvalidHalfMove, 0)
	if err != nil {
		return nil, err
	}

	fullMoveField, _, err := nextField(chunk)
	if err != nil {
		return nil, err
	}
	fullMove, err := parseNumber(fullMoveField, ErrInvalidFullMove, 1)
	if err != nil {
		return nil, err
	}

	b := position.NewBuilder().
		SetPieces(next, white, black).
		SetWKCastling(wk).
		SetWQCastling(wq).
		SetBKCastling(bk).
		SetBQCastling(bq).
		SetHalfMove(uint16(halfMove)).
		SetFullMove(uint16(fullMove))
	if hasEp {
		b = b.SetEnPassantFile(epFile)
	}

	board, err = b.Build()
	if err != nil {
		err = translateBuilderErr(err)
		return nil, err
	}
	return board, nil
}

func translateBuilderErr(err error) error {
	builderErr, ok := err.(*position.BuilderErr)
	if !ok {
		return err
	}
	switch builderErr.Kind {
	case position.ErrWhite:
		return newErr(ErrWhiteNotLogical)
	case position.ErrBlack:
		return newErr(ErrBlackNotLogical)
	case position.ErrHalfMove:
		return newErr(ErrInvalidHalfMove)
	case position.ErrEnPassantFile:
		return newErr(ErrInvalidEnPassant)
	}
	return err
}

// nextField splits leading whitespace off chunk, then returns the
// next whitespace-delimited field and whatever remains after it.
func nextField(chunk string) (field, rest string, err error) {
	chunk = strings.TrimLeft(chunk, " \t")
	if chunk == "" {
		return "", "", newErr(ErrMissingField)
	}
	idx := strings.IndexAny(chunk, " \t")
	if idx < 0 {
		return chunk, "", nil
	}
	return chunk[:idx], chunk[idx:], nil
}

var pieceFromChar = map[byte]PieceType{
	'k': King, 'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight, 'p': Pawn,
}

// parsePieces reads the 8 rank rows (rank 8 first), top to bottom.
func parsePieces(field string) (white, black PieceSet, err error) {
	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return white, black, newErr(ErrInvalidRow)
	}

	for i, row := range rows {
		r := Rank8 - Rank(i)
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, ok := pieceFromChar[lower(c)]
			if !ok {
				return white, black, newErr(ErrInvalidPieceChar)
			}
			if file >= FileLength {
				return white, black, newErr(ErrPieceRowInconsistent)
			}
			sq := SquareOf(File(file), r)
			if isUpper(c) {
				white.SetBit(pt, sq)
			} else {
				black.SetBit(pt, sq)
			}
			file++
		}
		if file != FileLength {
			return white, black, newErr(ErrPieceRowInconsistent)
		}
	}
	return white, black, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func parseColor(field string) (Color, error) {
	if field == "w" {
		return White, nil
	}
	if field == "b" {
		return Black, nil
	}
	return White, newErr(ErrInvalidColor)
}

func parseCastling(field string) (wk, wq, bk, bq bool, err error) {
	if field == "-" {
		return false, false, false, false, nil
	}
	if len(field) < 1 || len(field) > 4 {
		return false, false, false, false, newErr(ErrInvalidCastling)
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			wk = true
		case 'Q':
			wq = true
		case 'k':
			bk = true
		case 'q':
			bq = true
		default:
			return false, false, false, false, newErr(ErrInvalidCastling)
		}
	}
	return wk, wq, bk, bq, nil
}

func parseEnPassant(field string) (f File, has bool, err error) {
	if field == "-" {
		return FileNone, false, nil
	}
	sq := MakeSquare(field)
	if sq == SqNone {
		return FileNone, false, newErr(ErrInvalidEnPassant)
	}
	return sq.FileOf(), true, nil
}

func parseNumber(field string, onErr ErrKind, min int) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < min {
		return 0, newErr(onErr)
	}
	return n, nil
}
