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

package position

import (
	"errors"

	. "github.com/oserr/blunder/internal/types"
)

// BuilderErrKind enumerates the ways a Builder can refuse to produce a
// Board, mirroring original_source/src/board.h's BoardBuilderErr enum
// (White, Black, HalfMove, EnPassantFile).
type BuilderErrKind int

const (
	ErrWhite BuilderErrKind = iota
	ErrBlack
	ErrHalfMove
	ErrEnPassantFile
)

func (k BuilderErrKind) String() string {
	switch k {
	case ErrWhite:
		return "white pieces are not valid"
	case ErrBlack:
		return "black pieces are not valid"
	case ErrHalfMove:
		return "half-move clock out of range"
	case ErrEnPassantFile:
		return "en-passant file out of range"
	}
	return "unknown builder error"
}

// BuilderErr wraps a BuilderErrKind as an error.
type BuilderErr struct {
	Kind BuilderErrKind
}

func (e *BuilderErr) Error() string { return e.Kind.String() }

// Is lets errors.Is match any *BuilderErr target with the same Kind,
// e.g. errors.Is(err, &BuilderErr{Kind: ErrWhite}). A bare
// BuilderErrKind is not an error and cannot be used as the target.
func (e *BuilderErr) Is(target error) bool {
	var other *BuilderErr
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

func newBuilderErr(kind BuilderErrKind) *BuilderErr {
	return &BuilderErr{Kind: kind}
}

// Builder incrementally assembles a Board, validating invariants only
// at Build() time so a caller (like the FEN reader) can set fields in
// whatever order is convenient, exactly as
// original_source/src/board.h's BoardBuilder does.
type Builder struct {
	board         Board
	halfMoveErr   bool
	enPassantErr  bool
}

// NewBuilder returns a Builder with the full-move counter at 1 and
// every other field empty.
func NewBuilder() *Builder {
	return &Builder{board: Board{fullMove: 1}}
}

// SetPieces assigns both sides' piece sets at once and records which
// color moves next, so Mine/Other can be derived correctly.
func (bd *Builder) SetPieces(next Color, white, black PieceSet) *Builder {
	if next == White {
		bd.board.mine = white
		bd.board.other = black
	} else {
		bd.board.mine = black
		bd.board.other = white
	}
	bd.board.next = next
	return bd
}

// SetHalfMove sets the half-move clock; values over 100 are rejected
// at Build() time (no forced draw claim should ever reach that high
// in practice, but FEN input is untrusted).
func (bd *Builder) SetHalfMove(hm uint16) *Builder {
	bd.halfMoveErr = hm > 100
	bd.board.halfMove = hm
	return bd
}

// SetFullMove sets the full-move counter.
func (bd *Builder) SetFullMove(fm uint16) *Builder {
	bd.board.fullMove = fm
	return bd
}

// SetEnPassantFile marks an en-passant capture available on file f.
func (bd *Builder) SetEnPassantFile(f File) *Builder {
	if !f.IsValid() {
		bd.enPassantErr = true
		return bd
	}
	bd.enPassantErr = false
	bd.board.enPassant = true
	bd.board.enPassantFile = f
	return bd
}

func (bd *Builder) SetWKCastling(has bool) *Builder { bd.board.wkCastle = has; return bd }
func (bd *Builder) SetWQCastling(has bool) *Builder { bd.board.wqCastle = has; return bd }
func (bd *Builder) SetBKCastling(has bool) *Builder { bd.board.bkCastle = has; return bd }
func (bd *Builder) SetBQCastling(has bool) *Builder { bd.board.bqCastle = has; return bd }

// Build validates the assembled board's invariants and returns it, or
// the first violated invariant as a *BuilderErr.
func (bd *Builder) Build() (*Board, error) {
	white, black := bd.board.White(), bd.board.Black()
	if !white.IsValid() {
		return nil, newBuilderErr(ErrWhite)
	}
	if !black.IsValid() {
		return nil, newBuilderErr(ErrBlack)
	}
	if bd.enPassantErr {
		return nil, newBuilderErr(ErrEnPassantFile)
	}
	if bd.halfMoveErr {
		return nil, newBuilderErr(ErrHalfMove)
	}
	board := bd.board
	board.SetAttacked()
	return &board, nil
}
