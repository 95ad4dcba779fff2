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

// Package boardpath holds BoardPath, a ring-less fixed-capacity
// sequence of board references used as the cheap input adapter for
// the (excluded) evaluator (C11). Ported from
// original_source/src/board_path.h: a plain array of borrowed
// pointers there, a fixed-capacity slice of *position.Board here.
package boardpath

import "github.com/oserr/blunder/internal/position"

// Capacity is the maximum number of boards a BoardPath can hold.
const Capacity = 8

// BoardPath is a fixed-capacity-8 sequence of board references. Push
// is a no-op once full; it never allocates past Capacity.
type BoardPath struct {
	boards [Capacity]*position.Board
	n      int
}

// New returns an empty BoardPath.
func New() *BoardPath {
	return &BoardPath{}
}

// Rev builds a BoardPath from boards, pushing from the last element
// forward, stopping once full or boards is exhausted.
func Rev(boards []*position.Board) *BoardPath {
	bp := New()
	for i := len(boards) - 1; i >= 0 && !bp.IsFull(); i-- {
		bp.Push(boards[i])
	}
	return bp
}

// IsFull reports whether the path already holds Capacity boards.
func (bp *BoardPath) IsFull() bool {
	return bp.n == Capacity
}

// Push appends board to the path; a no-op once the path is full.
func (bp *BoardPath) Push(board *position.Board) {
	if bp.IsFull() {
		return
	}
	bp.boards[bp.n] = board
	bp.n++
}

// PushPath appends as many boards from other as still fit.
func (bp *BoardPath) PushPath(other *BoardPath) {
	for _, b := range other.Boards() {
		if bp.IsFull() {
			return
		}
		bp.Push(b)
	}
}

// Len returns the number of boards currently in the path.
func (bp *BoardPath) Len() int {
	return bp.n
}

// Root returns the first board pushed, or nil if the path is empty.
func (bp *BoardPath) Root() *position.Board {
	if bp.n == 0 {
		return nil
	}
	return bp.boards[0]
}

// Boards returns the pushed boards in push order, a plain slice a
// caller can range over directly instead of a custom iterator type.
func (bp *BoardPath) Boards() []*position.Board {
	return bp.boards[:bp.n]
}
