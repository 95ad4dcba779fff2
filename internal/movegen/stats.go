//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oserr/blunder/internal/position"
)

var out = message.NewPrinter(language.German)

// Stats breaks down a single call to Generate by move kind, the way
// the teacher's Perft counters classify generated moves, adapted to
// this core's pseudo-legal, single-ply scope: applying and undoing
// moves to recurse across plies is the caller's apply-and-validate
// layer, outside what this package generates.
type Stats struct {
	Total     int
	Captures  int
	EnPassant int
	Castles   int
	Promotions int
}

// Report runs Generate on b and tallies the result into a Stats,
// printing a summary the way the teacher's Perft.StartPerft does.
func Report(b *position.Board) Stats {
	var s Stats
	for _, m := range Generate(b) {
		s.Total++
		if m.IsCapture() {
			s.Captures++
		}
		if m.IsEnPassant() {
			s.EnPassant++
		}
		if m.IsCastle() {
			s.Castles++
		}
		if m.IsPromo() {
			s.Promotions++
		}
	}
	out.Printf("Move generation report for %s to move\n", b.Next())
	out.Printf("   Moves     : %d\n", s.Total)
	out.Printf("   Captures  : %d\n", s.Captures)
	out.Printf("   EnPassant : %d\n", s.EnPassant)
	out.Printf("   Castles   : %d\n", s.Castles)
	out.Printf("   Promotions: %d\n", s.Promotions)
	return s
}
