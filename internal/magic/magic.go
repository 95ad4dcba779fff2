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

// Package magic discovers and evaluates magic bitboards for rook and
// bishop attacks (C5): single-threaded and work-queue-parallel
// discovery, runtime lookup, and a deterministic bootstrap path for
// precomputed magic constants. Grounded on
// original_source/src/magics.cc's FindMagic/FindAllMagics/PermuteMask
// and the teacher's internal/types/magic.go's fancy-magic layout and
// xorshift64star PrnG (see rng.go).
package magic

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oserr/blunder/internal/attacks"
	"github.com/oserr/blunder/internal/logging"
	"github.com/oserr/blunder/internal/workqueue"
	. "github.com/oserr/blunder/internal/types"
)

var log = logging.Get("magic")
var out = message.NewPrinter(language.German)

// ErrMagicBitsOutOfRange is returned when a relevant-occupancy mask has
// a bit count outside [5, 12], which would make the attack table too
// small or impractically large.
var ErrMagicBitsOutOfRange = errors.New("magic: mask bit count out of range [5, 12]")

// ErrMagicNotFound is returned when no collision-free magic candidate
// was found within the configured iteration budget.
var ErrMagicNotFound = errors.New("magic: no magic number found within iteration budget")

// defaultMaxIterations bounds FindMagic's trial loop when the caller
// doesn't override it via config.
const defaultMaxIterations = 100_000_000

// Magic holds the perfect-hash attack table for a single square: the
// relevant-occupancy mask, the magic multiplier, the number of bits in
// mask (equivalently, log2(len(Attacks))), and the attack table itself
// indexed by the magic hash of an occupancy subset.
type Magic struct {
	Mask    Bitboard
	Number  uint64
	NBits   uint8
	Attacks []Bitboard
}

// index computes the perfect-hash table index for occupancy occ under
// this Magic: ((occ & mask) * magic) >> (64 - nbits).
func (m *Magic) index(occ Bitboard) uint64 {
	relevant := uint64(occ & m.Mask)
	return (relevant * m.Number) >> (64 - m.NBits)
}

// AttacksFor returns the precomputed attack set for occupancy occ,
// masked to the relevant bits first as the formula requires.
func (m *Magic) AttacksFor(occ Bitboard) Bitboard {
	return m.Attacks[m.index(occ)]
}

// maskFn computes the relevant-occupancy mask for a square; attacksFn
// computes the true (ray-cast) attack set for a square and occupancy.
// Rook and bishop discovery differ only in which pair of these is used.
type maskFn func(sq Square) Bitboard
type attacksFn func(sq Square, occ Bitboard) Bitboard

// PermuteMask returns the num-th subset of the num_bits set bits of
// mask: bit i of num selects whether the i-th set bit of mask (scanning
// from the LSB) appears in the result. Ported from
// original_source/src/magics.cc's PermuteMask / the Carry-Rippler
// subset enumeration the teacher's initMagics uses.
func PermuteMask(num uint32, numBits uint32, mask Bitboard) Bitboard {
	var combo Bitboard
	for i := uint32(0); i < numBits; i++ {
		if num&(1<<i) != 0 {
			combo = combo.Set(mask.Lsb())
		}
		mask = mask.ClearLsb()
	}
	return combo
}

// FindMagic searches for a collision-free magic number for sq, trying
// up to maxIters sparse-random candidates from a PRNG freshly seeded
// for this square. On success it returns the Magic and the number of
// candidates tried before success.
func FindMagic(sq Square, mf maskFn, af attacksFn, rng *prnG, maxIters int) (Magic, int, error) {
	mask := mf(sq)
	numBits := uint32(mask.PopCount())
	if numBits < 5 || numBits > 12 {
		return Magic{}, 0, ErrMagicBitsOutOfRange
	}

	nCombos := uint32(1) << numBits
	blocking := make([]Bitboard, nCombos)
	wantAttacks := make([]Bitboard, nCombos)
	for i := uint32(0); i < nCombos; i++ {
		blocking[i] = PermuteMask(i, numBits, mask)
		wantAttacks[i] = af(sq, blocking[i])
	}

	table := make([]Bitboard, nCombos)
	for k := 0; k < maxIters; k++ {
		candidate := rng.sparseRand()

		// A magic with too few set high bits rarely spreads occupancy
		// subsets well; Stockfish's heuristic skips it before paying
		// for a full verification pass.
		highBits := Bitboard((uint64(mask) * candidate) >> 56).PopCount()
		if highBits < 6 {
			continue
		}

		for i := range table {
			table[i] = BbZero
		}

		collision := false
		for i := uint32(0); i < nCombos; i++ {
			idx := (uint64(blocking[i]) * candidate) >> (64 - numBits)
			if table[idx] == BbZero {
				table[idx] = wantAttacks[i]
			} else if table[idx] != wantAttacks[i] {
				collision = true
				break
			}
		}
		if collision {
			continue
		}

		return Magic{Mask: mask, Number: candidate, NBits: uint8(numBits), Attacks: table}, k, nil
	}

	return Magic{}, maxIters, ErrMagicNotFound
}

// perRankSeeds are PrnG seeds tuned so FindMagic converges quickly,
// one per rank, reused from the teacher's internal/types/magic.go
// initMagics (itself taken from Stockfish).
var perRankSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// randFn produces the next magic candidate for square sq; FindAllMagics
// uses the sparse-random generator seeded per spec.md's "fresh PRNG
// per square" rule, FromRookMagics/FromBishopMagics use a trivial replay of precomputed
// constants instead.
type randFn func(sq Square) uint64

func sparseRandFn(sq Square) uint64 {
	return newPrnG(perRankSeeds[sq.RankOf()]).sparseRand()
}

// precomputedRandFn replays constants[sq] verbatim, for the
// FromBishopMagics/FromRookMagics bootstrap path, where
// maxIters is always 1: it only verifies the constants don't collide.
func precomputedRandFn(constants []uint64) randFn {
	return func(sq Square) uint64 {
		return constants[sq]
	}
}

// FindAllMagics computes a Magic for every square 0..63, serially.
func FindAllMagics(mf maskFn, af attacksFn, rf randFn, maxIters int) ([64]Magic, error) {
	var magics [64]Magic
	for s := SqA1; s < SqLength; s++ {
		rng := newPrnG(rf(s))
		m, tries, err := FindMagic(s, mf, af, rng, maxIters)
		if err != nil {
			return magics, fmt.Errorf("square %s: %w", s, err)
		}
		log.Debugf("computed magic=%d for square=%s in tries=%s", m.Number, s, out.Sprintf("%d", tries))
		magics[s] = m
	}
	return magics, nil
}

// FindAllMagicsParallel is the work-queue-backed variant of
// FindAllMagics: each square is dispatched as its own work item on q,
// per spec.md §4.6's "parallel variant dispatches each square as a
// work item". Results are collected and assembled in deterministic
// square-index order once every future completes.
func FindAllMagicsParallel(q *workqueue.Queue, mf maskFn, af attacksFn, rf randFn, maxIters int) ([64]Magic, error) {
	type result struct {
		m   Magic
		err error
	}
	futures := workqueue.ForRange(q, 64, func(i int) result {
		sq := Square(i)
		rng := newPrnG(rf(sq))
		m, _, err := FindMagic(sq, mf, af, rng, maxIters)
		return result{m: m, err: err}
	})
	results := workqueue.WaitAll(futures)

	var magics [64]Magic
	for i, r := range results {
		if r.err != nil {
			return magics, fmt.Errorf("square %s: %w", Square(i), r.err)
		}
		magics[i] = r.m
	}
	return magics, nil
}

//-----------------------------------------------------------------
// Attacks: the public lookup surface combining rook and bishop magics
// into queen attacks. Mirrors original_source's MagicAttacks /
// src/magics.h's Magics interface.
//-----------------------------------------------------------------

// Attacks is the runtime lookup table for sliding-piece attacks, one
// Magic per square for rooks and one for bishops.
type Attacks struct {
	rook   [64]Magic
	bishop [64]Magic
}

// RookAttacks returns the squares a rook on sq attacks given the full
// board occupancy occ (not pre-masked; AttacksFor applies the mask).
func (a *Attacks) RookAttacks(sq Square, occ Bitboard) Bitboard {
	return a.rook[sq].AttacksFor(occ)
}

// BishopAttacks returns the squares a bishop on sq attacks given occ.
func (a *Attacks) BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return a.bishop[sq].AttacksFor(occ)
}

// QueenAttacks is the union of RookAttacks and BishopAttacks.
func (a *Attacks) QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return a.RookAttacks(sq, occ) | a.BishopAttacks(sq, occ)
}

// Computer discovers or bootstraps a full Attacks table, mirroring
// original_source/src/magic_attacks.h's MagicComputer interface
// (compute_bmagics/compute_rmagics/from_bmagics/from_rmagics).
type Computer interface {
	ComputeRookMagics() ([64]Magic, error)
	ComputeBishopMagics() ([64]Magic, error)
	FromRookMagics(constants []uint64) ([64]Magic, error)
	FromBishopMagics(constants []uint64) ([64]Magic, error)
}

// NewAttacks runs c's discovery for both piece types and assembles the
// combined lookup table.
func NewAttacks(c Computer) (*Attacks, error) {
	rook, err := c.ComputeRookMagics()
	if err != nil {
		return nil, err
	}
	bishop, err := c.ComputeBishopMagics()
	if err != nil {
		return nil, err
	}
	return &Attacks{rook: rook, bishop: bishop}, nil
}

// NewAttacksFromConstants bootstraps from precomputed magic constants
// for both piece types, verifying (maxIters=1) that they don't
// collide rather than searching for new ones.
func NewAttacksFromConstants(c Computer, rookConstants, bishopConstants []uint64) (*Attacks, error) {
	rook, err := c.FromRookMagics(rookConstants)
	if err != nil {
		return nil, err
	}
	bishop, err := c.FromBishopMagics(bishopConstants)
	if err != nil {
		return nil, err
	}
	return &Attacks{rook: rook, bishop: bishop}, nil
}

//-----------------------------------------------------------------
// SimpleComputer: single-threaded discovery, grounded on
// original_source's SimpleMagicComputer.
//-----------------------------------------------------------------

// SimpleComputer discovers magics on the calling goroutine, one square
// after another.
type SimpleComputer struct {
	MaxIterations int
}

func (c SimpleComputer) maxIters() int {
	if c.MaxIterations <= 0 {
		return defaultMaxIterations
	}
	return c.MaxIterations
}

func (c SimpleComputer) ComputeRookMagics() ([64]Magic, error) {
	return FindAllMagics(attacks.RookMask, attacks.RookRays, sparseRandFn, c.maxIters())
}

func (c SimpleComputer) ComputeBishopMagics() ([64]Magic, error) {
	return FindAllMagics(attacks.BishopMask, attacks.BishopRays, sparseRandFn, c.maxIters())
}

func (c SimpleComputer) FromRookMagics(constants []uint64) ([64]Magic, error) {
	return FindAllMagics(attacks.RookMask, attacks.RookRays, precomputedRandFn(constants), 1)
}

func (c SimpleComputer) FromBishopMagics(constants []uint64) ([64]Magic, error) {
	return FindAllMagics(attacks.BishopMask, attacks.BishopRays, precomputedRandFn(constants), 1)
}

//-----------------------------------------------------------------
// ParComputer: work-queue-backed discovery, grounded on
// original_source's ParMagicComputer(workq).
//-----------------------------------------------------------------

// ParComputer discovers magics with one work item per square on a
// shared workqueue.Queue.
type ParComputer struct {
	Queue         *workqueue.Queue
	MaxIterations int
}

// NewParComputer returns a ParComputer backed by a freshly created
// queue with the given worker count (<=0 defaults to NumCPU).
func NewParComputer(workers int, maxIterations int) ParComputer {
	return ParComputer{Queue: workqueue.New(workers), MaxIterations: maxIterations}
}

func (c ParComputer) maxIters() int {
	if c.MaxIterations <= 0 {
		return defaultMaxIterations
	}
	return c.MaxIterations
}

func (c ParComputer) ComputeRookMagics() ([64]Magic, error) {
	return FindAllMagicsParallel(c.Queue, attacks.RookMask, attacks.RookRays, sparseRandFn, c.maxIters())
}

func (c ParComputer) ComputeBishopMagics() ([64]Magic, error) {
	return FindAllMagicsParallel(c.Queue, attacks.BishopMask, attacks.BishopRays, sparseRandFn, c.maxIters())
}

func (c ParComputer) FromRookMagics(constants []uint64) ([64]Magic, error) {
	return FindAllMagicsParallel(c.Queue, attacks.RookMask, attacks.RookRays, precomputedRandFn(constants), 1)
}

func (c ParComputer) FromBishopMagics(constants []uint64) ([64]Magic, error) {
	return FindAllMagicsParallel(c.Queue, attacks.BishopMask, attacks.BishopRays, precomputedRandFn(constants), 1)
}
