package magic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oserr/blunder/internal/attacks"
	. "github.com/oserr/blunder/internal/types"
)

func TestPermuteMaskEnumeratesAllSubsets(t *testing.T) {
	mask := SqB1.Bb() | SqD1.Bb() | SqF1.Bb()
	numBits := uint32(mask.PopCount())
	seen := map[Bitboard]bool{}
	for i := uint32(0); i < (1 << numBits); i++ {
		seen[PermuteMask(i, numBits, mask)] = true
	}
	assert.Equal(t, 1<<numBits, len(seen))
	for bb := range seen {
		assert.Equal(t, BbZero, bb&^mask, "subset must only contain bits from mask")
	}
}

func TestFindMagicRookD4(t *testing.T) {
	rng := newPrnG(perRankSeeds[SqD4.RankOf()])
	m, _, err := FindMagic(SqD4, attacks.RookMask, attacks.RookRays, rng, 10_000_000)
	require.NoError(t, err)
	assert.Equal(t, attacks.RookMask(SqD4), m.Mask)
	assert.Equal(t, uint8(10), m.NBits)
	occ := SqD6.Bb()
	assert.Equal(t, attacks.RookRays(SqD4, occ), m.AttacksFor(occ))
}

func TestFindMagicRejectsOutOfRangeMask(t *testing.T) {
	badMaskFn := func(sq Square) Bitboard { return SqA1.Bb() | SqA2.Bb() }
	rng := newPrnG(1)
	_, _, err := FindMagic(SqA1, badMaskFn, attacks.RookRays, rng, 10)
	assert.ErrorIs(t, err, ErrMagicBitsOutOfRange)
}

func TestSimpleComputerRoundTripsThroughAttacksFor(t *testing.T) {
	c := SimpleComputer{MaxIterations: 50_000_000}
	a, err := NewAttacks(c)
	require.NoError(t, err)

	occ := SqD4.Bb() | SqD6.Bb() | SqF4.Bb()
	for _, sq := range []Square{SqA1, SqD4, SqH8, SqE4} {
		assert.Equal(t, attacks.RookRays(sq, occ), a.RookAttacks(sq, occ), "rook mismatch at %s", sq)
		assert.Equal(t, attacks.BishopRays(sq, occ), a.BishopAttacks(sq, occ), "bishop mismatch at %s", sq)
		assert.Equal(t, attacks.RookRays(sq, occ)|attacks.BishopRays(sq, occ), a.QueenAttacks(sq, occ))
	}
}

func TestFromRookAndBishopMagicsRoundTripsDiscoveredConstants(t *testing.T) {
	discovered, err := NewAttacks(SimpleComputer{MaxIterations: 50_000_000})
	require.NoError(t, err)

	rookConstants := make([]uint64, SqLength)
	bishopConstants := make([]uint64, SqLength)
	for sq := SqA1; sq < SqLength; sq++ {
		rookConstants[sq] = discovered.rook[sq].Number
		bishopConstants[sq] = discovered.bishop[sq].Number
	}

	bootstrapped, err := NewAttacksFromConstants(SimpleComputer{}, rookConstants, bishopConstants)
	require.NoError(t, err)

	occ := SqD4.Bb() | SqD6.Bb() | SqF4.Bb()
	for _, sq := range []Square{SqA1, SqD4, SqH8, SqE4} {
		assert.Equal(t, discovered.RookAttacks(sq, occ), bootstrapped.RookAttacks(sq, occ), "rook mismatch at %s", sq)
		assert.Equal(t, discovered.BishopAttacks(sq, occ), bootstrapped.BishopAttacks(sq, occ), "bishop mismatch at %s", sq)
		assert.Equal(t, discovered.QueenAttacks(sq, occ), bootstrapped.QueenAttacks(sq, occ))
	}
}

func TestFromRookMagicsRejectsBadConstants(t *testing.T) {
	badConstants := make([]uint64, SqLength)
	_, err := SimpleComputer{}.FromRookMagics(badConstants)
	assert.Error(t, err, "an all-zero constant fails FindMagic's high-bit heuristic on its one allowed try")
}

func TestParComputerMatchesSimpleComputer(t *testing.T) {
	simple := SimpleComputer{MaxIterations: 50_000_000}
	simpleAttacks, err := NewAttacks(simple)
	require.NoError(t, err)

	par := NewParComputer(4, 50_000_000)
	parAttacks, err := NewAttacks(par)
	require.NoError(t, err)

	occ := SqB2.Bb() | SqG7.Bb()
	for sq := SqA1; sq < SqLength; sq++ {
		assert.Equal(t, simpleAttacks.RookAttacks(sq, occ), parAttacks.RookAttacks(sq, occ))
		assert.Equal(t, simpleAttacks.BishopAttacks(sq, occ), parAttacks.BishopAttacks(sq, occ))
	}
}
