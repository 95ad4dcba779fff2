package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFileRankRoundTrip(t *testing.T) {
	for sq := SqA1; sq < SqLength; sq++ {
		got := SquareOf(sq.FileOf(), sq.RankOf())
		assert.Equal(t, sq, got)
	}
}

func TestMakeSquare(t *testing.T) {
	tests := []struct {
		in       string
		expected Square
	}{
		{"a1", SqA1},
		{"h8", SqH8},
		{"e4", SqE4},
		{"", SqNone},
		{"i4", SqNone},
		{"e9", SqNone},
		{"e44", SqNone},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, MakeSquare(test.in), "input %q", test.in)
	}
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
}
