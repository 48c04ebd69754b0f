package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSeed_ZeroUsesDefault(t *testing.T) {
	a := FromSeed(0)
	b := FromSeed(DefaultSeed)
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestForIndex_ReproducibleAndIndependent(t *testing.T) {
	a := ForIndex(42, 3)
	b := ForIndex(42, 3)
	c := ForIndex(42, 4)

	same := true
	for i := 0; i < 16; i++ {
		va, vb, vc := a.Int63(), b.Int63(), c.Int63()
		require.Equal(t, va, vb)
		if va != vc {
			same = false
		}
	}
	assert.False(t, same, "neighbouring indices must not share a stream")
}

func TestDeriveSeed_Spreads(t *testing.T) {
	seen := map[int64]bool{}
	for s := uint64(0); s < 64; s++ {
		v := DeriveSeed(7, s)
		assert.False(t, seen[v], "collision at stream %d", s)
		seen[v] = true
	}
}

func TestIntRange_Bounds(t *testing.T) {
	r := FromSeed(9)
	for i := 0; i < 500; i++ {
		v := IntRange(r, 2, 5)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, 4, IntRange(r, 4, 4))
	assert.Panics(t, func() { IntRange(r, 3, 2) })
}

func TestHalfNormal_NeverBelowLow(t *testing.T) {
	r := FromSeed(11)
	for i := 0; i < 500; i++ {
		require.GreaterOrEqual(t, HalfNormal(r, 5, 30), 5)
	}
	assert.Equal(t, 6, HalfNormal(r, 6, 6))
}

func TestShuffle_Permutes(t *testing.T) {
	r := FromSeed(5)
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(r, a)

	seen := make([]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "value %d lost", i)
	}
}
