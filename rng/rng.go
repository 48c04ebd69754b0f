// Package rng - deterministic random helpers shared by every stochastic step.
//
// This file centralizes random generation for obstacle placement, candidate
// shuffles, target-length draws and search coin flips.
//
// Goals:
//   - Determinism: same seed ⇒ identical layouts across platforms.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
//   - Independence: per-layout streams derived from (seed, index).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Layout owns its own stream;
//     use ForIndex to create one per layout in a parallel batch.
package rng

import (
	"math"
	"math/rand"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// SplitMix64 finalizer; small input changes give well-spread outputs.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// ForIndex returns the stream of layout idx under base seed.
// Equal (seed, idx) pairs always yield equal streams.
func ForIndex(seed int64, idx int) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(seed, uint64(idx))))
}

// IntRange draws uniformly from the closed interval [lo, hi].
// Panics when hi < lo.
func IntRange(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		panic("rng: IntRange(hi<lo)")
	}
	return lo + r.Intn(hi-lo+1)
}

// HalfNormal draws round(lo + |N(0, (hi-lo)/3)|).
// Values concentrate near lo and may exceed hi on the tail.
func HalfNormal(r *rand.Rand, lo, hi int) int {
	sigma := float64(hi-lo) / 3
	return int(math.Round(float64(lo) + math.Abs(r.NormFloat64()*sigma)))
}

// Float draws uniformly from [0, 1).
func Float(r *rand.Rand) float64 {
	return r.Float64()
}

// Coin is a fair coin flip.
func Coin(r *rand.Rand) bool {
	return r.Float64() > 0.5
}

// Shuffle performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](r *rand.Rand, a []T) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
