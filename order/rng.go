// Package order - seed derivation for the stochastic orderers.
//
// SeededRandom must decide each pair as a pure function of its seed and the
// ordering context. To keep that property without threading mutable engine
// state through the call chain, every decision derives a fresh seed from
// (parent seed, context fingerprint) and builds a short-lived engine from
// it. The derivation is a SplitMix64-style avalanche mix so that adjacent
// fingerprints (neighbouring rounds, event indexes or legs) still produce
// statistically unrelated decisions.
//
// Engines returned here are plain *rand.Rand values and therefore must not
// be shared across goroutines.
package order

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// RandFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func RandFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche mix, eliminating correlations
// between neighbouring streams (see Vigna 2014 for the constants).
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

// DeriveRand creates an independent deterministic RNG stream from a parent
// seed and a stream identifier.
//
// Usage:
//   - Call per decision point (round/event/leg) to obtain a stream whose
//     output is a pure function of (parent, stream).
//
// Complexity: O(1).
func DeriveRand(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// mixContext folds (round, eventIndex, leg) into a single stream identifier.
// Field widths keep realistic values collision-free: 24 bits of round,
// 24 bits of event index, 16 bits of leg.
//
// Complexity: O(1).
func mixContext(round, eventIndex, leg int) uint64 {
	return uint64(uint32(round))<<40 ^ uint64(uint32(eventIndex))<<16 ^ uint64(uint16(leg))
}
