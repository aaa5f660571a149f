// SPDX-License-Identifier: MIT

// RNG utilities for weight initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial weights across platforms.
//   - Encapsulation: a single source factory used by WithSeed.
//
// Concurrency:
//   - rand.Source is NOT goroutine-safe. Do not share one source across networks
//     that are initialized concurrently.

package network

import "math/rand/v2"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed uint64 = 1

// sourceFromSeed returns a deterministic PCG source.
// Policy: seed==0 ⇒ use defaultRNGSeed; the second PCG word is derived from
// the first so one integer fully determines the stream.
//
// Complexity: O(1).
func sourceFromSeed(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.NewPCG(seed, deriveSeed(seed, 1))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer).
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
