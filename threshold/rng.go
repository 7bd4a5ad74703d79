package threshold

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// deriveSeed mixes a base seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighboring trial indices yield unrelated
// streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialRNG returns the deterministic generator of trial i under base seed.
// math/rand.Rand is not goroutine-safe; every trial gets its own instance.
func trialRNG(seed int64, trial int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(trial))))
}

// seededFactory adapts trialRNG to the RandFactory shape.
func seededFactory(seed int64) func(trial int) Rand {
	return func(trial int) Rand {
		return trialRNG(seed, trial)
	}
}
