// Package luck provides a pure, string-seeded pseudo-random function.
// The same key always yields the same value, across calls and across runs,
// which makes world generation a function of position alone.
package luck

import "hash/fnv"

// Luck returns a deterministic value in [0, 1) derived from key.
func Luck(key string) float64 {
	return float64(Uint64(key)>>11) / (1 << 53)
}

// Intn returns a deterministic integer in [0, n) derived from key.
// Returns 0 when n <= 0.
func Intn(key string, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(Luck(key) * float64(n))
	if v >= n { // Guard against rounding at the upper edge
		v = n - 1
	}
	return v
}

// Uint64 hashes key with FNV-1a and runs the result through a SplitMix64
// finalizer so that keys differing by a suffix land far apart.
func Uint64(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key)) //nolint:errcheck // hash.Hash never returns an error
	return mix(h.Sum64())
}

func mix(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
