// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers for the grade-exhaustion draw,
// the single non-deterministic step in resolution. *rand.Rand from
// math/rand/v2 satisfies it, so tests can inject a seeded generator.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) int
}

// CryptoSource returns the default Source, backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// Entropy failure degrades to the first index rather than panic.
		return 0
	}
	return int(v.Int64())
}
