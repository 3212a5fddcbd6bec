package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// CryptoSeeded returns a math/rand generator seeded from crypto/rand.
// Every call yields a newly seeded generator.
func CryptoSeeded() Generator {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("cannot seed math/rand with crypto/rand: " + err.Error())
	}

	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))) // nolint:gosec
}

// Seeded returns a Source that always produces a generator with the same seed.
// This is only useful for tests that need a reproducible shuffle.
func Seeded(seed int64) Source {
	return func() Generator {
		return rand.New(rand.NewSource(seed)) // nolint:gosec
	}
}
