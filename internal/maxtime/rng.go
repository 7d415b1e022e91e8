package maxtime

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstracts the randomness used to generate catalog instances
// for the cross-check harness.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

// crypto random: default source
type cryptoRNG struct{}

func (cryptoRNG) uint64() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

func (c cryptoRNG) Float64() float64 {
	return float64(c.uint64()>>11) / (1 << 53) // 53 bits
}

func (c cryptoRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	// rejection sampling: drop the low band where 2^64 % n values pile up,
	// so v % n is uniform over [0, n)
	u := uint64(n)
	thresh := -u % u
	for {
		if v := c.uint64(); v >= thresh {
			return int(v % u)
		}
	}
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG for seeded cross-check runs.
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }
