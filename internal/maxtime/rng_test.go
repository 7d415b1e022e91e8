package maxtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRNGFloat64Range(t *testing.T) {
	rng := DefaultRNG()
	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestDefaultRNGIntNRange(t *testing.T) {
	rng := DefaultRNG()
	for _, n := range []int{1, 2, 3, 10, 1000} {
		for i := 0; i < 500; i++ {
			v := rng.IntN(n)
			assert.GreaterOrEqual(t, v, 0, "n=%d", n)
			assert.Less(t, v, n, "n=%d", n)
		}
	}
	assert.Equal(t, 0, rng.IntN(0))
	assert.Equal(t, 0, rng.IntN(-5))
}

func TestDefaultRNGIntNCoversAllValues(t *testing.T) {
	rng := DefaultRNG()
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		seen[rng.IntN(3)] = true
	}
	assert.Len(t, seen, 3, "500 draws over [0,3) should hit every value")
}

func TestSeededRNGDeterministic(t *testing.T) {
	a, b := NewSeededRNG(7), NewSeededRNG(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
