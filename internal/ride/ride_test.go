package ride

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumEmpty(t *testing.T) {
	cost, minutes := Sum(nil)
	assert.Equal(t, 0, cost)
	assert.Equal(t, 0.0, minutes)
}

func TestSumTotals(t *testing.T) {
	rides := []Ride{
		New("Ferris Wheel", 10, 20),
		New("Speedway", 4, 5),
		New("Log Flume", 7, 12.5),
	}
	cost, minutes := Sum(rides)
	assert.Equal(t, 21, cost)
	assert.Equal(t, 37.5, minutes)
}

func TestNewRejectsInvalid(t *testing.T) {
	assert.Panics(t, func() { New("", 5, 10) }, "empty description")
	assert.Panics(t, func() { New("Carousel", 0, 10) }, "zero cost")
	assert.Panics(t, func() { New("Carousel", -3, 10) }, "negative cost")
	assert.Panics(t, func() { New("Carousel", 5, -1) }, "negative minutes")
}

func TestFilterBoundsInclusive(t *testing.T) {
	rides := []Ride{
		New("a", 1, 9.9),
		New("b", 1, 10),
		New("c", 1, 25),
		New("d", 1, 40),
		New("e", 1, 40.1),
	}
	got := Filter(rides, 10, 40, 100)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Description)
	assert.Equal(t, "c", got[1].Description)
	assert.Equal(t, "d", got[2].Description)
}

func TestFilterPreservesOrderAndCaps(t *testing.T) {
	rides := []Ride{
		New("a", 1, 5),
		New("b", 1, 50), // out of bounds
		New("c", 1, 6),
		New("d", 1, 7),
		New("e", 1, 8),
	}
	got := Filter(rides, 1, 10, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Description)
	assert.Equal(t, "c", got[1].Description)
}

// A maxCount=k filter must be the k-prefix of any larger filter over the
// same bounds.
func TestFilterPrefixConsistency(t *testing.T) {
	var rides []Ride
	for i := 0; i < 40; i++ {
		rides = append(rides, New("r", 1+i, float64(i)))
	}
	small := Filter(rides, 5, 30, 3)
	large := Filter(rides, 5, 30, 10)
	require.Len(t, small, 3)
	require.True(t, len(large) >= 3)
	assert.Equal(t, large[:3], small)
}

func TestFilterExcludesZeroTimeWithPositiveMin(t *testing.T) {
	rides := []Ride{
		New("freebie", 2, 0),
		New("real", 2, 15),
	}
	got := Filter(rides, 0.5, 100, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "real", got[0].Description)
}
