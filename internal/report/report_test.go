package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkops/ridemax/internal/maxtime"
	"github.com/parkops/ridemax/internal/ride"
)

func TestSelectionEmpty(t *testing.T) {
	out := Selection(nil)
	assert.Contains(t, out, "[empty ride list]")
}

func TestSelectionTotals(t *testing.T) {
	out := Selection([]ride.Ride{
		ride.New("Ferris Wheel", 10, 20),
		ride.New("Speedway", 4, 5),
	})
	assert.Contains(t, out, "Ferris Wheel ==> cost of 10 dollars; 20 minutes")
	assert.Contains(t, out, "Speedway ==> cost of 4 dollars; 5 minutes")
	assert.Contains(t, out, "Grand total cost: 14 dollars")
	assert.Contains(t, out, "Grand total time: 25 minutes")
}

func TestGridEmpty(t *testing.T) {
	assert.Contains(t, Grid(nil), "[empty]")
}

func TestGridRendersRows(t *testing.T) {
	rides := []ride.Ride{ride.New("Speedway", 4, 5)}
	g, err := maxtime.BuildGrid(rides, 6)
	require.NoError(t, err)

	out := Grid(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + one row per grid row
	require.Len(t, lines, 1+len(g))
	assert.Contains(t, lines[2], "5")
}

func TestGridRefusesLarge(t *testing.T) {
	tall := make(maxtime.Grid, MaxGridDim+1)
	for i := range tall {
		tall[i] = make([]float64, 2)
	}
	assert.Contains(t, Grid(tall), "[too large]")

	wide := maxtime.Grid{make([]float64, MaxGridDim+1)}
	assert.Contains(t, Grid(wide), "[too large]")
}
