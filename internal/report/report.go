package report

import (
	"fmt"
	"strings"

	"github.com/parkops/ridemax/internal/maxtime"
	"github.com/parkops/ridemax/internal/ride"
)

// MaxGridDim is the largest grid dimension Grid will render; bigger tables
// are refused outright rather than flooding the terminal.
const MaxGridDim = 250

// Selection renders a ride selection with per-ride lines and grand totals.
func Selection(rides []ride.Ride) string {
	var b strings.Builder
	b.WriteString("*** Ride Selection ***\n")

	if len(rides) == 0 {
		b.WriteString("[empty ride list]\n")
		return b.String()
	}
	for _, r := range rides {
		fmt.Fprintf(&b, "%s ==> cost of %d dollars; %g minutes\n", r.Description, r.Cost, r.Minutes)
	}
	cost, minutes := ride.Sum(rides)
	fmt.Fprintf(&b, "> Grand total cost: %d dollars\n", cost)
	fmt.Fprintf(&b, "> Grand total time: %g minutes\n", minutes)
	return b.String()
}

// Grid renders the DP table row by row. Tables wider or taller than
// MaxGridDim come back as "[too large]". Hint: redirect stdout to a file,
// which is easier to inspect than a terminal.
func Grid(g maxtime.Grid) string {
	var b strings.Builder
	b.WriteString("*** DP Grid ***\n")

	switch {
	case len(g) == 0:
		b.WriteString("[empty]\n")
	case len(g) > MaxGridDim || len(g[0]) > MaxGridDim:
		b.WriteString("[too large]\n")
	default:
		for _, row := range g {
			for _, v := range row {
				fmt.Fprintf(&b, "%6g", v)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
