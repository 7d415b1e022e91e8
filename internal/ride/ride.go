package ride

// Ride is one purchasable ride in the park catalog.
// Rides are immutable values; every container (full catalog, filtered
// subset, solver output) shares the same logical entries read-only.
type Ride struct {
	Description string  // human-readable, e.g. "Ferris Wheel"; non-empty
	Cost        int     // dollars; must be positive
	Minutes     float64 // ride time in minutes; non-negative
}

// New builds a Ride and panics if the value constraints are violated.
// Internal construction of an invalid ride is a programming error, not a
// runtime condition; external rows that would violate these constraints
// are skipped by the catalog loader and never reach this point.
func New(description string, cost int, minutes float64) Ride {
	if description == "" {
		panic("ride: empty description")
	}
	if cost <= 0 {
		panic("ride: cost must be positive")
	}
	if minutes < 0 {
		panic("ride: minutes must be non-negative")
	}
	return Ride{Description: description, Cost: cost, Minutes: minutes}
}

// Sum returns the total dollar cost and total minutes of a selection.
// The empty selection sums to (0, 0).
func Sum(rides []Ride) (totalCost int, totalMinutes float64) {
	for _, r := range rides {
		totalCost += r.Cost
		totalMinutes += r.Minutes
	}
	return totalCost, totalMinutes
}

// Filter returns the rides whose minutes lie within [minMinutes, maxMinutes]
// (inclusive both ends), in source order, truncated to at most maxCount
// entries. Callers preparing input for exhaustive search pass a positive
// minMinutes so zero-time rides, which only burn budget, are dropped, and a
// maxCount small enough to keep 2^n enumeration practical.
func Filter(source []Ride, minMinutes, maxMinutes float64, maxCount int) []Ride {
	out := make([]Ride, 0)
	for _, r := range source {
		if len(out) >= maxCount {
			break
		}
		if r.Minutes >= minMinutes && r.Minutes <= maxMinutes {
			out = append(out, r)
		}
	}
	return out
}
