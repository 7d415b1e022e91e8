package maxtime

import "github.com/parkops/ridemax/internal/ride"

// Exhaustive finds the subset of rides with the greatest total minutes whose
// total cost fits within budget, by checking every one of the 2^n subsets.
// Subset j of the enumeration is the set of indices where bit j is set.
//
// The budget is a real number and the comparison is candidateCost <= budget,
// so a budget exactly equal to a subset's integral cost is feasible.
//
// The empty subset is always feasible, so the result is empty when nothing
// affordable improves on zero minutes. Among equal-time feasible subsets the
// first one in bitmask order is kept.
//
// O(2^n * n); this exists as a ground-truth oracle for Dynamic and must only
// be fed size-bounded input (see ride.Filter). len(rides) >= 64 returns
// ErrTooManyRides rather than silently wrapping the counter.
func Exhaustive(rides []ride.Ride, budget float64) ([]ride.Ride, error) {
	if len(rides) >= 64 {
		return nil, ErrTooManyRides
	}

	n := uint(len(rides))
	best := []ride.Ride{}
	bestMinutes := 0.0

	for bits := uint64(0); bits < uint64(1)<<n; bits++ {
		candidate := make([]ride.Ride, 0, n)
		for j := uint(0); j < n; j++ {
			if (bits>>j)&1 == 1 {
				candidate = append(candidate, rides[j])
			}
		}

		cost, minutes := ride.Sum(candidate)
		if float64(cost) <= budget && minutes > bestMinutes {
			best = candidate
			bestMinutes = minutes
		}
	}
	return best, nil
}
