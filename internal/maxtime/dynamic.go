package maxtime

import "github.com/parkops/ridemax/internal/ride"

// MaxGridCells caps the DP grid at (n+1)*(budget+1) cells. Go gives us no
// way to catch allocator exhaustion, so a request that would blow past this
// is refused up front with ErrGridTooLarge instead of taking the process
// down. 50M float64 cells is ~400MB, far beyond any practical catalog.
const MaxGridCells = 50_000_000

// Grid is the DP table: Grid[i][b] holds the best achievable minutes using
// only the first i rides under budget b. Row 0 is all zero.
type Grid [][]float64

// BuildGrid fills the (n+1) x (budget+1) table with the classical 0/1
// knapsack recurrence:
//
//	cell(i,b) = cell(i-1,b)                               if cost_i > b
//	          = max(cell(i-1,b), cell(i-1,b-cost_i)+t_i)  otherwise
//
// A non-positive budget yields a single zero column so the back-trace still
// has a well-formed table to walk.
func BuildGrid(rides []ride.Ride, budget int) (Grid, error) {
	if budget < 0 {
		budget = 0
	}
	n := len(rides)
	// budget >= MaxGridCells/(n+1) is (n+1)*(budget+1) > MaxGridCells
	// rearranged so a huge budget cannot overflow the comparison
	if budget >= MaxGridCells/(n+1) {
		return nil, ErrGridTooLarge
	}

	grid := make(Grid, n+1)
	for i := range grid {
		grid[i] = make([]float64, budget+1)
	}

	for i := 1; i <= n; i++ {
		cost, minutes := rides[i-1].Cost, rides[i-1].Minutes
		for b := 0; b <= budget; b++ {
			without := grid[i-1][b]
			grid[i][b] = without
			if cost <= b {
				if with := grid[i-1][b-cost] + minutes; with > without {
					grid[i][b] = with
				}
			}
		}
	}
	return grid, nil
}

// Dynamic finds the subset of rides with the greatest total minutes whose
// total cost fits within budget, via the DP grid and a back-trace.
//
// The back-trace walks from (n, budget) down: ride i is in the solution
// exactly when cell(i,b) differs from cell(i-1,b); on a tie the ride is
// excluded, matching the recurrence's strict-improvement include branch.
// The result comes back in back-trace order (reverse of input order).
//
// Minutes are summed with ordinary float addition and compared exactly; two
// paths reaching a cell with identical sums is the tie case above, not
// numerical noise to be epsilon-smoothed.
//
// O(n * budget) time and space. Zero rides or a non-positive budget returns
// the empty selection.
func Dynamic(rides []ride.Ride, budget int) ([]ride.Ride, error) {
	best, _, err := DynamicWithGrid(rides, budget)
	return best, err
}

// DynamicWithGrid is Dynamic but also hands back the filled grid, for
// callers that want to render or inspect the table without building it a
// second time.
func DynamicWithGrid(rides []ride.Ride, budget int) ([]ride.Ride, Grid, error) {
	grid, err := BuildGrid(rides, budget)
	if err != nil {
		return nil, nil, err
	}
	if budget < 0 {
		budget = 0
	}

	best := []ride.Ride{}
	b := budget
	for i := len(rides); i >= 1; i-- {
		if grid[i][b] != grid[i-1][b] {
			best = append(best, rides[i-1])
			b -= rides[i-1].Cost
		}
	}
	return best, grid, nil
}
