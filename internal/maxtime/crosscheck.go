package maxtime

import (
	"fmt"
	"math"
	"sort"

	"github.com/parkops/ridemax/internal/ride"
)

// TrialParams describes one family of random instances for the cross-check.
type TrialParams struct {
	Rides      int     // rides per instance; must be < 64 for the oracle
	MaxCost    int     // costs drawn from [1, MaxCost]
	MaxMinutes float64 // minutes drawn from [0.5, MaxMinutes] in half steps
	Budget     int     // budget for both solvers
}

// Stats summarizes the optimal minutes seen across trials.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	// Raw samples if the caller needs histograms/exports.
	Samples []float64 `json:"-"`
}

// Result is the outcome of a cross-check run.
type Result struct {
	Trials        int
	Disagreements int   // trials where the two solvers' optimal minutes differ
	Optimal       Stats // distribution of the (agreed) optimal minutes
}

// calcStats computes mean/variance/percentiles for float samples.
func calcStats(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return cp[0]
		}
		if p >= 1 {
			return cp[n-1]
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return cp[i]
		}
		return cp[i]*(1-f) + cp[i+1]*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// RandomRides generates one instance. Minutes are drawn in half-minute
// steps so both solvers accumulate the exact same dyadic floats and their
// optima can be compared with plain equality.
func RandomRides(rng RandomSource, p TrialParams) []ride.Ride {
	rides := make([]ride.Ride, p.Rides)
	halves := int(p.MaxMinutes * 2)
	if halves < 1 {
		halves = 1
	}
	for i := range rides {
		rides[i] = ride.New(
			fmt.Sprintf("ride-%d", i),
			1+rng.IntN(p.MaxCost),
			float64(1+rng.IntN(halves))/2,
		)
	}
	return rides
}

// RunCrossCheck solves `trials` random instances with both algorithms and
// reports how often their optimal minutes disagree (the answer should be
// never) along with summary stats of the optima. A nil rng uses the crypto
// default; pass NewSeededRNG for reproducible runs.
func RunCrossCheck(p TrialParams, trials int, rng RandomSource) (Result, error) {
	if trials <= 0 {
		return Result{}, nil
	}
	if p.Rides >= 64 {
		return Result{}, ErrTooManyRides
	}
	if p.MaxCost <= 0 || p.Rides <= 0 {
		return Result{}, fmt.Errorf("maxtime: cross-check needs positive Rides and MaxCost")
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	res := Result{Trials: trials}
	samples := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		rides := RandomRides(rng, p)

		exact, err := Exhaustive(rides, float64(p.Budget))
		if err != nil {
			return Result{}, err
		}
		dyn, err := Dynamic(rides, p.Budget)
		if err != nil {
			return Result{}, err
		}

		_, exactMinutes := ride.Sum(exact)
		_, dynMinutes := ride.Sum(dyn)
		if exactMinutes != dynMinutes {
			res.Disagreements++
		}
		samples = append(samples, exactMinutes)
	}
	res.Optimal = calcStats(samples)
	return res, nil
}
