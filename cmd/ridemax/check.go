package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parkops/ridemax/internal/maxtime"
)

var (
	checkTrials     int
	checkSeed       uint64
	checkRides      int
	checkMaxCost    int
	checkMaxMinutes float64
	checkBudget     int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check the DP solver against exhaustive search on random catalogs",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkTrials, "trials", 200, "number of random instances")
	checkCmd.Flags().Uint64Var(&checkSeed, "seed", 0, "RNG seed; 0 uses a crypto-backed source")
	checkCmd.Flags().IntVar(&checkRides, "rides", 12, "rides per instance (< 64)")
	checkCmd.Flags().IntVar(&checkMaxCost, "max-cost", 30, "maximum ride cost")
	checkCmd.Flags().Float64Var(&checkMaxMinutes, "max-minutes", 60, "maximum ride minutes")
	checkCmd.Flags().IntVar(&checkBudget, "budget", 80, "budget per instance")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var rng maxtime.RandomSource
	if checkSeed != 0 {
		rng = maxtime.NewSeededRNG(checkSeed)
	}
	res, err := maxtime.RunCrossCheck(maxtime.TrialParams{
		Rides:      checkRides,
		MaxCost:    checkMaxCost,
		MaxMinutes: checkMaxMinutes,
		Budget:     checkBudget,
	}, checkTrials, rng)
	if err != nil {
		return err
	}

	fmt.Printf("trials:        %d\n", res.Trials)
	fmt.Printf("disagreements: %d\n", res.Disagreements)
	fmt.Printf("optimal mean:  %.2f min (stddev %.2f)\n", res.Optimal.Mean, res.Optimal.StdDev)
	fmt.Printf("optimal p50:   %.2f  p90: %.2f  p99: %.2f\n", res.Optimal.P50, res.Optimal.P90, res.Optimal.P99)
	if res.Disagreements > 0 {
		return fmt.Errorf("solvers disagreed on %d of %d instances", res.Disagreements, res.Trials)
	}
	return nil
}
