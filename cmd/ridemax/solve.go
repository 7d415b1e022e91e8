package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parkops/ridemax/internal/catalog"
	"github.com/parkops/ridemax/internal/maxtime"
	"github.com/parkops/ridemax/internal/report"
	"github.com/parkops/ridemax/internal/ride"
)

var (
	solveBudget   int
	solveAlgo     string
	solveMinTime  float64
	solveMaxTime  float64
	solveMaxItems int
	solveFilter   bool
	solveGrid     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the planner once against the configured catalog",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveBudget, "budget", -1, "dollar budget (default from config)")
	solveCmd.Flags().StringVar(&solveAlgo, "algo", "dynamic", "dynamic or exhaustive")
	solveCmd.Flags().Float64Var(&solveMinTime, "min-time", -1, "filter: minimum minutes (default from config)")
	solveCmd.Flags().Float64Var(&solveMaxTime, "max-time", -1, "filter: maximum minutes (default from config)")
	solveCmd.Flags().IntVar(&solveMaxItems, "max-items", -1, "filter: maximum rides considered (default from config)")
	solveCmd.Flags().BoolVar(&solveFilter, "filter", false, "apply the time/size filter before solving (always on for exhaustive)")
	solveCmd.Flags().BoolVar(&solveGrid, "grid", false, "also print the DP grid (dynamic only)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}
	rides, err := catalog.Load(params.CatalogPath)
	if err != nil {
		return err
	}

	budget := params.Budget
	if solveBudget >= 0 {
		budget = solveBudget
	}
	minTime := params.MinTime
	if solveMinTime >= 0 {
		minTime = solveMinTime
	}
	maxTime := params.MaxTime
	if solveMaxTime >= 0 {
		maxTime = solveMaxTime
	}
	maxItems := params.MaxItems
	if solveMaxItems >= 0 {
		maxItems = solveMaxItems
	}

	if solveFilter || solveAlgo == "exhaustive" {
		rides = ride.Filter(rides, minTime, maxTime, maxItems)
	}

	var (
		best []ride.Ride
		grid maxtime.Grid
	)
	switch solveAlgo {
	case "dynamic":
		best, grid, err = maxtime.DynamicWithGrid(rides, budget)
	case "exhaustive":
		best, err = maxtime.Exhaustive(rides, float64(budget))
	default:
		return fmt.Errorf("unknown algo %q: want dynamic or exhaustive", solveAlgo)
	}
	if err != nil {
		return err
	}

	fmt.Print(report.Selection(best))

	if solveGrid && grid != nil {
		fmt.Print(report.Grid(grid))
	}
	return nil
}
