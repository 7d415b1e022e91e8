package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parkops/ridemax/internal/config"
)

var (
	cfgBase string
	park    string
)

var rootCmd = &cobra.Command{
	Use:   "ridemax",
	Short: "Pick the rides that maximize time in the park under a dollar budget",
	Long: "Ridemax loads a ride catalog and selects the subset of rides whose total\n" +
		"time is greatest while the total cost stays within budget, using either an\n" +
		"exact DP solver or an exhaustive bitmask search.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgBase, "config", ".", "config base directory (expects <base>/parks/default.yaml)")
	rootCmd.PersistentFlags().StringVar(&park, "park", "", "park profile overriding the defaults")
}

// loadParams resolves default → park config into runtime params.
func loadParams() (config.Params, error) {
	_, p, err := config.NewLoader(cfgBase).Resolve(park)
	return p, err
}
