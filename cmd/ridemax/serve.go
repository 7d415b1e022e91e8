package main

import (
	"github.com/spf13/cobra"

	"github.com/parkops/ridemax/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planner over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}
	srv, err := server.New(params)
	if err != nil {
		return err
	}
	defer srv.Close()
	return srv.ListenAndServe()
}
