package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title TPO placement portal API
// @version 1.0
// @description Profile verification, job posting approval and application review for the campus placement office.
// @BasePath /
var rootCmd = &cobra.Command{
	Use:   "tpo",
	Short: "TPO placement portal backend",
	Long:  "Backend of the campus placement office: profile verification, job posting approval and the two-gate application review.",
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
