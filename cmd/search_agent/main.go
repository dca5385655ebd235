// Package main provides the entry point for the talent search CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "search_agent",
	Short: "Talent Search candidate matching service",
	Long:  "Talent Search scores candidate rosters against free-text queries and structured filters, as a CLI over roster files or as a REST API over a stored roster.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
