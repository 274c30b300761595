// Package main provides the entry point for the keyword insights CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insights_agent",
	Short: "Keyword Insights recommendation engine",
	Long:  "Keyword Insights turns exported keyword-ranking datasets into prioritized SEO recommendations: quick wins, hidden gems, cannibalization fixes, content gaps, and competitor pressure, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
