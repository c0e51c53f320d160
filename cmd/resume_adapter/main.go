// Package main provides the entry point for the Resume Adapter CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_adapter",
	Short: "Resume Adapter CLI and HTTP API Server",
	Long:  "Resume Adapter normalizes raw resume text into a structured document and optionally rewrites it for a target job posting, with per-request cost accounting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
