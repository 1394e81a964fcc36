// Package main provides the resume matcher command line, HTTP server and queue worker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	jsonOutput bool
	noLLM      bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume and job description matching engine",
	Long: "Resume Matcher extracts keywords, scores a resume against a job description, audits ATS compatibility " +
		"and writing style, and suggests prioritized improvements. It runs as a CLI, an HTTP API or a queue worker.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&noLLM, "no-llm", false, "Use only the heuristic keyword extractor even if a Gemini key is configured")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
