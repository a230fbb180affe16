// Package main provides the exsum command line: extractive summaries of plain
// text or pre-parsed documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "exsum",
	Short:         "Extractive text summarizer",
	Long:          "exsum scores every sentence of a document with independent heuristics (title overlap, length, TF-ISF, position, proper nouns, thematic words, numbers) and prints the best ones.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	parserType string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (optional; uses ./config.yaml or ~/.config/exsum/config.yaml if not provided)")
	rootCmd.PersistentFlags().StringVar(&parserType, "parser", "", "Input parser: simple (plain text) or json (pre-parsed tokens); overrides config")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
