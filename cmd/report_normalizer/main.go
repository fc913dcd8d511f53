// Package main provides the entry point for the report normalizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/report-normalizer/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "report_normalizer",
	Short: "Normalize AI-generated business-analysis report payloads",
	Long:  "Report Normalizer ingests schema-unstable, AI-generated business-analysis report payloads and emits stable, presentation-ready JSON: canonical competitors, a feature-diff matrix, bilingual recommendation buckets, and timeline/pricing rows.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

// loadConfig merges config file (if any) with environment overrides.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
