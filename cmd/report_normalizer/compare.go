package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/report-normalizer/internal/observability"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print the competitor feature-diff matrix for a payload",
	Long:  "Normalize a payload's competitor section and print the frequency-ranked feature-diff matrix as a presence table.",
	RunE:  runCompare,
}

var (
	compareInputFile      string
	compareCategoryFilter string
	compareVerbose        bool
)

func init() {
	compareCmd.Flags().StringVarP(&compareInputFile, "in", "i", "", "Path to raw payload JSON file (required)")
	compareCmd.Flags().StringVar(&compareCategoryFilter, "category-filter", "", "Restrict the matrix to one category")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	if compareInputFile == "" {
		return fmt.Errorf("must provide --in")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if compareCategoryFilter == "" {
		compareCategoryFilter = cfg.CategoryFilter
	}

	logger := observability.NewLogger(compareVerbose || cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	rep, _, err := normalizeFile(compareInputFile, cfg.DefaultCategory, compareCategoryFilter, logger)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCompetitors(rep.Competitors)
	printer.PrintDiffMatrix(&rep.FeatureDiff)
	return nil
}
