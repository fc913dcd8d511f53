package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/report-normalizer/internal/observability"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Normalize every payload JSON file in a directory",
	Long:  "Normalize all *.json payload files in a directory concurrently, writing one <name>.normalized.json per input.",
	RunE:  runBatch,
}

var (
	batchInputDir  string
	batchOutputDir string
)

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "dir", "d", "", "Directory containing payload JSON files (required)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Output directory (default: same as input)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	if batchInputDir == "" {
		return fmt.Errorf("must provide --dir")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outDir := batchOutputDir
	if outDir == "" {
		outDir = batchInputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(batchInputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	logger := observability.NewLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	var g errgroup.Group
	g.SetLimit(cfg.Concurrency())

	processed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".normalized.json") {
			continue
		}
		processed++
		inPath := filepath.Join(batchInputDir, name)
		outPath := filepath.Join(outDir, strings.TrimSuffix(name, ".json")+".normalized.json")

		g.Go(func() error {
			_, jsonBytes, err := normalizeFile(inPath, cfg.DefaultCategory, cfg.CategoryFilter, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
				return fmt.Errorf("%s: failed to write output: %w", name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Normalized %d payload(s) into %s\n", processed, outDir)
	return nil
}
