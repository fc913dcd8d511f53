package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/report-normalizer/internal/observability"
	"github.com/jonathan/report-normalizer/internal/report"
	"github.com/jonathan/report-normalizer/internal/schemas"
	"github.com/jonathan/report-normalizer/internal/types"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize one report payload into presentation-ready JSON",
	Long:  "Normalize a decoded report payload JSON file into the stable NormalizedReport structure, validating the output against the normalized_report schema.",
	RunE:  runNormalize,
}

var (
	normalizeInputFile       string
	normalizeOutputFile      string
	normalizeDefaultCategory string
	normalizeCategoryFilter  string
	normalizeVerbose         bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInputFile, "in", "i", "", "Path to raw payload JSON file (required)")
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	normalizeCmd.Flags().StringVar(&normalizeDefaultCategory, "default-category", "", "Category for competitors lacking one")
	normalizeCmd.Flags().StringVar(&normalizeCategoryFilter, "category-filter", "", "Restrict the feature-diff matrix to one category")
	normalizeCmd.Flags().BoolVarP(&normalizeVerbose, "verbose", "v", false, "Print detailed summaries")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, _ []string) error {
	if normalizeInputFile == "" {
		return fmt.Errorf("must provide --in")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if normalizeDefaultCategory == "" {
		normalizeDefaultCategory = cfg.DefaultCategory
	}
	if normalizeCategoryFilter == "" {
		normalizeCategoryFilter = cfg.CategoryFilter
	}
	verbose := normalizeVerbose || cfg.Verbose

	logger := observability.NewLogger(verbose)
	defer func() { _ = logger.Sync() }()

	rep, jsonBytes, err := normalizeFile(normalizeInputFile, normalizeDefaultCategory, normalizeCategoryFilter, logger)
	if err != nil {
		return err
	}

	// Validate against the schema before handing output to the renderer.
	schemaPath := cfg.SchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ReportSchemaFile)
	}
	if schemaPath != "" {
		if err := schemas.ValidateReportBytes(schemaPath, jsonBytes); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("normalized output does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	if normalizeOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	} else if err := os.WriteFile(normalizeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintReportSummary(&rep)
		printer.PrintCompetitors(rep.Competitors)
		printer.PrintRecommendations(&rep.Recommendations)
	}
	if normalizeOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Normalized report written to %s\n", normalizeOutputFile)
	}
	return nil
}

// normalizeFile decodes one payload file and runs the full normalization.
func normalizeFile(path, defaultCategory, categoryFilter string, logger *zap.Logger) (types.NormalizedReport, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.NormalizedReport{}, nil, fmt.Errorf("failed to read payload file: %w", err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return types.NormalizedReport{}, nil, fmt.Errorf("failed to parse payload JSON: %w", err)
	}

	rep, err := report.Normalize(payload, report.Options{
		DefaultCategory: defaultCategory,
		CategoryFilter:  categoryFilter,
		Logger:          logger,
	})
	if err != nil {
		return types.NormalizedReport{}, nil, err
	}

	jsonBytes, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return types.NormalizedReport{}, nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return rep, jsonBytes, nil
}
