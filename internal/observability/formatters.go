// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/report-normalizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReportSummary outputs a human-readable overview of a normalized report.
func (p *Printer) PrintReportSummary(rep *types.NormalizedReport) {
	if rep == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:          %s\n", rep.Meta.RunID))
	if rep.Meta.IndustryName != "" {
		sb.WriteString(fmt.Sprintf("Industry:     %s\n", rep.Meta.IndustryName))
	}
	sb.WriteString(fmt.Sprintf("Competitors:  %d\n", rep.Meta.CompetitorCount))
	sb.WriteString(fmt.Sprintf("Diff labels:  %d\n", len(rep.FeatureDiff.Labels)))
	sb.WriteString(fmt.Sprintf("Recs / steps: %d / %d\n",
		len(rep.Recommendations.Recommendations), len(rep.Recommendations.NextSteps)))
	sb.WriteString(fmt.Sprintf("Pricing rows: %d", len(rep.TimelinePricing.Rows)))
	if rep.TimelinePricing.FallbackText != "" {
		sb.WriteString("\nTimeline fell back to free text")
	}

	p.printBox("Normalized Report", sb.String())
}

// PrintCompetitors outputs the canonical competitor list, flagging inactive
// entries.
func (p *Printer) PrintCompetitors(entities []types.CanonicalEntity) {
	var sb strings.Builder
	shown := len(entities)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}
	for _, e := range entities[:shown] {
		marker := " "
		if e.Inactive {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, e.Name))
		if e.Category != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", e.Category))
		}
		sb.WriteString(fmt.Sprintf(" - %d features\n", len(e.NotableFeatures)))
	}
	if len(entities) > shown {
		sb.WriteString(fmt.Sprintf("… and %d more", len(entities)-shown))
	}

	p.printBox(fmt.Sprintf("Competitors (%d)", len(entities)), strings.TrimRight(sb.String(), "\n"))
}

// PrintDiffMatrix renders the feature-diff matrix as a presence table with
// one column per entity.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDiffMatrix(matrix *types.DiffMatrix) {
	if matrix == nil || len(matrix.Labels) == 0 {
		fmt.Fprintln(p.out, "(no comparable features)")
		return
	}

	labelWidth := 0
	for _, label := range matrix.Labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}
	if labelWidth > boxWidth/2 {
		labelWidth = boxWidth / 2
	}

	header := fmt.Sprintf("%-*s", labelWidth, "feature")
	for _, name := range matrix.Entities {
		header += fmt.Sprintf("  %s", truncate(name, 12))
	}
	fmt.Fprintln(p.out, header)

	for i, label := range matrix.Labels {
		row := fmt.Sprintf("%-*s", labelWidth, truncate(label, labelWidth))
		for j, name := range matrix.Entities {
			mark := "·"
			if matrix.Present(i, j) {
				mark = "✓"
			}
			row += fmt.Sprintf("  %-*s", len(truncate(name, 12)), mark)
		}
		fmt.Fprintln(p.out, row)
	}
	if matrix.FallbackAllLabels {
		fmt.Fprintln(p.out, "(no differentiating features; showing full set)")
	}
}

// PrintRecommendations outputs both buckets.
func (p *Printer) PrintRecommendations(bucket *types.RecommendationBucket) {
	if bucket == nil {
		return
	}
	var sb strings.Builder
	appendItems(&sb, "Recommendations", bucket.Recommendations)
	appendItems(&sb, "Next Steps", bucket.NextSteps)
	p.printBox("Advisory", strings.TrimRight(sb.String(), "\n"))
}

func appendItems(sb *strings.Builder, title string, items []string) {
	sb.WriteString(title + ":\n")
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	shown := len(items)
	if shown > maxItemsToShow {
		shown = maxItemsToShow
	}
	for _, item := range items[:shown] {
		sb.WriteString("  - " + item + "\n")
	}
	if len(items) > shown {
		sb.WriteString(fmt.Sprintf("  … and %d more\n", len(items)-shown))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
