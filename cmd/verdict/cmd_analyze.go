package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/modelbench/verdict/internal/aggregate"
	"github.com/modelbench/verdict/internal/judgements"
	"github.com/modelbench/verdict/internal/models"
	"github.com/modelbench/verdict/internal/projectconfig"
	"github.com/modelbench/verdict/internal/report"
)

func newAnalyzeCommand() *cobra.Command {
	var judgementsDir string
	var outDir string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate judgement files and write tables, charts, and the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return err
			}
			if judgementsDir == "" {
				judgementsDir = cfg.Paths.Judgements
			}
			if outDir == "" {
				outDir = cfg.Paths.Analysis
			}

			writer := report.NewWriter(outDir, report.PlotRenderer{})
			return runAnalyze(cmd.OutOrStdout(), judgementsDir, writer)
		},
	}

	cmd.Flags().StringVar(&judgementsDir, "judgements", "", "Directory of judgement JSON files (default from .verdict.yaml)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory for tables, charts, and the summary (default from .verdict.yaml)")

	return cmd
}

// runAnalyze is the whole pipeline: load, aggregate, filter, then write
// every artifact. The latency chart and the trade-off scatter may be
// skipped on sparse data; everything else is fatal on error.
func runAnalyze(out io.Writer, judgementsDir string, writer *report.Writer) error {
	records, err := judgements.Load(judgementsDir)
	if err != nil {
		return err
	}
	slog.Debug("loaded judgements", "count", len(records), "dir", judgementsDir)

	rows := aggregate.ComputeModelAggregates(records)
	kept, err := aggregate.FilterScoredModels(rows)
	if err != nil {
		return err
	}
	slog.Debug("aggregated models", "total", len(rows), "retained", len(kept))

	if err := writer.EnsureDir(); err != nil {
		return err
	}
	if _, err := writer.WriteFlatTable(records); err != nil {
		return err
	}
	if _, err := writer.WriteAggregateTable(kept); err != nil {
		return err
	}

	var figures []string
	for _, metric := range models.MetricKeys {
		path, err := writer.MetricBarChart(kept, metric)
		if err != nil {
			return err
		}
		figures = append(figures, path)
	}

	path, err := writer.LatencyBarChart(kept)
	switch {
	case errors.Is(err, report.ErrNoLatencyData):
		fmt.Fprintf(out, "Skipping latency plot: %v\n", err)
	case err != nil:
		return err
	default:
		figures = append(figures, path)
	}

	path, err = writer.TradeoffScatter(kept)
	switch {
	case errors.Is(err, report.ErrNoTradeoffData):
		fmt.Fprintf(out, "Skipping grammar vs latency plot: %v\n", err)
	case err != nil:
		return err
	default:
		figures = append(figures, path)
	}

	summary := aggregate.BuildSummary(kept)
	if _, err := writer.WriteSummary(summary); err != nil {
		return err
	}
	if _, _, err := writer.WriteLeaderboard(summary, kept, figures); err != nil {
		return err
	}

	fmt.Fprint(out, report.FormatConsoleReport(summary, figures))
	return nil
}
