package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/modelbench/verdict/internal/models"
)

const (
	// LeaderboardMarkdownFile is the shareable markdown leaderboard.
	LeaderboardMarkdownFile = "leaderboard.md"
	// LeaderboardHTMLFile is the same leaderboard rendered to HTML.
	LeaderboardHTMLFile = "leaderboard.html"
)

// FormatLeaderboardMarkdown renders the aggregate table and leaderboard
// as a markdown report suitable for pasting into a PR or chat.
func FormatLeaderboardMarkdown(summary models.Summary, rows []models.ModelAggregate, figurePaths []string) string {
	var b strings.Builder

	b.WriteString("# Model Leaderboard\n\n")
	b.WriteString(fmt.Sprintf("**Top model:** %s (overall avg %.3f)\n\n", summary.TopModel, summary.TopModelOverallAvg))

	b.WriteString("| Model | Overall | Quality | Correctness | Grammar | Completeness | Latency (s/msg) | Judgements |\n")
	b.WriteString("|-------|---------|---------|-------------|---------|--------------|-----------------|------------|\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %d |\n",
			row.Model,
			markdownCell(row.OverallAvg, "%.3f"),
			markdownCell(row.QualityAvg, "%.3f"),
			markdownCell(row.CorrectnessAvg, "%.3f"),
			markdownCell(row.GrammarAvg, "%.3f"),
			markdownCell(row.CompletenessAvg, "%.3f"),
			markdownCell(row.LatencySecondsPerMessageAvg, "%.2f"),
			row.JudgementCount))
	}
	b.WriteString("\n")

	if len(summary.MetricLeaders) > 0 {
		b.WriteString("## Metric leaders\n\n")
		for _, metric := range models.MetricKeys {
			leader, ok := summary.MetricLeaders[metric]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- **%s**: %s (%.3f)\n", metric, leader.Model, leader.Score))
		}
		b.WriteString("\n")
	}

	if summary.LatencyLeader != nil {
		b.WriteString(fmt.Sprintf("**Fastest model (per message):** %s (%.2fs average latency per message)\n\n",
			summary.LatencyLeader.Model, summary.LatencyLeader.SecondsPerMessage))
	}

	if len(figurePaths) > 0 {
		b.WriteString("## Figures\n\n")
		for _, path := range figurePaths {
			name := filepath.Base(path)
			b.WriteString(fmt.Sprintf("- [%s](%s)\n", name, name))
		}
	}

	return b.String()
}

func markdownCell(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

// WriteLeaderboard persists the markdown leaderboard and its HTML
// rendering. Returns both paths.
func (w *Writer) WriteLeaderboard(summary models.Summary, rows []models.ModelAggregate, figurePaths []string) (string, string, error) {
	md := FormatLeaderboardMarkdown(summary, rows, figurePaths)

	mdPath, err := w.writeAtomic(LeaderboardMarkdownFile, []byte(md))
	if err != nil {
		return "", "", err
	}

	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(md), &body); err != nil {
		return "", "", fmt.Errorf("rendering leaderboard HTML: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Model Leaderboard</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	htmlPath, err := w.writeAtomic(LeaderboardHTMLFile, page.Bytes())
	if err != nil {
		return "", "", err
	}
	return mdPath, htmlPath, nil
}
