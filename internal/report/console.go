package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/modelbench/verdict/internal/models"
)

// FormatConsoleReport renders the leaderboard block printed at the end
// of a run: top model, per-metric leaders, the latency leader when one
// exists, and the generated chart paths.
func FormatConsoleReport(summary models.Summary, figurePaths []string) string {
	var b strings.Builder

	b.WriteString("Analysis completed.\n")
	b.WriteString(fmt.Sprintf("Top model: %s (overall avg %.3f)\n", summary.TopModel, summary.TopModelOverallAvg))

	if len(summary.MetricLeaders) > 0 {
		b.WriteString("Metric leaders:\n")
		nameWidth := 0
		for _, metric := range models.MetricKeys {
			if _, ok := summary.MetricLeaders[metric]; !ok {
				continue
			}
			if w := runewidth.StringWidth(metric); w > nameWidth {
				nameWidth = w
			}
		}
		for _, metric := range models.MetricKeys {
			leader, ok := summary.MetricLeaders[metric]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf(" - %s  %s (%.3f)\n", padRight(metric+":", nameWidth+1), leader.Model, leader.Score))
		}
	}

	if summary.LatencyLeader != nil {
		b.WriteString(fmt.Sprintf("Fastest model (per message): %s (%.2fs average latency per message)\n",
			summary.LatencyLeader.Model, summary.LatencyLeader.SecondsPerMessage))
	}

	if len(figurePaths) > 0 {
		b.WriteString("Generated figures:\n")
		for _, path := range figurePaths {
			b.WriteString(fmt.Sprintf(" - %s\n", path))
		}
	}

	return b.String()
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
