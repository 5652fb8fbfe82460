package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/modelbench/verdict/internal/models"
)

const (
	// FlatTableFile holds one row per judged conversation.
	FlatTableFile = "judgements_flat.csv"
	// AggregateTableFile holds one row per retained model.
	AggregateTableFile = "metrics_by_model.csv"
)

var flatHeader = []string{
	"id", "model", "goal", "start_time", "end_time",
	"conversation_turns", "conversation_tokens",
	"quality_score", "correctness_score", "grammar_score", "completeness_score",
	"overall_score", "latency_seconds", "latency_seconds_per_message",
}

var aggregateHeader = []string{
	"model",
	"quality_avg", "correctness_avg", "grammar_avg", "completeness_avg",
	"overall_avg", "latency_seconds_avg", "latency_seconds_per_message_avg",
	"judgement_count",
}

// WriteFlatTable persists every judgement record, sorted by model then
// id, one row per conversation. Records with missing scores keep their
// row with empty cells rather than being dropped.
func (w *Writer) WriteFlatTable(records []models.JudgementRecord) (string, error) {
	sorted := make([]models.JudgementRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Model != sorted[j].Model {
			return sorted[i].Model < sorted[j].Model
		}
		return sorted[i].ID < sorted[j].ID
	})

	rows := make([][]string, 0, len(sorted)+1)
	rows = append(rows, flatHeader)
	for _, rec := range sorted {
		rows = append(rows, []string{
			rec.ID,
			rec.Model,
			rec.Goal,
			formatOptional(rec.StartTime),
			formatOptional(rec.EndTime),
			strconv.Itoa(rec.ConversationTurns),
			strconv.Itoa(rec.ConversationTokens),
			formatOptional(rec.QualityScore),
			formatOptional(rec.CorrectnessScore),
			formatOptional(rec.GrammarScore),
			formatOptional(rec.CompletenessScore),
			formatOptional(rec.OverallScore),
			formatOptional(rec.LatencySeconds),
			formatOptional(rec.LatencySecondsPerMessage),
		})
	}

	return w.writeCSV(FlatTableFile, rows)
}

// WriteAggregateTable persists the per-model aggregate rows in their
// given (overall-descending) order, indexed by model name.
func (w *Writer) WriteAggregateTable(rows []models.ModelAggregate) (string, error) {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, aggregateHeader)
	for _, row := range rows {
		out = append(out, []string{
			row.Model,
			formatOptional(row.QualityAvg),
			formatOptional(row.CorrectnessAvg),
			formatOptional(row.GrammarAvg),
			formatOptional(row.CompletenessAvg),
			formatOptional(row.OverallAvg),
			formatOptional(row.LatencySecondsAvg),
			formatOptional(row.LatencySecondsPerMessageAvg),
			strconv.Itoa(row.JudgementCount),
		})
	}

	return w.writeCSV(AggregateTableFile, out)
}

func (w *Writer) writeCSV(name string, rows [][]string) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(rows); err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	return w.writeAtomic(name, buf.Bytes())
}

// formatOptional renders an optional numeric cell: empty when absent,
// shortest round-trip float text otherwise.
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
