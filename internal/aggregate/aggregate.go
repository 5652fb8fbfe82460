// Package aggregate groups judgement records by model, computes the
// per-model column means, and derives the leaderboard selections.
package aggregate

import (
	"errors"
	"sort"

	"github.com/modelbench/verdict/internal/metrics"
	"github.com/modelbench/verdict/internal/models"
)

// ErrAllModelsFiltered is returned when the zero-score filter removes
// every model, leaving nothing to report.
var ErrAllModelsFiltered = errors.New("all models were filtered out due to missing scores")

// ComputeModelAggregates groups records by model name and computes the
// mean of every score and latency column, skipping absent values. Rows
// are sorted descending by overall average; rows without an overall
// average sort last. Ties keep lexicographic model-name order.
func ComputeModelAggregates(records []models.JudgementRecord) []models.ModelAggregate {
	groups := make(map[string][]models.JudgementRecord)
	for _, rec := range records {
		groups[rec.Model] = append(groups[rec.Model], rec)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]models.ModelAggregate, 0, len(names))
	for _, name := range names {
		group := groups[name]
		row := models.ModelAggregate{
			Model:          name,
			JudgementCount: len(group),
		}

		row.QualityAvg = columnMean(group, func(r *models.JudgementRecord) *float64 { return r.QualityScore })
		row.CorrectnessAvg = columnMean(group, func(r *models.JudgementRecord) *float64 { return r.CorrectnessScore })
		row.GrammarAvg = columnMean(group, func(r *models.JudgementRecord) *float64 { return r.GrammarScore })
		row.CompletenessAvg = columnMean(group, func(r *models.JudgementRecord) *float64 { return r.CompletenessScore })
		row.OverallAvg = columnMean(group, func(r *models.JudgementRecord) *float64 { return r.OverallScore })
		row.LatencySecondsAvg = columnMean(group, func(r *models.JudgementRecord) *float64 { return r.LatencySeconds })
		row.LatencySecondsPerMessageAvg = columnMean(group, func(r *models.JudgementRecord) *float64 { return r.LatencySecondsPerMessage })

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		oi, oj := rows[i].OverallAvg, rows[j].OverallAvg
		switch {
		case oi == nil:
			return false
		case oj == nil:
			return true
		default:
			return *oi > *oj
		}
	})

	return rows
}

func columnMean(group []models.JudgementRecord, column func(*models.JudgementRecord) *float64) *float64 {
	values := make([]*float64, len(group))
	for i := range group {
		values[i] = column(&group[i])
	}
	return metrics.MeanPresent(values)
}

// FilterScoredModels discards models whose four metric averages sum to
// zero, treating absent as zero for this sum only. A model with no
// score signal at all carries nothing useful into charts or
// leaderboards. Fails when the filter removes every model.
func FilterScoredModels(rows []models.ModelAggregate) ([]models.ModelAggregate, error) {
	kept := make([]models.ModelAggregate, 0, len(rows))
	for _, row := range rows {
		sum := 0.0
		for _, metric := range models.MetricKeys {
			if avg := row.MetricAvg(metric); avg != nil {
				sum += *avg
			}
		}
		if sum > 0 {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil, ErrAllModelsFiltered
	}
	return kept, nil
}
