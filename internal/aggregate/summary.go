package aggregate

import "github.com/modelbench/verdict/internal/models"

// BuildSummary derives the leaderboard record from the filtered,
// already-sorted aggregate rows. The top model is the first row; each
// metric leader is the model with the maximum average for that metric,
// first occurrence winning ties. Metrics no retained model scored are
// left out of the leader map. rows must be non-empty.
func BuildSummary(rows []models.ModelAggregate) models.Summary {
	top := rows[0]

	summary := models.Summary{
		TopModel:        top.Model,
		JudgementCounts: make(map[string]int, len(rows)),
		MetricLeaders:   make(map[string]models.MetricLeader, len(models.MetricKeys)),
	}
	if top.OverallAvg != nil {
		summary.TopModelOverallAvg = *top.OverallAvg
	}

	for _, row := range rows {
		summary.JudgementCounts[row.Model] = row.JudgementCount
	}

	for _, metric := range models.MetricKeys {
		var leader *models.MetricLeader
		for _, row := range rows {
			avg := row.MetricAvg(metric)
			if avg == nil {
				continue
			}
			if leader == nil || *avg > leader.Score {
				leader = &models.MetricLeader{Model: row.Model, Score: *avg}
			}
		}
		if leader != nil {
			summary.MetricLeaders[metric] = *leader
		}
	}

	summary.LatencyLeader = latencyLeader(rows)
	return summary
}

func latencyLeader(rows []models.ModelAggregate) *models.LatencyLeader {
	var leader *models.LatencyLeader
	for _, row := range rows {
		avg := row.LatencySecondsPerMessageAvg
		if avg == nil {
			continue
		}
		if leader == nil || *avg < leader.SecondsPerMessage {
			leader = &models.LatencyLeader{Model: row.Model, SecondsPerMessage: *avg}
		}
	}
	return leader
}
