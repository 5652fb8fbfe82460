package models

import "encoding/json"

// MetricLeader names the model with the best average for one metric.
type MetricLeader struct {
	Model string  `json:"model"`
	Score float64 `json:"score"`
}

// LatencyLeader names the model with the lowest average latency per
// message among models that have latency data.
type LatencyLeader struct {
	Model             string  `json:"model"`
	SecondsPerMessage float64 `json:"seconds_per_message"`
}

// Summary is the leaderboard record persisted as summary.json.
type Summary struct {
	TopModel           string                  `json:"top_model"`
	TopModelOverallAvg float64                 `json:"top_model_overall_avg"`
	JudgementCounts    map[string]int          `json:"judgement_counts"`
	MetricLeaders      map[string]MetricLeader `json:"metric_leaders"`

	// LatencyLeader is nil when no model has latency data. It still
	// marshals as an empty object so the key is always present.
	LatencyLeader *LatencyLeader `json:"latency_leader"`
}

func (s Summary) MarshalJSON() ([]byte, error) {
	type alias Summary
	wrapper := struct {
		alias
		LatencyLeader any `json:"latency_leader"`
	}{alias: alias(s)}
	if s.LatencyLeader != nil {
		wrapper.LatencyLeader = s.LatencyLeader
	} else {
		wrapper.LatencyLeader = struct{}{}
	}
	return json.Marshal(wrapper)
}
