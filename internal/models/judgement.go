// Package models defines the data shapes shared across the analysis
// pipeline: one record per judged conversation, per-model aggregates,
// and the leaderboard summary written alongside the charts.
package models

// MetricKeys lists the four judged metrics in canonical order.
var MetricKeys = []string{"quality", "correctness", "grammar", "completeness"}

// JudgementRecord is one evaluated conversation loaded from a judgement
// file. Optional numerics are nil when the source file does not carry
// them; derived fields stay nil when their inputs are missing.
type JudgementRecord struct {
	ID    string
	Model string
	Goal  string

	// Epoch milliseconds, as recorded by the evaluation harness.
	StartTime *float64
	EndTime   *float64

	ConversationTurns  int
	ConversationTokens int

	QualityScore      *float64
	CorrectnessScore  *float64
	GrammarScore      *float64
	CompletenessScore *float64

	// OverallScore is the mean of the present metric scores, nil when
	// no metric was scored.
	OverallScore *float64

	LatencySeconds           *float64
	LatencySecondsPerMessage *float64
}

// MetricScore returns the score for one of the four metric keys, or nil
// for an unknown key.
func (r *JudgementRecord) MetricScore(metric string) *float64 {
	switch metric {
	case "quality":
		return r.QualityScore
	case "correctness":
		return r.CorrectnessScore
	case "grammar":
		return r.GrammarScore
	case "completeness":
		return r.CompletenessScore
	}
	return nil
}

// ModelAggregate is one per-model row of column means across that
// model's judgements. Averages are nil when no judgement in the group
// carried the underlying value.
type ModelAggregate struct {
	Model string

	QualityAvg      *float64
	CorrectnessAvg  *float64
	GrammarAvg      *float64
	CompletenessAvg *float64

	OverallAvg                  *float64
	LatencySecondsAvg           *float64
	LatencySecondsPerMessageAvg *float64

	JudgementCount int
}

// MetricAvg returns the average for one of the four metric keys, or nil
// for an unknown key.
func (a *ModelAggregate) MetricAvg(metric string) *float64 {
	switch metric {
	case "quality":
		return a.QualityAvg
	case "correctness":
		return a.CorrectnessAvg
	case "grammar":
		return a.GrammarAvg
	case "completeness":
		return a.CompletenessAvg
	}
	return nil
}
