package models

import "testing"

func ptr(v float64) *float64 { return &v }

func TestMetricScore(t *testing.T) {
	rec := JudgementRecord{
		QualityScore:      ptr(0.9),
		CorrectnessScore:  ptr(0.8),
		GrammarScore:      ptr(0.7),
		CompletenessScore: ptr(0.6),
	}

	want := map[string]float64{
		"quality":      0.9,
		"correctness":  0.8,
		"grammar":      0.7,
		"completeness": 0.6,
	}
	for _, metric := range MetricKeys {
		got := rec.MetricScore(metric)
		if got == nil || *got != want[metric] {
			t.Errorf("MetricScore(%q) = %v, want %f", metric, got, want[metric])
		}
	}

	if rec.MetricScore("fluency") != nil {
		t.Error("MetricScore with an unknown key must return nil")
	}
}

func TestMetricAvg(t *testing.T) {
	row := ModelAggregate{QualityAvg: ptr(0.5)}

	if got := row.MetricAvg("quality"); got == nil || *got != 0.5 {
		t.Errorf("MetricAvg(quality) = %v, want 0.5", got)
	}
	if row.MetricAvg("grammar") != nil {
		t.Error("MetricAvg for an absent column must return nil")
	}
	if row.MetricAvg("fluency") != nil {
		t.Error("MetricAvg with an unknown key must return nil")
	}
}
