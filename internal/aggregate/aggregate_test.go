package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbench/verdict/internal/models"
)

func ptr(v float64) *float64 { return &v }

func record(model string, quality, overall *float64) models.JudgementRecord {
	return models.JudgementRecord{Model: model, QualityScore: quality, OverallScore: overall}
}

func TestComputeModelAggregatesSkipsAbsentValues(t *testing.T) {
	records := []models.JudgementRecord{
		record("m", ptr(0.8), ptr(0.8)),
		record("m", nil, nil),
	}

	rows := ComputeModelAggregates(records)
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, 2, row.JudgementCount)
	require.NotNil(t, row.QualityAvg)
	assert.InDelta(t, 0.8, *row.QualityAvg, 1e-9, "absent scores must not dilute the mean")
	assert.Nil(t, row.CorrectnessAvg)
}

func TestComputeModelAggregatesSortsByOverallDescending(t *testing.T) {
	records := []models.JudgementRecord{
		record("low", ptr(0.2), ptr(0.2)),
		record("high", ptr(0.9), ptr(0.9)),
		record("unscored", nil, nil),
		record("mid", ptr(0.5), ptr(0.5)),
	}

	rows := ComputeModelAggregates(records)
	require.Len(t, rows, 4)
	assert.Equal(t, "high", rows[0].Model)
	assert.Equal(t, "mid", rows[1].Model)
	assert.Equal(t, "low", rows[2].Model)
	assert.Equal(t, "unscored", rows[3].Model, "rows without an overall average sort last")
}

func TestComputeModelAggregatesSpecExample(t *testing.T) {
	two := 2
	mk := func(model string, score, start, end float64) models.JudgementRecord {
		overall := score
		lat := (end - start) / 1000
		perMsg := lat / float64(two)
		return models.JudgementRecord{
			Model:                    model,
			ConversationTurns:        two,
			QualityScore:             ptr(score),
			CorrectnessScore:         ptr(score),
			GrammarScore:             ptr(score),
			CompletenessScore:        ptr(score),
			OverallScore:             ptr(overall),
			StartTime:                ptr(start),
			EndTime:                  ptr(end),
			LatencySeconds:           ptr(lat),
			LatencySecondsPerMessage: ptr(perMsg),
		}
	}
	x := mk("X", 0.75, 0, 2000)
	x.QualityScore, x.CorrectnessScore = ptr(0.9), ptr(0.8)
	x.GrammarScore, x.CompletenessScore = ptr(0.7), ptr(0.6)
	y := mk("Y", 0.5, 0, 1000)

	rows := ComputeModelAggregates([]models.JudgementRecord{x, y})
	require.Len(t, rows, 2)

	assert.Equal(t, "X", rows[0].Model)
	assert.InDelta(t, 0.75, *rows[0].OverallAvg, 1e-9)
	assert.InDelta(t, 2.0, *rows[0].LatencySecondsAvg, 1e-9)
	assert.InDelta(t, 1.0, *rows[0].LatencySecondsPerMessageAvg, 1e-9)

	assert.Equal(t, "Y", rows[1].Model)
	assert.InDelta(t, 0.5, *rows[1].OverallAvg, 1e-9)
	assert.InDelta(t, 1.0, *rows[1].LatencySecondsAvg, 1e-9)
	assert.InDelta(t, 0.5, *rows[1].LatencySecondsPerMessageAvg, 1e-9)

	summary := BuildSummary(rows)
	assert.Equal(t, "X", summary.TopModel)
	require.NotNil(t, summary.LatencyLeader)
	assert.Equal(t, "Y", summary.LatencyLeader.Model)
	assert.InDelta(t, 0.5, summary.LatencyLeader.SecondsPerMessage, 1e-9)
}

func TestFilterScoredModels(t *testing.T) {
	rows := []models.ModelAggregate{
		{Model: "B", QualityAvg: ptr(0.1)},
		{Model: "A", QualityAvg: ptr(0), GrammarAvg: ptr(0), CompletenessAvg: ptr(0)},
		{Model: "C"},
	}

	kept, err := FilterScoredModels(rows)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "B", kept[0].Model, "a single nonzero metric average retains the model")
}

func TestFilterScoredModelsAllRemoved(t *testing.T) {
	rows := []models.ModelAggregate{
		{Model: "A"},
		{Model: "B", QualityAvg: ptr(0)},
	}

	_, err := FilterScoredModels(rows)
	assert.ErrorIs(t, err, ErrAllModelsFiltered)
}

func TestBuildSummaryLeaders(t *testing.T) {
	rows := []models.ModelAggregate{
		{
			Model:                       "first",
			QualityAvg:                  ptr(0.9),
			GrammarAvg:                  ptr(0.7),
			OverallAvg:                  ptr(0.8),
			LatencySecondsPerMessageAvg: ptr(1.5),
			JudgementCount:              3,
		},
		{
			Model:                       "second",
			QualityAvg:                  ptr(0.9),
			GrammarAvg:                  ptr(0.8),
			OverallAvg:                  ptr(0.6),
			LatencySecondsPerMessageAvg: ptr(0.4),
			JudgementCount:              2,
		},
	}

	summary := BuildSummary(rows)

	assert.Equal(t, "first", summary.TopModel)
	assert.InDelta(t, 0.8, summary.TopModelOverallAvg, 1e-9)
	assert.Equal(t, map[string]int{"first": 3, "second": 2}, summary.JudgementCounts)

	// exact tie on quality: first occurrence in table order wins
	assert.Equal(t, "first", summary.MetricLeaders["quality"].Model)
	assert.Equal(t, "second", summary.MetricLeaders["grammar"].Model)

	_, hasCorrectness := summary.MetricLeaders["correctness"]
	assert.False(t, hasCorrectness, "a metric nobody scored has no leader")

	require.NotNil(t, summary.LatencyLeader)
	assert.Equal(t, "second", summary.LatencyLeader.Model)
	assert.InDelta(t, 0.4, summary.LatencyLeader.SecondsPerMessage, 1e-9)
}

func TestBuildSummaryNoLatencyData(t *testing.T) {
	rows := []models.ModelAggregate{
		{Model: "m", QualityAvg: ptr(0.5), OverallAvg: ptr(0.5), JudgementCount: 1},
	}

	summary := BuildSummary(rows)
	assert.Nil(t, summary.LatencyLeader)
}

func TestTradeoffPointsOrderingAndSelection(t *testing.T) {
	rows := []models.ModelAggregate{
		{Model: "slow-good", GrammarAvg: ptr(0.9), LatencySecondsPerMessageAvg: ptr(3.0)},
		{Model: "fast-okay", GrammarAvg: ptr(0.7), LatencySecondsPerMessageAvg: ptr(0.5)},
		{Model: "mid", GrammarAvg: ptr(0.8), LatencySecondsPerMessageAvg: ptr(1.0)},
		{Model: "no-latency", GrammarAvg: ptr(0.95)},
	}

	points := TradeoffPoints(rows)
	require.Len(t, points, 3, "models without both values are excluded")
	assert.Equal(t, "slow-good", points[0].Model)
	assert.Equal(t, "mid", points[1].Model)
	assert.Equal(t, "fast-okay", points[2].Model)

	// rank sums: slow-good 1+3=4, mid 2+2=4, fast-okay 3+1=4; the
	// first point in order wins the tie
	assert.Equal(t, 0, BestTradeoff(points))
}

func TestBestTradeoffSmallestRankSumWins(t *testing.T) {
	points := []TradeoffPoint{
		{Model: "a", GrammarAvg: 0.9, LatencyAvg: 1.0}, // ranks 1 + 1 = 2
		{Model: "b", GrammarAvg: 0.8, LatencyAvg: 2.0}, // ranks 2 + 2 = 4
		{Model: "c", GrammarAvg: 0.7, LatencyAvg: 3.0}, // ranks 3 + 3 = 6
	}
	assert.Equal(t, 0, BestTradeoff(points))

	assert.Equal(t, -1, BestTradeoff(nil))
}
