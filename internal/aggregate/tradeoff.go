package aggregate

import (
	"sort"

	"github.com/modelbench/verdict/internal/metrics"
	"github.com/modelbench/verdict/internal/models"
)

// TradeoffPoint is one model with both a grammar average and a latency
// per-message average, the two axes of the trade-off scatter.
type TradeoffPoint struct {
	Model      string
	GrammarAvg float64
	LatencyAvg float64
}

// TradeoffPoints selects the rows carrying both values and returns them
// sorted by grammar average descending, keeping table order on ties.
// The resulting order is the tie-break order for BestTradeoff.
func TradeoffPoints(rows []models.ModelAggregate) []TradeoffPoint {
	var points []TradeoffPoint
	for _, row := range rows {
		if row.GrammarAvg == nil || row.LatencySecondsPerMessageAvg == nil {
			continue
		}
		points = append(points, TradeoffPoint{
			Model:      row.Model,
			GrammarAvg: *row.GrammarAvg,
			LatencyAvg: *row.LatencySecondsPerMessageAvg,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].GrammarAvg > points[j].GrammarAvg
	})
	return points
}

// BestTradeoff returns the index of the point with the smallest sum of
// dense ranks: grammar ranked descending, latency ranked ascending,
// ties sharing a rank. The first point in order wins a rank-sum tie.
// Returns -1 for empty input.
func BestTradeoff(points []TradeoffPoint) int {
	if len(points) == 0 {
		return -1
	}

	grammar := make([]float64, len(points))
	latency := make([]float64, len(points))
	for i, p := range points {
		grammar[i] = p.GrammarAvg
		latency[i] = p.LatencyAvg
	}

	grammarRanks := metrics.DenseRankDesc(grammar)
	latencyRanks := metrics.DenseRankAsc(latency)

	best := 0
	bestSum := grammarRanks[0] + latencyRanks[0]
	for i := 1; i < len(points); i++ {
		if sum := grammarRanks[i] + latencyRanks[i]; sum < bestSum {
			best = i
			bestSum = sum
		}
	}
	return best
}
