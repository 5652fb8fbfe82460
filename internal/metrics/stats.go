// Package metrics holds the small pure statistics helpers used by the
// aggregation and chart-selection code.
package metrics

import "sort"

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanPresent computes the arithmetic mean of the non-nil values,
// skipping nil entries entirely. Returns nil when no value is present;
// an all-absent column averages to absent, never to zero.
func MeanPresent(values []*float64) *float64 {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			present = append(present, *v)
		}
	}
	if len(present) == 0 {
		return nil
	}
	m := Mean(present)
	return &m
}

// DenseRankAsc assigns 1-based dense ranks in ascending order: the
// smallest value gets rank 1 and equal values share a rank with no
// gaps. The result is positional, matching the input order.
func DenseRankAsc(values []float64) []int {
	return denseRank(values, false)
}

// DenseRankDesc assigns 1-based dense ranks in descending order: the
// largest value gets rank 1 and equal values share a rank.
func DenseRankDesc(values []float64) []int {
	return denseRank(values, true)
}

func denseRank(values []float64, descending bool) []int {
	unique := make([]float64, 0, len(values))
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	sort.Float64s(unique)
	if descending {
		for i, j := 0, len(unique)-1; i < j; i, j = i+1, j-1 {
			unique[i], unique[j] = unique[j], unique[i]
		}
	}

	rankOf := make(map[float64]int, len(unique))
	for i, v := range unique {
		rankOf[v] = i + 1
	}

	ranks := make([]int, len(values))
	for i, v := range values {
		ranks[i] = rankOf[v]
	}
	return ranks
}
