package stats

import (
	"math"
	"sort"
)

// Summary describes a sample of latencies or costs
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	P50   float64 `json:"p50"`
	P95   float64 `json:"p95"`
	Max   float64 `json:"max"`
}

// Summarize computes count, mean, median, 95th percentile and max.
// An empty sample gives the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		Count: len(sorted),
		Mean:  Mean(sorted),
		P50:   quantileSorted(sorted, 0.5),
		P95:   quantileSorted(sorted, 0.95),
		Max:   sorted[len(sorted)-1],
	}
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// quantileSorted interpolates linearly between the closest ranks
func quantileSorted(sorted []float64, q float64) float64 {
	index := q * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	// Linear interpolation
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
