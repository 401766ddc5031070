package analysis

// Trend classifies the direction of a spending or income series.
type Trend int

const (
	// TrendStable means increases and decreases balance out, or there is
	// too little data to tell.
	TrendStable Trend = iota
	// TrendIncreasing means pairwise increases outnumber decreases.
	TrendIncreasing
	// TrendDecreasing means pairwise decreases outnumber increases.
	TrendDecreasing
)

// String returns the lowercase label for the trend.
func (t Trend) String() string {
	switch t {
	case TrendIncreasing:
		return "increasing"
	case TrendDecreasing:
		return "decreasing"
	default:
		return "stable"
	}
}

// ClassifyTrend determines the direction of a series, oldest first, by
// majority vote over consecutive deltas. Fewer than two samples is stable.
func ClassifyTrend(series []int64) Trend {
	if len(series) < 2 {
		return TrendStable
	}

	increases, decreases := 0, 0
	for i := 1; i < len(series); i++ {
		switch {
		case series[i] > series[i-1]:
			increases++
		case series[i] < series[i-1]:
			decreases++
		}
	}

	switch {
	case increases > decreases:
		return TrendIncreasing
	case decreases > increases:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
