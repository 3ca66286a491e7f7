package plotting

import (
	"fmt"
	"math"

	"github.com/DrTaDa/ephysplot/src/scalebar"
)

type tick struct {
	value float64
	label string
}

// niceTicks generates up to n tick marks across the range using nice
// increments (1, 2, 2.5, 5, 10 scaled by powers of ten). Ticks outside the
// range are dropped.
func niceTicks(r scalebar.Range, n int) []tick {
	if n < 2 || r.Degenerate() || math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return nil
	}
	span := r.Width()
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	steps := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, s := range steps {
		step := s * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Ceil(r.Min/bestStep) * bestStep
	var ticks []tick
	for v := start; v <= r.Max+bestStep/1e6; v += bestStep {
		ticks = append(ticks, tick{value: v, label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
