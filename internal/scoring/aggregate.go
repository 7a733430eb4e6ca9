package scoring

import "math"

// FinalResult is the unweighted mean of the non-excluded item scores, the
// items taken in the given order. Non-finite scores are normalized to 0
// before averaging and an empty eligible set yields 0, never NaN.
func FinalResult(order []string, scores map[string]float64, excluded map[string]bool) float64 {
	sum := 0.0
	n := 0
	for _, id := range order {
		if excluded[id] {
			continue
		}
		v := scores[id]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
