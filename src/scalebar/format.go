package scalebar

import "strconv"

// FormatFloat renders a value without trailing zeros: 1000.0 -> "1000",
// 1.50 -> "1.5", 0.1 -> "0.1".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
