// pkg/utils/math.go
package utils

import "math"

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// InRange reports whether v lies in the closed interval [lo, hi].
func InRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
