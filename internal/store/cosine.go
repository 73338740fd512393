package store

import (
	"errors"
	"math"
)

var errVectorLengthMismatch = errors.New("vector length mismatch")

// cosine computes cosine similarity between two vectors of equal length.
func cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, errVectorLengthMismatch
	}
	var dot float64
	var na float64
	var nb float64
	for i := 0; i < len(a); i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0, nil
	}
	return dot / den, nil
}
