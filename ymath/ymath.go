package ymath

import (
	"math"

	"golang.org/x/exp/constraints"
)

const Epsilon = 1e-12

// Radians converts an angle given in degrees, the unit used by drawing
// documents, to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func AlignUp[T constraints.Integer](len T, alignment T) T {
	return (len + alignment - 1) & -alignment
}
