// SPDX-License-Identifier: MIT

package vector

import "math"

// Norm returns the Euclidean length sqrt(Dot(v, v)).
// Norm of an empty vector is 0.
func Norm(v Vector) float64 {
	return math.Sqrt(Dot(v, v))
}

// Length is an alias for Norm.
func Length(v Vector) float64 {
	return Norm(v)
}

// Distance returns the Euclidean distance between a and b over their common
// prefix, i.e. sqrt(Σ (a[i]-b[i])²) for i < min(len(a), len(b)).
//
// It is computed directly rather than as Norm(Subtract(a, b)); both agree for
// equal-length inputs.
func Distance(a, b Vector) float64 {
	n := min(len(a), len(b))
	var acc, d float64
	for i := 0; i < n; i++ {
		d = a[i] - b[i]
		acc += d * d
	}

	return math.Sqrt(acc)
}

// Unit returns v / Norm(v), a vector of the same length as v.
//
// A zero vector is not special-cased: 0/0 yields NaN components. Use
// UnitChecked to get ErrZeroNorm instead.
func Unit(v Vector) Vector {
	return broadcastVS(v, Norm(v), div)
}
