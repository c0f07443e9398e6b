// SPDX-License-Identifier: MIT

package vector

import "math"

// twoPi is one full turn in radians.
const twoPi = 2 * math.Pi

// AngleBetween returns the signed planar angle from p1 to p2, positive
// counterclockwise, folded into [-π, π] (exactly -π is left as is).
//
// Only components 0 and 1 are used; further components are ignored and a
// missing one reads as NaN (which then propagates).
//
// Example: AngleBetween([1 0], [0 1]) = π/2.
func AngleBetween(p1, p2 Vector) float64 {
	theta1 := math.Atan2(at(p1, 1), at(p1, 0))
	theta2 := math.Atan2(at(p2, 1), at(p2, 0))

	return normalizeAngle(theta2 - theta1)
}

// normalizeAngle folds d into (-π, π] by whole turns.
// Atan2 differences lie in [-2π, 2π], so each loop runs at most once; NaN
// fails both comparisons and is returned as is.
func normalizeAngle(d float64) float64 {
	for d > math.Pi {
		d -= twoPi
	}
	for d < -math.Pi {
		d += twoPi
	}

	return d
}

// Angle returns the angle in [0, π] between a and the positive x axis,
// acos(a[0] / Norm(a)). A zero or empty vector yields NaN.
func Angle(a Vector) float64 {
	return math.Acos(at(a, 0) / Norm(a))
}
