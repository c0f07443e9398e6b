// SPDX-License-Identifier: MIT

package vector

import "math"

// Dot returns Σ a[i]*b[i] over the common prefix min(len(a), len(b)).
// Dot of orthogonal vectors is 0; Dot with an empty vector is 0.
func Dot(a, b Vector) float64 {
	n := min(len(a), len(b))
	var acc float64
	for i := 0; i < n; i++ {
		acc += a[i] * b[i]
	}

	return acc
}

// Cross returns the 3D cross product a × b, perpendicular to both.
//
// Only components 0..2 are read; a missing component reads as NaN, so short
// inputs produce NaN entries instead of panicking (see CrossChecked).
//
// If a and b are the same slice (same backing array start and same length,
// not merely equal values) Cross returns the scalar Operand 0 rather than the
// zero vector. Equal but distinct slices take the normal path and yield
// [0 0 0]. Cross3 always returns a vector.
func Cross(a, b Vector) Operand {
	if sameSlice(a, b) {
		return ScalarOf(0)
	}

	return VectorOf(cross(a, b))
}

// Cross3 returns a × b as a 3-vector, including [0 0 0] for a self cross.
func Cross3(a, b Vector) Vector {
	return cross(a, b)
}

// cross evaluates r[i] = a[i+1]*b[i+2] - a[i+2]*b[i+1] (indices mod 3).
func cross(a, b Vector) Vector {
	out := make(Vector, 3)
	var id1, id2 int
	for i := 0; i < 3; i++ {
		id1, id2 = (i+1)%3, (i+2)%3
		out[i] = at(a, id1)*at(b, id2) - at(a, id2)*at(b, id1)
	}

	return out
}

// ScalarTripleProduct returns a · (b × c), the signed volume of the
// parallelepiped spanned by a, b and c.
//
// When b and c are the same slice the inner cross is the scalar 0 and the
// dot against it has no components, so the result is 0.
func ScalarTripleProduct(a, b, c Vector) float64 {
	inner, ok := Cross(b, c).Vector()
	if !ok {
		return 0
	}

	return Dot(a, inner)
}

// VectorTripleProduct returns a × (b × c).
//
// When b and c are the same slice the inner cross degenerates to the scalar
// 0 and the outer cross has no components to read, so every entry is NaN.
func VectorTripleProduct(a, b, c Vector) Operand {
	inner, ok := Cross(b, c).Vector()
	if !ok {
		return VectorOf(Vector{math.NaN(), math.NaN(), math.NaN()})
	}

	return Cross(a, inner)
}

// sameSlice reports whether a and b are the very same slice value.
// Empty slices carry no identity and never match.
func sameSlice(a, b Vector) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}

// at returns v[i], or NaN when i is out of range.
func at(v Vector, i int) float64 {
	if i < 0 || i >= len(v) {
		return math.NaN()
	}

	return v[i]
}
