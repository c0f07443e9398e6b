// Package vector provides stateless vector-algebra primitives over
// arbitrary-dimension float64 sequences.
//
// 🚀 What is in the box?
//
//   - Broadcast arithmetic: Add, Subtract, Multiply, Divide between any mix of
//     vectors and scalars (see Operand).
//   - Magnitudes: Norm (alias Length), Distance, Unit.
//   - Products: Dot, Cross (3D), ScalarTripleProduct, VectorTripleProduct.
//   - Angles: AngleBetween (signed, 2D) and Angle (against the +x axis).
//   - Linear maps: Transform (matrix × vector), Rotate, Shear.
//
// ✨ Numeric policy:
//
//   - No validation on the default surface. Division by zero, empty inputs and
//     short vectors propagate NaN/±Inf exactly as IEEE-754 dictates.
//   - Two-vector operations without a fixed dimension work on the common
//     prefix, min(len(a), len(b)), instead of failing.
//   - Inputs are never mutated; every vector result is freshly allocated, so
//     all functions are safe for concurrent use.
//   - The *Checked variants (CrossChecked, TransformChecked, ...) validate
//     shapes first and return sentinel errors (ErrDimensionMismatch, ...);
//     on well-formed input they return the same bits as the unchecked form.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vectoralgebra/vector"
//
//	sum := vector.Add(vector.VectorOf(vector.Vector{0, 0}), vector.ScalarOf(1)) // [1 1]
//	d := vector.Distance(vector.Vector{1, 1}, vector.Vector{3, 1})              // 2
//	r := vector.Rotate(vector.Vector{1, 1}, math.Pi/2)                           // ≈[-1 1]
//
// Cross keeps one historical quirk: crossing a vector with itself (the very
// same slice, not an equal copy) yields the scalar Operand 0. Use Cross3 when
// a 3-vector is always wanted.
package vector
