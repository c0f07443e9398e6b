// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide the single private broadcast kernel shared by the four basic
//     arithmetic operations.
//   - Keep the scalar/vector dispatch in one exhaustive switch over Kind.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; one output allocation per vector result.
//   - Inputs are read only.

package vector

// binaryFunc combines two scalars into one.
type binaryFunc func(x, y float64) float64

// broadcast combines a and b element-wise with f.
//
// Implementation:
//   - vector ⊗ vector: length min(len(a), len(b)); the longer tail is dropped.
//   - vector ⊗ scalar, scalar ⊗ vector: length of the vector operand.
//   - scalar ⊗ scalar: the scalar f(a, b).
//
// Behavior highlights:
//   - Never fails. Mismatched lengths truncate, they do not error.
//   - The result vector is always freshly allocated (never aliases a or b).
//
// Complexity:
//   - Time O(n), Space O(n) for vector results; O(1) for scalar ⊗ scalar.
func broadcast(a, b Operand, f binaryFunc) Operand {
	switch {
	case a.kind == KindVector && b.kind == KindVector:
		n := min(len(a.v), len(b.v))
		out := make(Vector, n)
		for i := 0; i < n; i++ {
			out[i] = f(a.v[i], b.v[i])
		}
		return VectorOf(out)

	case a.kind == KindVector:
		out := make(Vector, len(a.v))
		s := b.s // read once
		for i, x := range a.v {
			out[i] = f(x, s)
		}
		return VectorOf(out)

	case b.kind == KindVector:
		out := make(Vector, len(b.v))
		s := a.s
		for i, y := range b.v {
			out[i] = f(s, y)
		}
		return VectorOf(out)

	default:
		return ScalarOf(f(a.s, b.s))
	}
}

// broadcastVS is the vector ⊗ scalar fast path used by Unit and Negate.
func broadcastVS(v Vector, s float64, f binaryFunc) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = f(x, s)
	}

	return out
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }
func div(x, y float64) float64 { return x / y }

// Add returns a + b with broadcasting.
// Example: Add([0 0], [1 1]) = [1 1]; Add([0 0], 1) = [1 1].
func Add(a, b Operand) Operand { return broadcast(a, b, add) }

// Subtract returns a - b with broadcasting.
func Subtract(a, b Operand) Operand { return broadcast(a, b, sub) }

// Multiply returns the element-wise product a * b with broadcasting.
func Multiply(a, b Operand) Operand { return broadcast(a, b, mul) }

// Divide returns the element-wise quotient a / b with broadcasting.
// Division by zero yields ±Inf or NaN; it is not an error.
func Divide(a, b Operand) Operand { return broadcast(a, b, div) }

// Negate returns a new vector with every component sign-flipped.
func Negate(v Vector) Vector { return broadcastVS(v, -1, mul) }
