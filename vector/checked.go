// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Error-returning counterparts of operations whose unchecked form reads
//     past the end of a short operand or divides by a zero norm.
//   - Validation runs first; on success the unchecked kernel runs unchanged,
//     so well-formed results are bit-identical to the default surface.

package vector

// CrossChecked returns a × b, requiring both operands to have at least 3
// components. Unlike Cross it never returns a scalar: a self cross is
// [0 0 0].
//
// Errors: ErrDimensionMismatch.
func CrossChecked(a, b Vector) (Vector, error) {
	if err := ValidateDim(a, 3); err != nil {
		return nil, vectorErrorf(opCross, err)
	}
	if err := ValidateDim(b, 3); err != nil {
		return nil, vectorErrorf(opCross, err)
	}

	return cross(a, b), nil
}

// AngleBetweenChecked is AngleBetween with both points required to have at
// least 2 components.
//
// Errors: ErrDimensionMismatch.
func AngleBetweenChecked(p1, p2 Vector) (float64, error) {
	if err := ValidateDim(p1, 2); err != nil {
		return 0, vectorErrorf(opAngleBetween, err)
	}
	if err := ValidateDim(p2, 2); err != nil {
		return 0, vectorErrorf(opAngleBetween, err)
	}

	return AngleBetween(p1, p2), nil
}

// AngleChecked is Angle with a required to be non-empty and of non-zero norm.
//
// Errors: ErrEmptyVector, ErrZeroNorm.
func AngleChecked(a Vector) (float64, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return 0, vectorErrorf(opAngle, err)
	}
	if Norm(a) == 0 {
		return 0, vectorErrorf(opAngle, ErrZeroNorm)
	}

	return Angle(a), nil
}

// UnitChecked is Unit with the zero-norm case reported instead of producing
// NaN components.
//
// Errors: ErrEmptyVector, ErrZeroNorm.
func UnitChecked(v Vector) (Vector, error) {
	if err := ValidateNonEmpty(v); err != nil {
		return nil, vectorErrorf(opUnit, err)
	}
	n := Norm(v)
	if n == 0 {
		return nil, vectorErrorf(opUnit, ErrZeroNorm)
	}

	return broadcastVS(v, n, div), nil
}

// TransformChecked is Transform with m required to be rectangular and its
// width to equal len(x).
//
// Errors: ErrRaggedMatrix, ErrDimensionMismatch.
func TransformChecked(x Vector, m Matrix) (Vector, error) {
	cols := 0
	if len(m) > 0 {
		cols = len(m[0]) // first row fixes the width
	}
	if err := ValidateMatrix(m, cols); err != nil {
		return nil, vectorErrorf(opTransform, err)
	}
	if cols != len(x) {
		return nil, vectorErrorf(opTransform, ErrDimensionMismatch)
	}

	return Transform(x, m), nil
}
