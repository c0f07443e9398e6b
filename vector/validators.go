// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide a single source of truth for the shape checks used by the
//     *Checked surface.
//   - Return sentinels wrapped with the validator name; callers add their
//     operation tag on top.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on success.

package vector

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNonEmpty ensures v has at least one component.
// Returns wrapped ErrEmptyVector otherwise.
func ValidateNonEmpty(v Vector) error {
	if len(v) == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyVector)
	}

	return nil
}

// ValidateDim ensures v has at least n components, so indices 0..n-1 are
// addressable. Extra components are allowed (they are ignored by 2D and 3D
// operations).
func ValidateDim(v Vector, n int) error {
	if len(v) < n {
		return validatorErrorf(fmt.Sprintf("ValidateDim: have %d, want >= %d", len(v), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every component of v is finite.
func ValidateFinite(v Vector) error {
	for i, x := range v {
		if isNonFinite(x) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: [%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateMatrix ensures m is non-empty and every row has exactly cols
// entries.
//
// Errors: ErrRaggedMatrix for an empty matrix or any row of another width.
// Complexity: O(len(m)).
func ValidateMatrix(m Matrix, cols int) error {
	if len(m) == 0 {
		return validatorErrorf("ValidateMatrix: no rows", ErrRaggedMatrix)
	}
	for i, row := range m {
		if len(row) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateMatrix: row %d has %d cols, want %d", i, len(row), cols), ErrRaggedMatrix)
		}
	}

	return nil
}
