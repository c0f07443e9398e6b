// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Only the *Checked functions and the validators return errors; the default
// surface never fails and lets NaN/Inf flow through. Tests MUST match these
// sentinels via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "vector: ...". Sentinels are wrapped as
// "<Op>: <sentinel>" by vectorErrorf so errors.Is keeps working.

var (
	// ErrEmptyVector is returned when an operation needs at least one component.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrDimensionMismatch indicates an operand shorter than the operation
	// requires (e.g., Cross on fewer than 3 components, a matrix row wider
	// than the input vector).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrRaggedMatrix indicates a matrix whose rows differ in length, or an
	// empty matrix, where a rectangular one is required.
	ErrRaggedMatrix = errors.New("vector: ragged or empty matrix")

	// ErrZeroNorm is returned when a direction is requested from a vector of
	// zero length (Unit, Angle).
	ErrZeroNorm = errors.New("vector: zero norm")

	// ErrNaNInf signals a NaN or ±Inf component where finite input is required.
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")
)

// Operation tags for error wrapping.
const (
	opCross        = "Cross"
	opAngle        = "Angle"
	opAngleBetween = "AngleBetween"
	opTransform    = "Transform"
	opUnit         = "Unit"
)

// vectorErrorf wraps err with an operation tag, preserving it via %w.
// Callers must only pass a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
