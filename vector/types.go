// SPDX-License-Identifier: MIT

// Package vector: domain types. This file contains ONLY the value types
// (Vector, Matrix, Operand); errors and options live in errors.go and
// options.go.
package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an ordered, finite sequence of scalars indexed from 0.
// Its dimension is len(v); no package-wide dimension is enforced.
type Vector []float64

// Matrix is a sequence of row vectors used as a transient transformation
// operand. Rows are not required to share a length (see Transform).
type Matrix []Vector

// Kind tags the active member of an Operand.
type Kind uint8

const (
	// KindScalar marks an Operand holding a single float64.
	KindScalar Kind = iota

	// KindVector marks an Operand holding a Vector.
	KindVector
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operand is the tagged union Scalar(float64) | Vector(Vector) accepted and
// returned by the broadcast arithmetic. The zero value is the scalar 0.
//
// An Operand built with VectorOf shares the caller's slice; the package
// never writes through it.
type Operand struct {
	kind Kind
	s    float64
	v    Vector
}

// ScalarOf wraps x as a scalar Operand.
func ScalarOf(x float64) Operand { return Operand{kind: KindScalar, s: x} }

// VectorOf wraps v as a vector Operand. A nil v is a vector of dimension 0,
// not a scalar.
func VectorOf(v Vector) Operand { return Operand{kind: KindVector, v: v} }

// Kind reports which member of the union is active.
func (o Operand) Kind() Kind { return o.kind }

// IsScalar reports whether o holds a scalar.
func (o Operand) IsScalar() bool { return o.kind == KindScalar }

// IsVector reports whether o holds a vector.
func (o Operand) IsVector() bool { return o.kind == KindVector }

// Scalar returns the scalar value and true, or (0, false) for a vector.
func (o Operand) Scalar() (float64, bool) {
	if o.kind != KindScalar {
		return 0, false
	}

	return o.s, true
}

// Vector returns the vector value and true, or (nil, false) for a scalar.
func (o Operand) Vector() (Vector, bool) {
	if o.kind != KindVector {
		return nil, false
	}

	return o.v, true
}

// String renders scalars with %g and vectors as "[x y z]".
func (o Operand) String() string {
	if o.kind == KindScalar {
		return strconv.FormatFloat(o.s, 'g', -1, 64)
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range o.v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

// GoString implements fmt.GoStringer for %#v.
func (o Operand) GoString() string {
	if o.kind == KindScalar {
		return fmt.Sprintf("vector.ScalarOf(%g)", o.s)
	}

	return fmt.Sprintf("vector.VectorOf(%#v)", []float64(o.v))
}
