// SPDX-License-Identifier: MIT

package vector

import "math"

// AllClose reports whether got and want have the same length and
// |got[i]-want[i]| ≤ atol + rtol*|want[i]| for every i.
//
// Tolerances come from opts (DefaultAbsTol, DefaultRelTol when omitted).
// NaN never matches unless WithNaNEqual is given; equal infinities match.
//
// Complexity: Time O(n), Space O(1). Early-exits on the first violation.
func AllClose(got, want Vector, opts ...Option) bool {
	if len(got) != len(want) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range got {
		if !within(got[i], want[i], o) {
			return false
		}
	}

	return true
}

// AllCloseOperand is AllClose for Operands: both must be of the same Kind
// and scalars are compared with the same rule as vector components.
func AllCloseOperand(got, want Operand, opts ...Option) bool {
	if got.kind != want.kind {
		return false
	}
	if got.kind == KindScalar {
		return within(got.s, want.s, gatherOptions(opts...))
	}

	return AllClose(got.v, want.v, opts...)
}

// Equal reports exact element-wise equality (NaN is never equal).
func Equal(a, b Vector) bool {
	return AllClose(a, b, WithAbsTol(0), WithRelTol(0))
}

// within applies the tolerance rule to one pair of scalars.
func within(got, want float64, o Options) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return o.nanEqual && math.IsNaN(got) && math.IsNaN(want)
	}
	if got == want { // covers equal infinities
		return true
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return false
	}

	return math.Abs(got-want) <= o.absTol+o.relTol*math.Abs(want)
}
