// SPDX-License-Identifier: MIT
// Package vector_test contains shared fixtures.
//
// Purpose:
//   • Deterministic random vectors for property-style tests.
//   • Small assertions for Operand results.

package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vectoralgebra/vector"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for results that go through sin/cos/atan2.
const tol = 1e-12

// RandomVector RETURNS a length-n vector with components in [-10, 10),
// reproducible for a given rng.
func RandomVector(rng *rand.Rand, n int) vector.Vector {
	v := make(vector.Vector, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}

	return v
}

// MustVector unwraps a vector Operand or fails the test.
func MustVector(t *testing.T, o vector.Operand) vector.Vector {
	t.Helper()
	v, ok := o.Vector()
	require.Truef(t, ok, "want vector operand, got %s", o.Kind())

	return v
}

// MustScalar unwraps a scalar Operand or fails the test.
func MustScalar(t *testing.T, o vector.Operand) float64 {
	t.Helper()
	s, ok := o.Scalar()
	require.Truef(t, ok, "want scalar operand, got %s", o.Kind())

	return s
}

// AllNaN reports whether every component of v is NaN.
func AllNaN(v vector.Vector) bool {
	for _, x := range v {
		if !math.IsNaN(x) {
			return false
		}
	}

	return true
}
