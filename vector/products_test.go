// SPDX-License-Identifier: MIT

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vectoralgebra/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	assert.Equal(t, 49.0, vector.Dot(vector.Vector{3, 4, 5}, vector.Vector{4, 3, 5}))
	assert.Equal(t, 0.0, vector.Dot(vector.Vector{1, 0}, vector.Vector{0, 1}), "orthogonal")
	assert.Equal(t, 3.0, vector.Dot(vector.Vector{1, 1, 1}, vector.Vector{1, 2}), "common prefix")
	assert.Equal(t, 0.0, vector.Dot(nil, vector.Vector{1, 2}))
}

func TestDot_Commutative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		n := 1 + rng.Intn(10)
		a, b := RandomVector(rng, n), RandomVector(rng, n)
		require.Equal(t, vector.Dot(a, b), vector.Dot(b, a))
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b vector.Vector
		want vector.Vector
	}{
		{"x cross y", vector.Vector{1, 0, 0}, vector.Vector{0, 1, 0}, vector.Vector{0, 0, 1}},
		{"general", vector.Vector{3, 4, 5}, vector.Vector{4, 3, 5}, vector.Vector{5, 5, -7}},
		{"equal values distinct slices", vector.Vector{1, 2, 3}, vector.Vector{1, 2, 3}, vector.Vector{0, 0, 0}},
		{"extra components ignored", vector.Vector{1, 0, 0, 9}, vector.Vector{0, 1, 0, 9}, vector.Vector{0, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MustVector(t, vector.Cross(tc.a, tc.b)))
			assert.Equal(t, tc.want, vector.Cross3(tc.a, tc.b))
		})
	}
}

func TestCross_SameSliceIsScalarZero(t *testing.T) {
	v := vector.Vector{3, 4, 5}
	got := vector.Cross(v, v)
	require.True(t, got.IsScalar(), "self cross of the same slice must be scalar")
	assert.Equal(t, 0.0, MustScalar(t, got))

	// a re-sliced view of the same backing array with the same length is the same slice
	assert.True(t, vector.Cross(v, v[:]).IsScalar())

	// Cross3 never short-circuits
	assert.Equal(t, vector.Vector{0, 0, 0}, vector.Cross3(v, v))
}

func TestCross_ShortInputIsNaN(t *testing.T) {
	got := MustVector(t, vector.Cross(vector.Vector{1, 2}, vector.Vector{3, 4, 5}))
	require.Len(t, got, 3)
	// components 0 and 1 read a[2]; component 2 only reads a[0], a[1]
	assert.True(t, AllNaN(got[:2]))
	assert.Equal(t, 1.0*4-2*3, got[2])

	assert.True(t, AllNaN(vector.Cross3(nil, nil)))
}

// a × b = -(b × a) for distinct slices.
func TestCross_AntiCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a, b := RandomVector(rng, 3), RandomVector(rng, 3)
		ab := MustVector(t, vector.Cross(a, b))
		ba := MustVector(t, vector.Cross(b, a))
		require.True(t, vector.Equal(ab, vector.Negate(ba)), "a=%v b=%v", a, b)
	}
}

func TestCross_PerpendicularToOperands(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		a, b := RandomVector(rng, 3), RandomVector(rng, 3)
		c := vector.Cross3(a, b)
		assert.InDelta(t, 0, vector.Dot(a, c), 1e-9)
		assert.InDelta(t, 0, vector.Dot(b, c), 1e-9)
	}
}

func TestScalarTripleProduct(t *testing.T) {
	a, b, c := vector.Vector{3, 4, 5}, vector.Vector{4, 3, 5}, vector.Vector{-5, -12, -13}
	assert.Equal(t, 6.0, vector.ScalarTripleProduct(a, b, c))

	// degenerate inner cross (same slice) is the scalar 0, which dots to 0
	assert.Equal(t, 0.0, vector.ScalarTripleProduct(a, b, b))
}

func TestVectorTripleProduct(t *testing.T) {
	a, b, c := vector.Vector{3, 4, 5}, vector.Vector{4, 3, 5}, vector.Vector{-5, -12, -13}
	got := MustVector(t, vector.VectorTripleProduct(a, b, c))
	assert.Equal(t, vector.Vector{-267, 204, -3}, got)

	// a × (b × c) = b(a·c) - c(a·b)
	bac := vector.Subtract(
		vector.Multiply(vector.VectorOf(b), vector.ScalarOf(vector.Dot(a, c))),
		vector.Multiply(vector.VectorOf(c), vector.ScalarOf(vector.Dot(a, b))),
	)
	assert.Equal(t, MustVector(t, bac), got)
}

func TestVectorTripleProduct_DegenerateInnerIsNaN(t *testing.T) {
	a, b := vector.Vector{3, 4, 5}, vector.Vector{4, 3, 5}
	got := MustVector(t, vector.VectorTripleProduct(a, b, b))
	require.Len(t, got, 3)
	assert.True(t, AllNaN(got))
}
