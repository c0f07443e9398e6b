// SPDX-License-Identifier: MIT

package vector

import "math"

// Transform applies the linear map m to x: y[i] = Σ_j m[i][j] * x[j].
//
// Contract:
//   - len(y) == len(m); rows may differ in length.
//   - Row i contributes only its own len(m[i]) columns, so components of x
//     beyond a row's width are ignored for that row.
//   - Columns beyond len(x) contribute 0.
//
// Determinism: fixed i→j loop order.
// Complexity: Time O(Σ len(m[i])), Space O(len(m)).
func Transform(x Vector, m Matrix) Vector {
	y := make(Vector, len(m))
	var acc float64
	var j, n int
	for i, row := range m {
		acc = 0
		n = min(len(row), len(x))
		for j = 0; j < n; j++ {
			acc += row[j] * x[j]
		}
		y[i] = acc
	}

	return y
}

// RotationMatrix returns the 2×2 counterclockwise rotation by theta radians:
//
//	[cos θ  -sin θ]
//	[sin θ   cos θ]
func RotationMatrix(theta float64) Matrix {
	sin, cos := math.Sincos(theta)

	return Matrix{
		{cos, -sin},
		{sin, cos},
	}
}

// Rotate rotates x by theta radians counterclockwise.
// The map is 2×2, so the result always has 2 components.
func Rotate(x Vector, theta float64) Vector {
	return Transform(x, RotationMatrix(theta))
}

// ShearMatrix returns the 2×2 shear with factor k, parallel to the x axis
// ([1 k; 0 1]) or to the y axis ([1 0; k 1]).
func ShearMatrix(k float64, parallelToX bool) Matrix {
	if parallelToX {
		return Matrix{
			{1, k},
			{0, 1},
		}
	}

	return Matrix{
		{1, 0},
		{k, 1},
	}
}

// Shear shears x by factor k. Example: Shear([1 1], 2, true) = [3 1].
func Shear(x Vector, k float64, parallelToX bool) Vector {
	return Transform(x, ShearMatrix(k, parallelToX))
}
