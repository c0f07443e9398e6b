// Package vectoralgebra is a small, pure-Go toolbox of vector-algebra
// primitives over arbitrary-dimension float64 sequences.
//
// 🚀 What is inside?
//
//	vector/ — broadcast arithmetic between vectors and scalars, norms and
//	          distances, dot/cross/triple products, planar angles, and linear
//	          maps (Transform, Rotate, Shear).
//
// ✨ Why use it?
//
//   - Stateless – every function is pure; call it from any goroutine
//   - Predictable – IEEE-754 passthrough instead of surprise errors, with an
//     opt-in *Checked surface when you want sentinel errors
//   - Pure Go – no cgo, no hidden deps
//
// Quick taste:
//
//	v := vector.Vector{3, 4}
//	vector.Norm(v)                             // 5
//	vector.Unit(v)                             // [0.6 0.8]
//	vector.Cross3(vector.Vector{1, 0, 0},
//	              vector.Vector{0, 1, 0})      // [0 0 1]
//
//	go get github.com/katalvlaran/vectoralgebra/vector
package vectoralgebra
