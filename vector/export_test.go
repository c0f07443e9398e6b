// SPDX-License-Identifier: MIT

package vector

// Test bridge (white-box) for the private broadcast kernel and the resolved
// options. Lives in a _test.go file, so it never reaches production builds.

// Broadcast_TestOnly exposes broadcast with a caller-provided combiner.
func Broadcast_TestOnly(a, b Operand, f func(x, y float64) float64) Operand {
	return broadcast(a, b, f)
}

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	AbsTol   float64
	RelTol   float64
	NaNEqual bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{AbsTol: o.absTol, RelTol: o.relTol, NaNEqual: o.nanEqual}
}
