// SPDX-License-Identifier: MIT

package transform

import "gonum.org/v1/gonum/spatial/r3"

// Inverse returns the inverse rigid transform of m.
//
// Implementation:
//   - Stage 1: Rinv = Rᵀ (valid because the rotation block is orthonormal).
//   - Stage 2: tinv = −(Rᵀ · t).
//
// Guarantee: Mul(m, Inverse(m)) ≈ Identity() for rigid m.
// Non-rigid input is not detected; use ValidateRigid first if in doubt.
// Complexity: O(1).
func Inverse(m Matrix) Matrix {
	rt := m.Rotation().Transpose()
	t := rt.Apply(m.Translation())

	return Compose(rt, r3.Scale(-1, t))
}
