// SPDX-License-Identifier: MIT
// Package transform: opt-in structural checks.
// Nothing on the numeric path calls these; they exist for callers (CLI, loaders)
// that want to report suspicious input.

package transform

import (
	"fmt"
	"math"
)

// ValidateRigid checks that m is a rigid transform within tol:
// RᵀR ≈ I, det(R) ≈ +1, bottom row ≈ [0 0 0 1], all entries finite.
// Returns ErrNotRigid (wrapped with the first violated condition) otherwise.
func ValidateRigid(m Matrix, tol float64) error {
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return transformErrorf(opValidateRigid, fmt.Errorf("%w: non-finite entry at (%d,%d)", ErrNotRigid, i, j))
			}
		}
	}

	bottom := [N]float64{0, 0, 0, 1}
	for j := 0; j < N; j++ {
		if math.Abs(m[3][j]-bottom[j]) > tol {
			return transformErrorf(opValidateRigid, fmt.Errorf("%w: bottom row %v", ErrNotRigid, m[3]))
		}
	}

	r := m.Rotation()
	rtr := r.Transpose().Mul(r)
	id := IdentityRotation()
	for i := 0; i < RN; i++ {
		for j := 0; j < RN; j++ {
			if math.Abs(rtr[i][j]-id[i][j]) > tol {
				return transformErrorf(opValidateRigid, fmt.Errorf("%w: rotation not orthonormal at (%d,%d)", ErrNotRigid, i, j))
			}
		}
	}

	if det := r.Det(); math.Abs(det-1) > tol {
		return transformErrorf(opValidateRigid, fmt.Errorf("%w: det(R)=%.6g", ErrNotRigid, det))
	}

	return nil
}
