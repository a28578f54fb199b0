// SPDX-License-Identifier: MIT
// Package transform: construction, accessors and composition of Matrix values.
//
// Purpose:
//   - Provide explicit constructors from (rotation, translation) pairs.
//   - Keep every operation a pure value-to-value function (no sub-block views).
//
// Determinism:
//   - Fixed i→j→k loop order; results are bitwise reproducible.

package transform

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Identity returns the 4×4 identity transform.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// IdentityRotation returns the 3×3 identity rotation.
func IdentityRotation() Rotation {
	return Rotation{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Compose builds a transform from a rotation block and a translation.
// The bottom row is set to [0 0 0 1].
// Complexity: O(1).
func Compose(r Rotation, t r3.Vec) Matrix {
	m := Identity()
	for i := 0; i < RN; i++ {
		for j := 0; j < RN; j++ {
			m[i][j] = r[i][j]
		}
	}
	m[0][3], m[1][3], m[2][3] = t.X, t.Y, t.Z

	return m
}

// Rotation returns a copy of the top-left 3×3 block.
func (m Matrix) Rotation() Rotation {
	var r Rotation
	for i := 0; i < RN; i++ {
		for j := 0; j < RN; j++ {
			r[i][j] = m[i][j]
		}
	}

	return r
}

// Translation returns the top-right 3×1 column.
func (m Matrix) Translation() r3.Vec {
	return r3.Vec{X: m[0][3], Y: m[1][3], Z: m[2][3]}
}

// WithRotation returns a copy of m with its rotation block replaced by r.
func (m Matrix) WithRotation(r Rotation) Matrix {
	return Compose(r, m.Translation())
}

// WithTranslation returns a copy of m with its translation replaced by t.
func (m Matrix) WithTranslation(t r3.Vec) Matrix {
	return Compose(m.Rotation(), t)
}

// Mul returns the composition a·b (apply b first, then a).
// Complexity: O(N^3) with N=4.
func Mul(a, b Matrix) Matrix {
	var c Matrix
	var sum float64
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			sum = 0
			for k := 0; k < N; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}

	return c
}

// TransformPoint applies m to the point p (rotation, then translation).
func (m Matrix) TransformPoint(p r3.Vec) r3.Vec {
	return r3.Add(m.Rotation().Apply(p), m.Translation())
}

// Transpose returns rᵀ, which is also r⁻¹ for a proper rotation.
func (r Rotation) Transpose() Rotation {
	var t Rotation
	for i := 0; i < RN; i++ {
		for j := 0; j < RN; j++ {
			t[i][j] = r[j][i]
		}
	}

	return t
}

// Mul returns the product r·o.
func (r Rotation) Mul(o Rotation) Rotation {
	var c Rotation
	for i := 0; i < RN; i++ {
		for j := 0; j < RN; j++ {
			c[i][j] = r[i][0]*o[0][j] + r[i][1]*o[1][j] + r[i][2]*o[2][j]
		}
	}

	return c
}

// Apply returns r·v.
func (r Rotation) Apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		Y: r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		Z: r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// Det returns the determinant of r (cofactor expansion along the first row).
func (r Rotation) Det() float64 {
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// AllClose reports whether |a[i][j] − b[i][j]| <= tol for every element.
// NaN never compares close.
func AllClose(a, b Matrix, tol float64) bool {
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if !(math.Abs(a[i][j]-b[i][j]) <= tol) {
				return false
			}
		}
	}

	return true
}

// MaxAbsDiff returns max |a[i][j] − b[i][j]| over all elements.
func MaxAbsDiff(a, b Matrix) float64 {
	var worst float64
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			worst = math.Max(worst, math.Abs(a[i][j]-b[i][j]))
		}
	}

	return worst
}
