// SPDX-License-Identifier: MIT
// Package transform: weighted pose averaging.
//
// Purpose:
//   - Average translations arithmetically and rotations in the chordal sense.
//
// Rotation averaging:
//   - The chordal L2 mean maximises Σ wᵢ·tr(Rᵢᵀ R) over proper rotations R.
//   - With M = Σ wᵢRᵢ = U Σ Vᵀ, the maximiser is R = U · diag(1, 1, d) · Vᵀ,
//     d = sign(det(U)·det(V)). d = −1 is applied by negating the column of U
//     paired with the smallest singular value.
//   - A per-element mean of rotation matrices is never orthonormal in general
//     and is not used.

package transform

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mean returns the weighted mean pose of matrices.
//
// Behavior highlights:
//   - len(matrices) == 1 returns matrices[0] unchanged (after weight checks).
//   - weights == nil means equal weights; otherwise weights are normalised to sum 1.
//   - Translation: Σ wᵢ·tᵢ. Rotation: MeanRotation.
//
// Errors:
//   - ErrEmptyInput if matrices is empty.
//   - ErrWeightsLength if weights != nil and len(weights) != len(matrices).
//   - ErrInvalidWeights for negative/non-finite weights or a zero sum.
//   - ErrSVDFailed if the decomposition does not converge.
//
// Determinism: fixed iteration order over matrices; same input → same output.
func Mean(matrices []Matrix, weights []float64) (Matrix, error) {
	w, err := normalizedWeights(len(matrices), weights)
	if err != nil {
		return Matrix{}, transformErrorf(opMean, err)
	}
	if len(matrices) == 1 {
		return matrices[0], nil
	}

	rotations := make([]Rotation, len(matrices))
	var t r3.Vec
	for i, m := range matrices {
		rotations[i] = m.Rotation()
		t = r3.Add(t, r3.Scale(w[i], m.Translation()))
	}

	r, err := meanRotation(rotations, w)
	if err != nil {
		return Matrix{}, transformErrorf(opMean, err)
	}

	return Compose(r, t), nil
}

// MeanRotation returns the chordal L2 weighted mean of rotations.
// weights follow the same rules as in Mean.
func MeanRotation(rotations []Rotation, weights []float64) (Rotation, error) {
	w, err := normalizedWeights(len(rotations), weights)
	if err != nil {
		return Rotation{}, transformErrorf(opMeanRotation, err)
	}
	if len(rotations) == 1 {
		return rotations[0], nil
	}

	r, err := meanRotation(rotations, w)
	if err != nil {
		return Rotation{}, transformErrorf(opMeanRotation, err)
	}

	return r, nil
}

// meanRotation assumes len(w) == len(rotations) and Σw = 1.
func meanRotation(rotations []Rotation, w []float64) (Rotation, error) {
	// M = Σ wᵢ Rᵢ, accumulated row-major into a flat slice.
	data := make([]float64, RN*RN)
	for k, r := range rotations {
		for i := 0; i < RN; i++ {
			for j := 0; j < RN; j++ {
				data[i*RN+j] += w[k] * r[i][j]
			}
		}
	}
	m := mat.NewDense(RN, RN, data)

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return Rotation{}, ErrSVDFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Singular values come sorted descending, so the last column pairs with the smallest.
	if mat.Det(&u)*mat.Det(&v) < 0 {
		for i := 0; i < RN; i++ {
			u.Set(i, RN-1, -u.At(i, RN-1))
		}
	}

	var r mat.Dense
	r.Mul(&u, v.T())

	var out Rotation
	for i := 0; i < RN; i++ {
		for j := 0; j < RN; j++ {
			out[i][j] = r.At(i, j)
		}
	}

	return out, nil
}

// normalizedWeights validates weights against n and returns them scaled to sum 1.
// nil weights yield uniform 1/n.
func normalizedWeights(n int, weights []float64) ([]float64, error) {
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, n)
	if weights == nil {
		for i := range out {
			out[i] = 1 / float64(n)
		}

		return out, nil
	}
	if len(weights) != n {
		return nil, ErrWeightsLength
	}

	var sum float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrInvalidWeights
		}
		sum += w
	}
	if sum == 0 || math.IsInf(sum, 0) {
		return nil, ErrInvalidWeights
	}
	for i, w := range weights {
		out[i] = w / sum
	}

	return out, nil
}
