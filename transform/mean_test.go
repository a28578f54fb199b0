// SPDX-License-Identifier: MIT
package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/rigid/transform"
)

// TestMeanHalfRotation: mean(I, b) with b rotated 1 rad about z → Euler (0,0,0.5), t = b.t/2.
func TestMeanHalfRotation(t *testing.T) {
	rng := newRNG(30)
	for n := 0; n < 20; n++ {
		b := randomRigid(rng).WithRotation(transform.RotationFromEuler([3]float64{0, 0, 1}))

		mean, err := transform.Mean([]transform.Matrix{transform.Identity(), b}, nil)
		require.NoError(t, err)

		requireVecClose(t, r3.Scale(0.5, b.Translation()), mean.Translation(), tol)
		e := transform.EulerFromRotation(mean.Rotation())
		require.InDelta(t, 0.0, e[0], tol)
		require.InDelta(t, 0.0, e[1], tol)
		require.InDelta(t, 0.5, e[2], tol)
	}
}

// TestMeanSingle checks the single-element shortcut returns the input bit-for-bit,
// even for a non-rigid matrix that averaging would otherwise project.
func TestMeanSingle(t *testing.T) {
	m := randomWide(newRNG(31))
	got, err := transform.Mean([]transform.Matrix{m}, nil)
	require.NoError(t, err)
	require.Equal(t, m, got)

	skewed := m
	skewed[0][1] += 0.25
	got, err = transform.Mean([]transform.Matrix{skewed}, []float64{3})
	require.NoError(t, err)
	require.Equal(t, skewed, got)
}

// TestMeanWeightedBoundaries: weights [1,0] → a, [0,1] → b.
func TestMeanWeightedBoundaries(t *testing.T) {
	rng := newRNG(32)
	for n := 0; n < 50; n++ {
		a, b := randomWide(rng), randomWide(rng)
		pair := []transform.Matrix{a, b}

		got, err := transform.Mean(pair, []float64{1, 0})
		require.NoError(t, err)
		requireAllClose(t, a, got, tol)

		got, err = transform.Mean(pair, []float64{0, 1})
		require.NoError(t, err)
		requireAllClose(t, b, got, tol)
	}
}

// TestMeanWeightScaleInvariance checks that only weight ratios matter.
func TestMeanWeightScaleInvariance(t *testing.T) {
	rng := newRNG(33)
	ms := []transform.Matrix{randomRigid(rng), randomRigid(rng), randomRigid(rng)}

	a, err := transform.Mean(ms, []float64{1, 2, 3})
	require.NoError(t, err)
	b, err := transform.Mean(ms, []float64{10, 20, 30})
	require.NoError(t, err)
	requireAllClose(t, a, b, tol)

	equal, err := transform.Mean(ms, []float64{7, 7, 7})
	require.NoError(t, err)
	unweighted, err := transform.Mean(ms, nil)
	require.NoError(t, err)
	requireAllClose(t, unweighted, equal, tol)
}

// TestMeanWeightedAboutAxis: rotations about one axis average like their angles.
func TestMeanWeightedAboutAxis(t *testing.T) {
	// For coaxial rotations the chordal mean angle is atan2(Σw sinθ, Σw cosθ).
	angles := []float64{0.1, 0.3, -0.2}
	weights := []float64{1, 2, 1}
	var s, c float64
	ms := make([]transform.Matrix, len(angles))
	for i, a := range angles {
		ms[i] = rotZ(a)
		s += weights[i] * math.Sin(a)
		c += weights[i] * math.Cos(a)
	}

	mean, err := transform.Mean(ms, weights)
	require.NoError(t, err)
	requireAllClose(t, rotZ(math.Atan2(s, c)), mean, tol)
}

// TestMeanIsRigid checks that the averaged rotation is proper and orthonormal.
func TestMeanIsRigid(t *testing.T) {
	rng := newRNG(34)
	for n := 0; n < 50; n++ {
		ms := []transform.Matrix{randomWide(rng), randomWide(rng), randomWide(rng), randomWide(rng)}
		mean, err := transform.Mean(ms, []float64{rng.Float64(), rng.Float64(), rng.Float64(), 0.1})
		require.NoError(t, err)
		require.NoError(t, transform.ValidateRigid(mean, 1e-9))
	}
}

// TestMeanIdenticalRotations checks that averaging copies of R yields R.
func TestMeanIdenticalRotations(t *testing.T) {
	m := randomWide(newRNG(35))
	rots := []transform.Rotation{m.Rotation(), m.Rotation(), m.Rotation()}

	r, err := transform.MeanRotation(rots, nil)
	require.NoError(t, err)
	requireAllClose(t, transform.Compose(m.Rotation(), r3.Vec{}), transform.Compose(r, r3.Vec{}), tol)
}

// TestMeanErrors checks every sentinel of the averaging path.
func TestMeanErrors(t *testing.T) {
	a, b := transform.Identity(), rotZ(1)
	cases := []struct {
		name     string
		matrices []transform.Matrix
		weights  []float64
		want     error
	}{
		{"empty", nil, nil, transform.ErrEmptyInput},
		{"empty with weights", []transform.Matrix{}, []float64{1}, transform.ErrEmptyInput},
		{"short weights", []transform.Matrix{a, b}, []float64{1}, transform.ErrWeightsLength},
		{"long weights", []transform.Matrix{a, b}, []float64{1, 2, 3}, transform.ErrWeightsLength},
		{"single with bad length", []transform.Matrix{a}, []float64{1, 1}, transform.ErrWeightsLength},
		{"zero sum", []transform.Matrix{a, b}, []float64{0, 0}, transform.ErrInvalidWeights},
		{"negative", []transform.Matrix{a, b}, []float64{2, -1}, transform.ErrInvalidWeights},
		{"nan", []transform.Matrix{a, b}, []float64{math.NaN(), 1}, transform.ErrInvalidWeights},
		{"inf", []transform.Matrix{a, b}, []float64{math.Inf(1), 1}, transform.ErrInvalidWeights},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transform.Mean(tc.matrices, tc.weights)
			require.ErrorIs(t, err, tc.want)

			rots := make([]transform.Rotation, len(tc.matrices))
			for i, m := range tc.matrices {
				rots[i] = m.Rotation()
			}
			_, err = transform.MeanRotation(rots, tc.weights)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
