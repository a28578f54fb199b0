// SPDX-License-Identifier: MIT
// Package transform_test contains test helpers
//
// Purpose:
//   - Provide seeded, reproducible rigid transforms for property tests.
//   - Centralise tolerance assertions so every test reports the same way.

package transform_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/rigid/transform"
)

// tol is the element-wise tolerance of the round-trip properties.
const tol = 1e-9

// trials is the number of random matrices per property test.
const trials = 200

// newRNG returns a deterministic generator so failures are reproducible.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomRigid builds a rigid transform with translation in [0,1)³ and Euler
// angles in [0,1)³, mirroring how the round-trip properties were first stated.
func randomRigid(rng *rand.Rand) transform.Matrix {
	t := r3.Vec{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}
	e := [3]float64{rng.Float64(), rng.Float64(), rng.Float64()}

	return transform.Compose(transform.RotationFromEuler(e), t)
}

// randomWide builds a rigid transform with Euler angles spread over the full
// decomposition range but away from gimbal lock (|ry| <= 1.4).
func randomWide(rng *rand.Rand) transform.Matrix {
	t := r3.Vec{X: 10 * (rng.Float64() - 0.5), Y: 10 * (rng.Float64() - 0.5), Z: 10 * (rng.Float64() - 0.5)}
	e := [3]float64{
		(2*rng.Float64() - 1) * math.Pi,
		(2*rng.Float64() - 1) * 1.4,
		(2*rng.Float64() - 1) * math.Pi,
	}

	return transform.Compose(transform.RotationFromEuler(e), t)
}

// requireAllClose fails the test with the worst deviation if a and b differ by more than eps.
func requireAllClose(t *testing.T, want, got transform.Matrix, eps float64) {
	t.Helper()
	require.Truef(t, transform.AllClose(want, got, eps),
		"max |Δ| = %.3g > %.1g\nwant:\n%v\ngot:\n%v", transform.MaxAbsDiff(want, got), eps, want, got)
}

// requireVecClose compares two r3 vectors component-wise.
func requireVecClose(t *testing.T, want, got r3.Vec, eps float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, eps, "x")
	require.InDelta(t, want.Y, got.Y, eps, "y")
	require.InDelta(t, want.Z, got.Z, eps, "z")
}

// rotZ returns a rigid transform rotating by angle about z, zero translation.
func rotZ(angle float64) transform.Matrix {
	return transform.Unpack(transform.PackedPose{0, 0, 0, 0, 0, angle})
}
