// SPDX-License-Identifier: MIT
// Package transform: Euler angles and the 6-tuple packed form.
//
// Convention:
//   - Extrinsic "xyz": R = Rz(rz) · Ry(ry) · Rx(rx), radians.
//   - Decomposition ranges: rx, rz ∈ (−π, π], ry ∈ [−π/2, π/2].
//
// Gimbal lock:
//   - When cos(ry) < GimbalLockEps, rx and rz rotate about the same axis and
//     only their sum/difference is observable. The decomposition then fixes
//     rz = 0 and assigns the whole in-plane angle to rx. Unpack(Pack(m)) still
//     reproduces m; Pack(Unpack(p)) does not necessarily reproduce p.

package transform

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// GimbalLockEps is the cos(ry) threshold below which EulerFromRotation treats
// the rotation as gimbal-locked.
//
// Near the lock the round trip Unpack(Pack(m)) loses accuracy in proportion to
// the absolute error already present in m's entries divided by cos(ry). For a
// matrix built from angles the entries are exact to a few ulps of their own
// magnitude and the 1e-9 round trip holds; for one built from a quaternion
// (absolute error ~1e-16) it degrades to ~1e-16/cos(ry), about 1e-8 just
// above this threshold.
const GimbalLockEps = 1e-9

// RotationFromEuler builds R = Rz(rz) · Ry(ry) · Rx(rx) from angles [rx ry rz].
func RotationFromEuler(angles [3]float64) Rotation {
	sa, ca := math.Sincos(angles[0])
	sb, cb := math.Sincos(angles[1])
	sc, cc := math.Sincos(angles[2])

	return Rotation{
		{cc * cb, cc*sb*sa - sc*ca, cc*sb*ca + sc*sa},
		{sc * cb, sc*sb*sa + cc*ca, sc*sb*ca - cc*sa},
		{-sb, cb * sa, cb * ca},
	}
}

// EulerFromRotation returns [rx ry rz] such that RotationFromEuler reproduces r.
// See the package notes above for the gimbal-lock rule.
func EulerFromRotation(r Rotation) [3]float64 {
	cy := math.Hypot(r[0][0], r[1][0]) // |cos(ry)|, always >= 0
	ry := math.Atan2(-r[2][0], cy)

	if cy < GimbalLockEps {
		// rz is unobservable; fold it into rx.
		return [3]float64{math.Atan2(-r[1][2], r[1][1]), ry, 0}
	}

	return [3]float64{
		math.Atan2(r[2][1], r[2][2]),
		ry,
		math.Atan2(r[1][0], r[0][0]),
	}
}

// Pack converts m to [tx ty tz rx ry rz].
// Translation is copied verbatim; rotation goes through EulerFromRotation.
func Pack(m Matrix) PackedPose {
	e := EulerFromRotation(m.Rotation())

	return PackedPose{m[0][3], m[1][3], m[2][3], e[0], e[1], e[2]}
}

// Unpack converts [tx ty tz rx ry rz] to a transform matrix.
// Inverse of Pack away from gimbal lock.
func Unpack(p PackedPose) Matrix {
	return Compose(RotationFromEuler(p.Euler()), r3.Vec{X: p[0], Y: p[1], Z: p[2]})
}

// NewPackedPose copies values into a PackedPose.
// Returns ErrPackedLength unless len(values) == PackedLen; never truncates or pads.
func NewPackedPose(values []float64) (PackedPose, error) {
	var p PackedPose
	if len(values) != PackedLen {
		return p, transformErrorf(opNewPacked, ErrPackedLength)
	}
	copy(p[:], values)

	return p, nil
}

// UnpackSlice is Unpack for untyped input.
func UnpackSlice(values []float64) (Matrix, error) {
	p, err := NewPackedPose(values)
	if err != nil {
		return Matrix{}, transformErrorf(opUnpackSlice, err)
	}

	return Unpack(p), nil
}
