// SPDX-License-Identifier: MIT
// Package transform: quaternion conversions and the 7-tuple (position + xyzw) form.
//
// Quaternion arithmetic is delegated to gonum's num/quat; the xyzw array type
// only fixes the external component order.

package transform

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// toNumber maps [x y z w] onto gonum's w + xi + yj + zk.
func toNumber(q Quaternion) quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

// fromNumber maps gonum's w + xi + yj + zk back onto [x y z w].
func fromNumber(n quat.Number) Quaternion {
	return Quaternion{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return quat.Abs(toNumber(q))
}

// Normalize returns q / |q|.
// Returns ErrZeroQuaternion if the norm is zero, NaN or ±Inf.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := toNumber(q)
	norm := quat.Abs(n)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return Quaternion{}, ErrZeroQuaternion
	}

	return fromNumber(quat.Scale(1/norm, n)), nil
}

// QuatFromRotation converts a rotation matrix to a unit quaternion [x y z w]
// using Shepperd's method: the largest of (trace, R00, R11, R22) selects the
// numerically safest pivot component. The sign is whatever the pivot yields
// (the pivot component is always positive); it is not canonicalised.
func QuatFromRotation(r Rotation) Quaternion {
	tr := r[0][0] + r[1][1] + r[2][2]

	var x, y, z, w, s float64
	switch {
	case tr >= r[0][0] && tr >= r[1][1] && tr >= r[2][2]:
		w = math.Sqrt(1+tr) / 2
		s = 4 * w
		x = (r[2][1] - r[1][2]) / s
		y = (r[0][2] - r[2][0]) / s
		z = (r[1][0] - r[0][1]) / s
	case r[0][0] >= r[1][1] && r[0][0] >= r[2][2]:
		x = math.Sqrt(1+r[0][0]-r[1][1]-r[2][2]) / 2
		s = 4 * x
		w = (r[2][1] - r[1][2]) / s
		y = (r[0][1] + r[1][0]) / s
		z = (r[0][2] + r[2][0]) / s
	case r[1][1] >= r[2][2]:
		y = math.Sqrt(1+r[1][1]-r[0][0]-r[2][2]) / 2
		s = 4 * y
		w = (r[0][2] - r[2][0]) / s
		x = (r[0][1] + r[1][0]) / s
		z = (r[1][2] + r[2][1]) / s
	default:
		z = math.Sqrt(1+r[2][2]-r[0][0]-r[1][1]) / 2
		s = 4 * z
		w = (r[1][0] - r[0][1]) / s
		x = (r[0][2] + r[2][0]) / s
		y = (r[1][2] + r[2][1]) / s
	}

	q := Quaternion{x, y, z, w}
	if unit, err := q.Normalize(); err == nil {
		return unit
	}

	return q
}

// RotationFromQuat converts q to a rotation matrix after normalising it.
// The formula is quadratic in q, so q and −q give bitwise-identical matrices.
func RotationFromQuat(q Quaternion) (Rotation, error) {
	u, err := q.Normalize()
	if err != nil {
		return Rotation{}, err
	}
	x, y, z, w := u[0], u[1], u[2], u[3]

	return Rotation{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}, nil
}

// ToPosAndQuat splits m into its position and its unit quaternion [x y z w].
func ToPosAndQuat(m Matrix) (r3.Vec, Quaternion) {
	return m.Translation(), QuatFromRotation(m.Rotation())
}

// FromPosAndQuat builds a transform from a position and a quaternion [x y z w].
// The quaternion need not be normalised. Returns ErrZeroQuaternion if it
// cannot be.
func FromPosAndQuat(pos r3.Vec, q Quaternion) (Matrix, error) {
	r, err := RotationFromQuat(q)
	if err != nil {
		return Matrix{}, transformErrorf(opFromPosQuat, err)
	}

	return Compose(r, pos), nil
}
