// SPDX-License-Identifier: MIT
// Package transform: value types and fixed layout constants.

package transform

// Layout constants of the homogeneous representation.
const (
	// N is the side of a homogeneous transform matrix.
	N = 4

	// RN is the side of the rotation block.
	RN = 3

	// PackedLen is the number of components of a PackedPose.
	PackedLen = 6

	// PackedTranslationLen is the number of leading translation components of a
	// PackedPose; the remaining components are Euler angles.
	PackedTranslationLen = 3

	// QuatLen is the number of components of a Quaternion.
	QuatLen = 4
)

// AxisSequence names the order of elementary rotations used by Euler angles.
type AxisSequence uint8

const (
	// SeqXYZ applies extrinsic rotations about x, then y, then z:
	// R = Rz(rz) · Ry(ry) · Rx(rx).
	SeqXYZ AxisSequence = iota
)

// RotationSeq is the Euler axis sequence used by Pack and Unpack.
const RotationSeq = SeqXYZ

// String returns the lower-case axis order ("xyz"); lower case marks extrinsic axes.
func (s AxisSequence) String() string {
	switch s {
	case SeqXYZ:
		return "xyz"
	default:
		return "unknown"
	}
}

// Matrix is a 4×4 homogeneous rigid transform, row-major.
// The zero value is NOT a valid transform; start from Identity or Compose.
type Matrix [N][N]float64

// Rotation is a 3×3 rotation matrix, row-major.
type Rotation [RN][RN]float64

// PackedPose is [tx ty tz rx ry rz]: translation followed by Euler angles
// (radians) in RotationSeq order.
type PackedPose [PackedLen]float64

// Quaternion is a rotation quaternion in [x y z w] order.
type Quaternion [QuatLen]float64

// Float64Source yields uniform samples in [0, 1). *rand.Rand from math/rand
// and math/rand/v2 both satisfy it.
type Float64Source interface {
	Float64() float64
}

// Translation returns the packed translation [tx ty tz].
func (p PackedPose) Translation() [PackedTranslationLen]float64 {
	return [PackedTranslationLen]float64{p[0], p[1], p[2]}
}

// Euler returns the packed Euler angles [rx ry rz].
func (p PackedPose) Euler() [3]float64 {
	return [3]float64{p[3], p[4], p[5]}
}

// Neg returns −q, which represents the same rotation as q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q[0], -q[1], -q[2], -q[3]}
}
