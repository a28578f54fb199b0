// SPDX-License-Identifier: MIT
// Package transform represents, composes and converts rigid-body transforms
// encoded as 4×4 homogeneous matrices.
//
// What & Why:
//
//	A Matrix is a value type ([4][4]float64, row-major). Its top-left 3×3 block
//	is a proper rotation, its top-right column is the translation and its bottom
//	row is fixed to [0 0 0 1]. Every function takes matrices by value and returns
//	a fresh value, so results never alias inputs and all functions are safe for
//	concurrent use.
//
// Representations:
//
//	Matrix      — 4×4 homogeneous transform.
//	PackedPose  — [tx ty tz rx ry rz], extrinsic "xyz" Euler angles in radians.
//	Quaternion  — [x y z w], unit norm; q and −q are the same rotation.
//
// Operations:
//
//	Identity, Compose, Mul, Inverse                — construction and algebra.
//	Pack, Unpack, UnpackSlice                      — 6-tuple conversion.
//	ToPosAndQuat, FromPosAndQuat                   — 7-tuple conversion.
//	Mean, MeanRotation                             — (weighted) pose averaging.
//	RandomFromMeanAndHalfExtents[With]             — bounded random poses.
//	ReadableString                                 — human-friendly printout.
//
// Numeric policy:
//
//	Inputs are not validated for rigidity on the numeric path; non-rigid input
//	yields implementation-defined output. ValidateRigid is available as an
//	opt-in check. Shape and length problems are reported via the sentinel
//	errors in errors.go and can be matched with errors.Is.
package transform
