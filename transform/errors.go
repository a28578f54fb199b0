// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag
// ("Mean: transform: ..."); callers and tests match them via errors.Is.
// No function panics on user-triggered conditions.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Mean/MeanRotation receive no matrices.
	ErrEmptyInput = errors.New("transform: empty input")

	// ErrWeightsLength indicates that len(weights) differs from len(matrices).
	ErrWeightsLength = errors.New("transform: weights length mismatch")

	// ErrInvalidWeights signals a negative, NaN or ±Inf weight, or weights
	// summing to zero (normalisation is undefined).
	ErrInvalidWeights = errors.New("transform: invalid weights")

	// ErrPackedLength indicates a packed pose slice whose length is not PackedLen.
	ErrPackedLength = errors.New("transform: packed pose length must be 6")

	// ErrZeroQuaternion signals a quaternion that cannot be normalised
	// (zero norm, NaN or ±Inf components).
	ErrZeroQuaternion = errors.New("transform: quaternion has zero or non-finite norm")

	// ErrSVDFailed indicates that the singular value decomposition used by
	// rotation averaging did not converge.
	ErrSVDFailed = errors.New("transform: svd factorization failed")

	// ErrNotRigid is returned by ValidateRigid for matrices whose rotation block
	// is not orthonormal with det +1 or whose bottom row is not [0 0 0 1].
	ErrNotRigid = errors.New("transform: matrix is not a rigid transform")
)

// Operation name constants for unified error wrapping.
const (
	opMean          = "Mean"
	opMeanRotation  = "MeanRotation"
	opUnpackSlice   = "UnpackSlice"
	opNewPacked     = "NewPackedPose"
	opFromPosQuat   = "FromPosAndQuat"
	opValidateRigid = "ValidateRigid"
)

// transformErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
