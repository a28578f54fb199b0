// SPDX-License-Identifier: MIT

package transform

import "math/rand/v2"

// globalSource adapts math/rand/v2's process-wide generator, which is safe for
// concurrent use, to Float64Source.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// RandomFromMeanAndHalfExtents draws a random transform whose packed components
// lie in [mean[i] − halfExtents[i], mean[i] + halfExtents[i]).
// Uses the process-wide generator; safe for concurrent use.
func RandomFromMeanAndHalfExtents(mean, halfExtents PackedPose) Matrix {
	return RandomFromMeanAndHalfExtentsWith(globalSource{}, mean, halfExtents)
}

// RandomFromMeanAndHalfExtentsWith is RandomFromMeanAndHalfExtents with an
// injected source. Exactly PackedLen samples are consumed, in component order.
// The source's own thread-safety governs concurrent use.
func RandomFromMeanAndHalfExtentsWith(src Float64Source, mean, halfExtents PackedPose) Matrix {
	return Unpack(RandomPackedWith(src, mean, halfExtents))
}

// RandomPackedWith draws the packed pose used by RandomFromMeanAndHalfExtentsWith:
// p[i] = mean[i] − h[i] + 2·h[i]·u, u ∈ [0, 1).
func RandomPackedWith(src Float64Source, mean, halfExtents PackedPose) PackedPose {
	var p PackedPose
	for i := 0; i < PackedLen; i++ {
		p[i] = mean[i] - halfExtents[i] + 2*halfExtents[i]*src.Float64()
	}

	return p
}
