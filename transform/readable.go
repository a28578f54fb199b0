// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
	"strings"
)

// displayZero is half a unit in the last printed decimal.
const displayZero = 5e-4

// ReadableString renders m for humans: translation, Euler angles (radians),
// quaternion (xyzw) and the full matrix, three decimals each.
//
// Layout (not meant for machine parsing):
//
//	Translation (xyz): 1.000 2.000 3.000
//	Rotation (xyz) (radians): 0.000 0.000 1.571
//	Quaternion (xyzw): 0.000 0.000 0.707 0.707
//	Matrix:
//	0.000 -1.000 0.000 1.000
//	...
func ReadableString(m Matrix) string {
	var sb strings.Builder
	t := m.Translation()
	p := Pack(m)
	_, q := ToPosAndQuat(m)

	fmt.Fprintf(&sb, "Translation (xyz): %.3f %.3f %.3f\n", clean(t.X), clean(t.Y), clean(t.Z))
	fmt.Fprintf(&sb, "Rotation (%s) (radians): %.3f %.3f %.3f\n", RotationSeq, clean(p[3]), clean(p[4]), clean(p[5]))
	fmt.Fprintf(&sb, "Quaternion (xyzw): %.3f %.3f %.3f %.3f\n", clean(q[0]), clean(q[1]), clean(q[2]), clean(q[3]))
	sb.WriteString("Matrix:")
	for _, row := range m {
		fmt.Fprintf(&sb, "\n%.3f %.3f %.3f %.3f", clean(row[0]), clean(row[1]), clean(row[2]), clean(row[3]))
	}

	return sb.String()
}

// clean maps values that round to zero onto +0 so they print as 0.000, not -0.000.
func clean(v float64) float64 {
	if math.Abs(v) < displayZero {
		return 0
	}

	return v
}

// String implements fmt.Stringer via ReadableString.
func (m Matrix) String() string { return ReadableString(m) }
