// SPDX-License-Identifier: MIT
package transform_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/rigid/transform"
)

// TestReadableStringLayout checks section order and exact lines for a clean quarter turn.
func TestReadableStringLayout(t *testing.T) {
	quarter := transform.Rotation{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	m := transform.Compose(quarter, r3.Vec{X: 1, Y: 2, Z: 3})

	lines := strings.Split(transform.ReadableString(m), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, "Translation (xyz): 1.000 2.000 3.000", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "Rotation (xyz) (radians): "), lines[1])
	require.True(t, strings.HasSuffix(lines[1], " 1.571"), lines[1])
	require.Equal(t, "Quaternion (xyzw): 0.000 0.000 0.707 0.707", lines[2])
	require.Equal(t, "Matrix:", lines[3])
	require.Equal(t, "0.000 -1.000 0.000 1.000", lines[4])
	require.Equal(t, "1.000 0.000 0.000 2.000", lines[5])
	require.Equal(t, "0.000 0.000 1.000 3.000", lines[6])
	require.Equal(t, "0.000 0.000 0.000 1.000", lines[7])
}

// TestReadableStringEuler checks the Euler line for a generic rotation.
func TestReadableStringEuler(t *testing.T) {
	m := transform.Unpack(transform.PackedPose{0, 0, 0, 0.1, 0.2, 0.3})
	require.Contains(t, transform.ReadableString(m), "Rotation (xyz) (radians): 0.100 0.200 0.300\n")
}

// TestMatrixStringer checks that fmt uses the readable rendering.
func TestMatrixStringer(t *testing.T) {
	m := transform.Unpack(transform.PackedPose{4, 5, 6, 0, 0, 0})
	require.Equal(t, transform.ReadableString(m), fmt.Sprint(m))
	require.Equal(t, transform.ReadableString(m), m.String())
}
