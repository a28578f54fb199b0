// Package rigid is a small toolkit for rigid-body transforms encoded as 4×4
// homogeneous matrices: building, inverting, averaging and converting poses
// for robotics and graphics pipelines.
//
// What is in the box?
//
//	transform/         — the Matrix value type and every pure operation on it:
//	                     Identity, Compose, Mul, Inverse, Pack/Unpack (xyz Euler),
//	                     ToPosAndQuat/FromPosAndQuat (xyzw), Mean (chordal SVD
//	                     rotation average), bounded random poses, ReadableString.
//	cmd/rigid/         — CLI over a YAML pose document (show, mean, inverse,
//	                     pack, unpack, quat, sample).
//	internal/config/   — pose document loader.
//	internal/log/      — zap-backed logger used by the CLI.
//	examples/          — runnable playground programs.
//
// Why value types?
//
//   - A Matrix is [4][4]float64: assignment copies, so no function can alias
//     or mutate a caller's pose.
//   - Every operation is a pure function and is safe for concurrent use.
//
// Quick example:
//
//	m := transform.Unpack(transform.PackedPose{1, 2, 3, 0, 0, math.Pi / 2})
//	fmt.Println(transform.ReadableString(transform.Inverse(m)))
//
//	go get github.com/katalvlaran/rigid
package rigid
