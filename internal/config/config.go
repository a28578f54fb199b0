// SPDX-License-Identifier: MIT
// Package config loads pose documents for the rigid CLI.
//
// A document lists named poses, each given in exactly one representation
// (packed 6-tuple, position + quaternion, or a full 4×4 matrix), optional
// per-pose weights for averaging, and an optional random-sampling block.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rigid/transform"
)

// Sentinel errors. Validation failures wrap one of these with the offending
// pose name or field.
var (
	// ErrNoPoses indicates an empty document: no poses and no sample block.
	ErrNoPoses            = errors.New("config: document has no poses")
	// ErrPoseName indicates a pose without a name.
	ErrPoseName           = errors.New("config: pose name is empty")
	// ErrDuplicatePose indicates two poses sharing a name.
	ErrDuplicatePose      = errors.New("config: duplicate pose name")
	// ErrUnknownPose indicates a lookup of a name the document does not define.
	ErrUnknownPose        = errors.New("config: unknown pose")
	// ErrPoseRepresentation indicates a pose given in zero or several forms.
	ErrPoseRepresentation = errors.New("config: pose needs exactly one of packed, position+quaternion, matrix")
	// ErrFieldLength indicates a packed, position, quaternion or matrix field of the wrong size.
	ErrFieldLength        = errors.New("config: field has wrong length")
	// ErrWeights indicates a weights list whose length differs from the pose count.
	ErrWeights            = errors.New("config: weights must match poses")
	// ErrSample indicates a malformed sample block.
	ErrSample             = errors.New("config: invalid sample block")
)

// Document is the root of a pose file.
//
// Validate converts every pose once and caches the matrices; Transforms and
// Select read that cache. Call Validate again after editing Poses.
type Document struct {
	LogLevel string    `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Poses    []Pose    `json:"poses" yaml:"poses"`
	Weights  []float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
	Sample   *Sample   `json:"sample,omitempty" yaml:"sample,omitempty"`

	matrices []transform.Matrix // parallel to Poses, nil until validated
}

// Pose is one named transform.
type Pose struct {
	Name       string      `json:"name" yaml:"name"`
	Packed     []float64   `json:"packed,omitempty" yaml:"packed,omitempty"`
	Position   []float64   `json:"position,omitempty" yaml:"position,omitempty"`
	Quaternion []float64   `json:"quaternion,omitempty" yaml:"quaternion,omitempty"`
	Matrix     [][]float64 `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// Sample describes random poses drawn around a packed mean.
// Seed 0 selects the process-wide generator.
type Sample struct {
	Mean        []float64 `json:"mean" yaml:"mean"`
	HalfExtents []float64 `json:"half_extents" yaml:"half_extents"`
	Count       int       `json:"count" yaml:"count"`
	Seed        uint64    `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// LoadYAML decodes and validates a document.
func LoadYAML(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPoses
		}
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile opens path and calls LoadYAML.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// Validate checks names, representations, lengths, weights and the sample block,
// and caches the converted pose matrices.
// A document with only a sample block and no poses is valid.
func (d *Document) Validate() error {
	d.matrices = nil
	if len(d.Poses) == 0 && d.Sample == nil {
		return ErrNoPoses
	}

	matrices := make([]transform.Matrix, len(d.Poses))
	seen := make(map[string]struct{}, len(d.Poses))
	for i := range d.Poses {
		p := &d.Poses[i]
		if p.Name == "" {
			return fmt.Errorf("pose #%d: %w", i, ErrPoseName)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("pose %q: %w", p.Name, ErrDuplicatePose)
		}
		seen[p.Name] = struct{}{}

		m, err := p.Transform()
		if err != nil {
			return err
		}
		matrices[i] = m
	}

	if d.Weights != nil && len(d.Weights) != len(d.Poses) {
		return fmt.Errorf("%w: %d weights for %d poses", ErrWeights, len(d.Weights), len(d.Poses))
	}

	if s := d.Sample; s != nil {
		if len(s.Mean) != transform.PackedLen || len(s.HalfExtents) != transform.PackedLen {
			return fmt.Errorf("%w: mean and half_extents need %d values", ErrSample, transform.PackedLen)
		}
		if s.Count <= 0 {
			return fmt.Errorf("%w: count must be > 0", ErrSample)
		}
	}

	d.matrices = matrices
	return nil
}

// ensureValidated validates d on first use, e.g. for documents built in code.
func (d *Document) ensureValidated() error {
	if d.matrices != nil && len(d.matrices) == len(d.Poses) {
		return nil
	}
	return d.Validate()
}

// index returns the position of the pose called name.
func (d *Document) index(name string) (int, error) {
	for i, p := range d.Poses {
		if p.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownPose, name)
}

// Lookup returns the pose called name.
func (d *Document) Lookup(name string) (Pose, error) {
	i, err := d.index(name)
	if err != nil {
		return Pose{}, err
	}
	return d.Poses[i], nil
}

// Select returns the named poses and their matrices in the given order, or
// every pose when names is empty.
func (d *Document) Select(names []string) ([]Pose, []transform.Matrix, error) {
	if err := d.ensureValidated(); err != nil {
		return nil, nil, err
	}
	if len(names) == 0 {
		return slices.Clone(d.Poses), slices.Clone(d.matrices), nil
	}

	poses := make([]Pose, 0, len(names))
	matrices := make([]transform.Matrix, 0, len(names))
	for _, n := range names {
		i, err := d.index(n)
		if err != nil {
			return nil, nil, err
		}
		poses = append(poses, d.Poses[i])
		matrices = append(matrices, d.matrices[i])
	}
	return poses, matrices, nil
}

// Transforms returns every pose matrix, in document order.
func (d *Document) Transforms() ([]transform.Matrix, error) {
	if err := d.ensureValidated(); err != nil {
		return nil, err
	}
	return slices.Clone(d.matrices), nil
}

// Transform converts the pose through the core API.
func (p Pose) Transform() (transform.Matrix, error) {
	hasPacked := p.Packed != nil
	hasPosQuat := p.Position != nil || p.Quaternion != nil
	hasMatrix := p.Matrix != nil

	set := 0
	for _, b := range []bool{hasPacked, hasPosQuat, hasMatrix} {
		if b {
			set++
		}
	}
	if set != 1 {
		return transform.Matrix{}, fmt.Errorf("pose %q: %w", p.Name, ErrPoseRepresentation)
	}

	switch {
	case hasPacked:
		m, err := transform.UnpackSlice(p.Packed)
		if err != nil {
			return transform.Matrix{}, fmt.Errorf("pose %q: packed: %w: %w", p.Name, ErrFieldLength, err)
		}
		return m, nil

	case hasPosQuat:
		if len(p.Position) != 3 {
			return transform.Matrix{}, fmt.Errorf("pose %q: position: %w", p.Name, ErrFieldLength)
		}
		if len(p.Quaternion) != transform.QuatLen {
			return transform.Matrix{}, fmt.Errorf("pose %q: quaternion: %w", p.Name, ErrFieldLength)
		}
		pos := r3.Vec{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]}
		var q transform.Quaternion
		copy(q[:], p.Quaternion)
		m, err := transform.FromPosAndQuat(pos, q)
		if err != nil {
			return transform.Matrix{}, fmt.Errorf("pose %q: %w", p.Name, err)
		}
		return m, nil

	default:
		if len(p.Matrix) != transform.N {
			return transform.Matrix{}, fmt.Errorf("pose %q: matrix: %w", p.Name, ErrFieldLength)
		}
		var m transform.Matrix
		for i, row := range p.Matrix {
			if len(row) != transform.N {
				return transform.Matrix{}, fmt.Errorf("pose %q: matrix row %d: %w", p.Name, i, ErrFieldLength)
			}
			copy(m[i][:], row)
		}
		return m, nil
	}
}

// Packed returns the sample block as typed packed poses.
func (s Sample) Packed() (mean, halfExtents transform.PackedPose, err error) {
	if mean, err = transform.NewPackedPose(s.Mean); err != nil {
		return mean, halfExtents, fmt.Errorf("%w: mean: %w", ErrSample, err)
	}
	if halfExtents, err = transform.NewPackedPose(s.HalfExtents); err != nil {
		return mean, halfExtents, fmt.Errorf("%w: half_extents: %w", ErrSample, err)
	}
	return mean, halfExtents, nil
}
