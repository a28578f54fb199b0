// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rigid/internal/config"
	"github.com/katalvlaran/rigid/internal/log"
	"github.com/katalvlaran/rigid/transform"
)

// rigidTol is the tolerance used to warn about non-rigid input poses.
const rigidTol = 1e-6

var errNoConfig = errors.New("no pose document given (use --config)")

type app struct {
	configPath string
	logLevel   string
	log        *log.Logger
	doc        *config.Document
}

func newRootCmd(logger *log.Logger, stdout io.Writer) *cobra.Command {
	a := &app{log: logger}

	root := &cobra.Command{
		Use:           "rigid",
		Short:         "Inspect, average and convert rigid-body transforms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetLevel(level)
			return nil
		},
	}
	root.SetOut(stdout)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "f", "", "YAML pose document")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(
		a.showCmd(),
		a.meanCmd(),
		a.inverseCmd(),
		a.packCmd(),
		a.unpackCmd(),
		a.quatCmd(),
		a.sampleCmd(),
	)

	return root
}

// load reads the pose document once and warns about poses that are not rigid.
func (a *app) load(cmd *cobra.Command) (*config.Document, error) {
	if a.doc != nil {
		return a.doc, nil
	}
	if a.configPath == "" {
		return nil, errNoConfig
	}

	doc, err := config.LoadFile(a.configPath)
	if err != nil {
		return nil, err
	}
	if doc.LogLevel != "" && !cmd.Flags().Changed("log-level") {
		level, err := log.ParseLevel(doc.LogLevel)
		if err != nil {
			return nil, err
		}
		a.log.SetLevel(level)
	}
	docLog := a.log.With(zap.String("path", a.configPath))
	docLog.Debug("pose document loaded", zap.Int("poses", len(doc.Poses)))

	ms, err := doc.Transforms()
	if err != nil {
		return nil, err
	}
	for i, m := range ms {
		if err := transform.ValidateRigid(m, rigidTol); err != nil {
			docLog.Warn("pose is not a rigid transform", zap.String("pose", doc.Poses[i].Name), zap.Error(err))
		}
	}

	a.doc = doc
	return doc, nil
}

// selected loads the document and returns the named (or all) poses with their matrices.
func (a *app) selected(cmd *cobra.Command, names []string) ([]config.Pose, []transform.Matrix, error) {
	doc, err := a.load(cmd)
	if err != nil {
		return nil, nil, err
	}
	return doc.Select(names)
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [pose...]",
		Short: "Print the readable form of poses",
		RunE: func(cmd *cobra.Command, args []string) error {
			poses, ms, err := a.selected(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, p := range poses {
				fmt.Fprintf(out, "# %s\n%s\n\n", p.Name, transform.ReadableString(ms[i]))
			}
			return nil
		},
	}
}

func (a *app) meanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mean",
		Short: "Print the (weighted) mean of all poses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.load(cmd)
			if err != nil {
				return err
			}
			ms, err := doc.Transforms()
			if err != nil {
				return err
			}
			m, err := transform.Mean(ms, doc.Weights)
			if err != nil {
				return err
			}
			a.log.Debug("mean computed", zap.Int("poses", len(ms)), zap.Bool("weighted", doc.Weights != nil))
			fmt.Fprintf(cmd.OutOrStdout(), "# mean of %d poses\n%s\n", len(ms), transform.ReadableString(m))
			return nil
		},
	}
}

func (a *app) inverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse <pose>",
		Short: "Print the inverse of a pose",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ms, err := a.selected(cmd, args)
			if err != nil {
				return err
			}
			inv := transform.Inverse(ms[0])
			residual := transform.MaxAbsDiff(transform.Mul(ms[0], inv), transform.Identity())
			a.log.Debug("inverse residual", zap.String("pose", args[0]), zap.Float64("max_abs", residual))
			fmt.Fprintf(cmd.OutOrStdout(), "# inverse of %s\n%s\n", args[0], transform.ReadableString(inv))
			return nil
		},
	}
}

func (a *app) packCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack [pose...]",
		Short: "Print poses as tx ty tz rx ry rz",
		RunE: func(cmd *cobra.Command, args []string) error {
			poses, ms, err := a.selected(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, p := range poses {
				packed := transform.Pack(ms[i])
				fmt.Fprintf(out, "%s%s\n", p.Name, formatFloats(packed[:]))
			}
			return nil
		},
	}
}

func (a *app) unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <tx> <ty> <tz> <rx> <ry> <rz>",
		Short: "Print the matrix of a packed pose",
		Long:  "Print the matrix of a packed pose. Put -- before the values if any is negative.",
		Args:  cobra.ExactArgs(transform.PackedLen),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, len(args))
			for i, s := range args {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("component %d: %w", i, err)
				}
				values[i] = v
			}
			m, err := transform.UnpackSlice(values)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), transform.ReadableString(m))
			return nil
		},
	}
}

func (a *app) quatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quat [pose...]",
		Short: "Print poses as position and xyzw quaternion",
		RunE: func(cmd *cobra.Command, args []string) error {
			poses, ms, err := a.selected(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, p := range poses {
				pos, q := transform.ToPosAndQuat(ms[i])
				fmt.Fprintf(out, "%s pos:%s quat:%s\n", p.Name, formatFloats([]float64{pos.X, pos.Y, pos.Z}), formatFloats(q[:]))
			}
			return nil
		},
	}
}

func (a *app) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Draw random poses from the document's sample block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.load(cmd)
			if err != nil {
				return err
			}
			if doc.Sample == nil {
				return fmt.Errorf("%w: document has no sample block", config.ErrSample)
			}
			mean, half, err := doc.Sample.Packed()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var src transform.Float64Source
			if doc.Sample.Seed != 0 {
				src = rand.New(rand.NewPCG(doc.Sample.Seed, doc.Sample.Seed))
			}
			a.log.Debug("sampling poses", zap.Int("count", doc.Sample.Count), zap.Uint64("seed", doc.Sample.Seed))

			for i := 0; i < doc.Sample.Count; i++ {
				var m transform.Matrix
				if src != nil {
					m = transform.RandomFromMeanAndHalfExtentsWith(src, mean, half)
				} else {
					m = transform.RandomFromMeanAndHalfExtents(mean, half)
				}
				packed := transform.Pack(m)
				fmt.Fprintf(out, "sample-%d%s\n", i, formatFloats(packed[:]))
			}
			return nil
		},
	}
}

// formatFloats renders values as " v0 v1 ..." with fixed precision.
func formatFloats(values []float64) string {
	buf := make([]byte, 0, len(values)*12)
	for _, v := range values {
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v, 'f', 6, 64)
	}
	return string(buf)
}
