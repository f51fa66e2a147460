// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajroetker/go-nv12/internal/config"
	"github.com/ajroetker/go-nv12/internal/logger"
	"github.com/ajroetker/go-nv12/nv12"
	"github.com/ajroetker/go-nv12/profiler"
	"github.com/ajroetker/go-nv12/workerpool"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	configPath string

	cfg  *config.Config
	log  *zap.Logger
	pool *workerpool.Pool
	prev nv12.Processor
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "nv12tool",
		Short: "Copy, mirror and measure NV12 frames",
		Long: `nv12tool runs the nv12 plane kernels over raw NV12 streams
(ffmpeg -f rawvideo -pix_fmt nv12) and synthetic frames.

Settings come from flags, NV12_* environment variables, and an optional
config file, in that order of precedence.

Examples:
  nv12tool info
  nv12tool mirror --width 1280 --height 720 --in cam.nv12 --out preview.nv12
  nv12tool luma --width 1280 --height 720 --in cam.nv12
  nv12tool bench --frames 300 --workers 4 -v`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.Int("width", 1920, "Frame width in pixels (even)")
	pf.Int("height", 1080, "Frame height in pixels (even)")
	pf.Int("src-stride", 0, "Row stride of source planes in bytes (0 = tightly packed)")
	pf.Int("dst-stride", 0, "Row stride of destination planes in bytes (0 = tightly packed)")
	pf.Int("workers", 0, "Worker goroutines for band-parallel kernels (0 = serial)")
	pf.Bool("no-simd", false, "Force the scalar kernels")
	pf.Bool("json", false, "Log as JSON")
	pf.CountP("verbose", "v", "Increase output verbosity (-v, -vv)")
	pf.String("video-log", "", "Write the per-frame profile to this file")
	pf.StringVar(&a.configPath, "config", "", "Config file (TOML or YAML)")

	root.AddCommand(
		newInfoCmd(a),
		newCopyCmd(a),
		newMirrorCmd(a),
		newLumaCmd(a),
		newBenchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Initialize(cfg.JSON, cfg.Verbosity); err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	a.log = logger.Named(cmd.Name())

	a.prev = nv12.Current()
	if cfg.NoSIMD {
		nv12.SetProcessor(nv12.Scalar)
	}
	if cfg.Workers > 0 {
		a.pool = workerpool.New(cfg.Workers)
	}
	a.log.Info("configured",
		zap.Stringer(logger.FieldGeometry, cfg.Geometry()),
		zap.String(logger.FieldProcessor, nv12.CurrentName()),
		zap.Int(logger.FieldWorkers, cfg.Workers))
	return nil
}

// run wraps a subcommand body so the pool and dispatch are restored even
// when it fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.teardown()
		return fn(cmd, args)
	}
}

func (a *app) teardown() {
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
	if a.prev != nil {
		nv12.SetProcessor(a.prev)
		a.prev = nil
	}
	logger.Cleanup()
}

// newProfiler returns a profiler logging through the command logger.
func (a *app) newProfiler(opts ...profiler.Option) *profiler.Profiler {
	return profiler.New(append([]profiler.Option{profiler.WithLogger(a.log.Named("profiler"))}, opts...)...)
}

// writeVideoLog writes prof to the configured video log file, if any.
func (a *app) writeVideoLog(prof *profiler.Profiler) error {
	if a.cfg.VideoLog == "" {
		return nil
	}
	f, err := os.Create(a.cfg.VideoLog)
	if err != nil {
		return errors.Wrap(err, "create video log")
	}
	if err := prof.WriteVideoLog(f); err != nil {
		f.Close()
		return err
	}
	a.log.Info("video log written", zap.String(logger.FieldFile, a.cfg.VideoLog))
	return errors.Wrap(f.Close(), "close video log")
}

// openInput opens path for reading; "-" is the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, errors.New("--in is required")
	}
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// createOutput creates path for writing; "-" is the command's stdout.
func createOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, errors.New("--out is required")
	}
	if path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}
	return f, nil
}
