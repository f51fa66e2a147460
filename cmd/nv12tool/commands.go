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
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ajroetker/go-nv12/internal/logger"
	"github.com/ajroetker/go-nv12/internal/rawio"
	"github.com/ajroetker/go-nv12/nv12"
	"github.com/ajroetker/go-nv12/profiler"
	"github.com/ajroetker/go-nv12/workerpool"
)

type infoReport struct {
	Arch        string   `json:"arch"`
	CPU         string   `json:"cpu,omitempty"`
	Cores       int      `json:"cores,omitempty"`
	Level       string   `json:"level"`
	Processor   string   `json:"processor"`
	Chunk       int      `json:"chunk_bytes"`
	Features    []string `json:"cpu_features"`
	NoSIMDEnv   bool     `json:"no_simd_env"`
	Debug       bool     `json:"debug_assertions"`
	MinParallel int      `json:"min_parallel_pixels"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected kernel implementation and CPU features",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			r := infoReport{
				Arch:        runtime.GOARCH,
				Level:       nv12.CurrentLevel().String(),
				Processor:   nv12.CurrentName(),
				Chunk:       nv12.CurrentWidth(),
				Features:    nv12.CPUFeatures(),
				NoSIMDEnv:   nv12.NoSimdEnv(),
				Debug:       nv12.DebugAssertions,
				MinParallel: nv12.MinParallelPixels,
			}
			if host, err := hostCPU(cmd.Context()); err != nil {
				a.log.Warn("cpu info unavailable", zap.Error(err))
			} else {
				r.CPU, r.Cores = host.model, host.cores
			}

			out := cmd.OutOrStdout()
			if a.cfg.JSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return errors.Wrap(enc.Encode(r), "encode info")
			}
			data := pterm.TableData{
				{"property", "value"},
				{"arch", r.Arch},
				{"cpu", r.CPU},
				{"cores", strconv.Itoa(r.Cores)},
				{"level", r.Level},
				{"processor", r.Processor},
				{"chunk", fmt.Sprintf("%d bytes", r.Chunk)},
				{"features", strings.Join(r.Features, " ")},
				{"no-simd", strconv.FormatBool(r.NoSIMDEnv)},
				{"debug", strconv.FormatBool(r.Debug)},
			}
			return errors.Wrap(pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(out).Render(), "render info")
		}),
	}
}

func newCopyCmd(a *app) *cobra.Command {
	return newTransformCmd(a, "copy", "Copy every frame of a raw NV12 stream, re-striding rows",
		func(pool *workerpool.Pool, src, dst nv12.Frame) { nv12.ParallelCopyPlanes(pool, src, dst) })
}

func newMirrorCmd(a *app) *cobra.Command {
	return newTransformCmd(a, "mirror", "Mirror every frame of a raw NV12 stream horizontally",
		func(pool *workerpool.Pool, src, dst nv12.Frame) { nv12.ParallelMirrorPlanes(pool, src, dst) })
}

// newTransformCmd builds a command that streams frames from --in through
// kernel into --out.
func newTransformCmd(a *app, name, short string, kernel func(pool *workerpool.Pool, src, dst nv12.Frame)) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			r, err := openInput(cmd, in)
			if err != nil {
				return err
			}
			defer r.Close()
			w, err := createOutput(cmd, out)
			if err != nil {
				return err
			}

			n, err := a.transform(r, w, name, kernel)
			if err != nil {
				w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return errors.Wrap(err, "close output")
			}
			a.log.Info("stream done", zap.String("operation", name), zap.Int(logger.FieldCount, n))
			return nil
		}),
	}
	cmd.Flags().StringVar(&in, "in", "", "Input raw NV12 file (- for stdin)")
	cmd.Flags().StringVar(&out, "out", "", "Output raw NV12 file (- for stdout)")
	return cmd
}

func (a *app) transform(r io.Reader, w io.Writer, name string, kernel func(pool *workerpool.Pool, src, dst nv12.Frame)) (int, error) {
	g := a.cfg.Geometry()
	src, err := nv12.AllocFrame(g, a.cfg.SrcStride, a.cfg.SrcStride)
	if err != nil {
		return 0, errors.Wrap(err, "source frame")
	}
	dst, err := nv12.AllocFrame(g, a.cfg.DstStride, a.cfg.DstStride)
	if err != nil {
		return 0, errors.Wrap(err, "destination frame")
	}

	rd := rawio.NewReader(r, g)
	wr := rawio.NewWriter(w, g)
	prof := a.newProfiler()
	for {
		if err := rd.ReadFrame(src); err != nil {
			if err == io.EOF {
				break
			}
			return rd.Frames(), err
		}
		prof.BeginFrame(uint32(rd.Frames() - 1))
		kernel(a.pool, src, dst)
		prof.AddFrameEvent(name)
		if err := wr.WriteFrame(dst); err != nil {
			return rd.Frames(), err
		}
		prof.AddFrameEvent("write")
	}
	if err := wr.Flush(); err != nil {
		return rd.Frames(), err
	}
	return rd.Frames(), a.writeVideoLog(prof)
}

func newLumaCmd(a *app) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "luma",
		Short: "Print the average luminance of every frame of a raw NV12 stream",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			r, err := openInput(cmd, in)
			if err != nil {
				return err
			}
			defer r.Close()

			g := a.cfg.Geometry()
			frame, err := nv12.AllocFrame(g, a.cfg.SrcStride, a.cfg.SrcStride)
			if err != nil {
				return errors.Wrap(err, "frame")
			}
			rd := rawio.NewReader(r, g)
			out := cmd.OutOrStdout()
			for {
				if err := rd.ReadFrame(frame); err != nil {
					if err == io.EOF {
						return nil
					}
					return err
				}
				luma := nv12.ParallelComputeLuminance(a.pool, frame.Y)
				if a.cfg.JSON {
					fmt.Fprintf(out, "{\"frame\":%d,\"luminance\":%d}\n", rd.Frames()-1, luma)
				} else {
					fmt.Fprintf(out, "frame %d luminance %d\n", rd.Frames()-1, luma)
				}
			}
		}),
	}
	cmd.Flags().StringVar(&in, "in", "", "Input raw NV12 file (- for stdin)")
	return cmd
}

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run copy, mirror and luminance over synthetic frames and report timings",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			g := a.cfg.Geometry()
			src, err := nv12.AllocFrame(g, a.cfg.SrcStride, a.cfg.SrcStride)
			if err != nil {
				return errors.Wrap(err, "source frame")
			}
			dst, err := nv12.AllocFrame(g, a.cfg.DstStride, a.cfg.DstStride)
			if err != nil {
				return errors.Wrap(err, "destination frame")
			}

			// A camera delivers frames at a fixed cadence; --fps reproduces it.
			limiter := rate.NewLimiter(rate.Inf, 1)
			if a.cfg.FPS > 0 {
				limiter = rate.NewLimiter(rate.Limit(a.cfg.FPS), 1)
			}

			prof := a.newProfiler(profiler.WithMaxFrames(a.cfg.Frames))
			var lumaSum uint64
			start := time.Now()
			for i := range a.cfg.Frames {
				if err := limiter.Wait(cmd.Context()); err != nil {
					return errors.Wrap(err, "frame pacing")
				}
				rawio.SynthFrame(src, i)
				prof.BeginFrame(uint32(i))
				nv12.ParallelCopyPlanes(a.pool, src, dst)
				prof.AddFrameEvent("copy")
				nv12.ParallelMirrorPlanes(a.pool, src, dst)
				prof.AddFrameEvent("mirror")
				lumaSum += uint64(nv12.ParallelComputeLuminance(a.pool, dst.Y))
				prof.AddFrameEvent("luminance")
			}
			elapsed := time.Since(start)

			s := prof.Summary()
			moved := float64(a.cfg.Frames) * float64(g.FrameSize()) * 3
			mbps := moved / max(elapsed.Seconds(), 1e-9) / 1e6
			a.log.Info("bench done",
				zap.Int(logger.FieldCount, s.Frames),
				zap.Duration("mean_frame", s.MeanDuration),
				zap.Duration("max_frame", s.MaxDuration),
				zap.Float64("mb_per_s", mbps))

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s workers=%d frames=%d mean=%s max=%s throughput=%.1fMB/s mean_luma=%d\n",
				g, nv12.CurrentName(), a.cfg.Workers, s.Frames, s.MeanDuration, s.MaxDuration, mbps,
				lumaSum/uint64(a.cfg.Frames))
			return a.writeVideoLog(prof)
		}),
	}
	cmd.Flags().Int("frames", 120, "Number of synthetic frames")
	cmd.Flags().Float64("fps", 0, "Deliver frames at this rate (0 = as fast as possible)")
	return cmd
}
