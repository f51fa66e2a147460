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

package nv12

import (
	"os"
	"strconv"
)

// DispatchLevel represents the kernel family the package functions use.
type DispatchLevel int

const (
	// DispatchScalar indicates the byte-at-a-time base kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchPacked indicates the word-parallel kernels (eight byte lanes
	// per 64-bit register).
	DispatchPacked
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchPacked:
		return "packed"
	default:
		return "unknown"
	}
}

// currentLevel, currentWidth and currentName describe the installed kernels.
// Set by init() from detectCPU() in dispatch_*.go, or by SetProcessor.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
	current      Processor
)

// cpuFeatures lists the CPU features detectCPU looked at and found.
var cpuFeatures []string

// Package-level kernels. They point at the Processor selected for this CPU.
var (
	// CopyPlanes copies every luma and chroma row of src into dst.
	CopyPlanes func(src, dst Frame)

	// MirrorPlanes writes the horizontal mirror of src into dst, keeping
	// each chroma U,V pair intact.
	MirrorPlanes func(src, dst Frame)

	// SumLuma returns the sum of all logical samples of a plane.
	SumLuma func(y Plane) uint64

	// ComputeLuminance returns the truncated mean sample of a luma plane.
	ComputeLuminance func(y Plane) uint32
)

func init() {
	level, width := detectCPU()
	if NoSimdEnv() {
		level = DispatchScalar
	}
	if level == DispatchScalar {
		SetProcessor(Scalar)
		return
	}
	SetProcessor(NewPacked(width))
}

// SetProcessor installs p behind the package-level kernels. It is meant for
// start-up configuration (a --no-simd flag, benchmarks) and must not race
// with frame processing.
func SetProcessor(p Processor) {
	current = p
	CopyPlanes = p.CopyPlanes
	MirrorPlanes = p.MirrorPlanes
	SumLuma = p.SumLuma
	ComputeLuminance = p.ComputeLuminance

	currentName = p.Name()
	if pk, ok := p.(Packed); ok {
		currentLevel = DispatchPacked
		currentWidth = pk.Chunk()
	} else {
		currentLevel = DispatchScalar
		currentWidth = 1
	}
}

// Current returns the Processor behind the package-level kernels.
func Current() Processor {
	return current
}

// CurrentLevel returns the kernel family in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the number of bytes the installed kernels consume per
// step: the chunk width for packed kernels, 1 for scalar.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the installed kernels.
// For example: "packed32", "packed16", "scalar".
func CurrentName() string {
	return currentName
}

// CPUFeatures returns the vector features detected on this CPU.
func CPUFeatures() []string {
	return append([]string(nil), cpuFeatures...)
}

// NoSimdEnv checks if the NV12_NO_SIMD environment variable is set.
// When set, the scalar kernels are used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("NV12_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func packedName(chunk int) string {
	return "packed" + strconv.Itoa(chunk)
}
