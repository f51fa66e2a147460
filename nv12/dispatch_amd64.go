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

//go:build amd64

package nv12

import "golang.org/x/sys/cpu"

// detectCPU sets the chunk width to the width of the widest vector register
// present.
func detectCPU() (DispatchLevel, int) {
	// SSE2 is part of the amd64 baseline.
	cpuFeatures = append(cpuFeatures[:0], "sse2")
	if cpu.X86.HasSSSE3 {
		cpuFeatures = append(cpuFeatures, "ssse3")
	}
	if cpu.X86.HasAVX {
		cpuFeatures = append(cpuFeatures, "avx")
	}
	if cpu.X86.HasAVX2 {
		cpuFeatures = append(cpuFeatures, "avx2")
	}
	if cpu.X86.HasAVX512BW {
		cpuFeatures = append(cpuFeatures, "avx512bw")
	}
	if cpu.X86.HasBMI2 {
		cpuFeatures = append(cpuFeatures, "bmi2")
	}

	switch {
	case cpu.X86.HasAVX512BW:
		return DispatchPacked, 64
	case cpu.X86.HasAVX2:
		return DispatchPacked, 32
	default:
		return DispatchPacked, 16
	}
}
