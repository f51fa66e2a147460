//go:build arm64

package nv12

import "golang.org/x/sys/cpu"

func detectCPU() (DispatchLevel, int) {
	cpuFeatures = cpuFeatures[:0]

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		cpuFeatures = append(cpuFeatures, "asimd")
	}
	if cpu.ARM64.HasASIMDDP {
		cpuFeatures = append(cpuFeatures, "asimddp")
	}
	if cpu.ARM64.HasSVE {
		cpuFeatures = append(cpuFeatures, "sve")
	}

	// NEON is 128-bit (16 bytes); SVE cores in the field are mostly 128-bit
	// as well, so the chunk stays at 16 either way.
	return DispatchPacked, 16
}
