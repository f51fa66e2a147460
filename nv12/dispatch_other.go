//go:build !amd64 && !arm64

package nv12

import "math/bits"

func detectCPU() (DispatchLevel, int) {
	cpuFeatures = cpuFeatures[:0]

	// Packed words only pay off with native 64-bit registers. On 32-bit
	// targets every uint64 op is split in two, so stay scalar there.
	if bits.UintSize < 64 {
		return DispatchScalar, 1
	}
	return DispatchPacked, 16
}
