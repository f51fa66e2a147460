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
	"sync/atomic"

	"github.com/ajroetker/go-nv12/workerpool"
)

// MinParallelPixels is the frame area below which the parallel variants run
// on the calling goroutine.
const MinParallelPixels = 640 * 480

// ParallelCopyPlanes is CopyPlanes with the frame split into horizontal
// bands on pool. A nil pool or a small frame runs serially.
func ParallelCopyPlanes(pool *workerpool.Pool, src, dst Frame) {
	if pool == nil || src.Y.Width*src.Y.Height < MinParallelPixels {
		CopyPlanes(src, dst)
		return
	}
	pool.ParallelFor(src.UV.Height, func(start, end int) {
		CopyPlanes(src.Band(start, end), dst.Band(start, end))
	})
}

// ParallelMirrorPlanes is MirrorPlanes with the frame split into horizontal
// bands on pool. Mirroring is row-local, so bands are independent.
func ParallelMirrorPlanes(pool *workerpool.Pool, src, dst Frame) {
	if pool == nil || src.Y.Width*src.Y.Height < MinParallelPixels {
		MirrorPlanes(src, dst)
		return
	}
	pool.ParallelFor(src.UV.Height, func(start, end int) {
		MirrorPlanes(src.Band(start, end), dst.Band(start, end))
	})
}

// ParallelComputeLuminance sums bands of y on pool and divides once, so the
// result equals ComputeLuminance(y) exactly.
func ParallelComputeLuminance(pool *workerpool.Pool, y Plane) uint32 {
	if pool == nil || y.Width*y.Height < MinParallelPixels {
		return ComputeLuminance(y)
	}
	assertLuma(y)
	var total atomic.Uint64
	pool.ParallelFor(y.Height, func(start, end int) {
		total.Add(SumLuma(y.Rows(start, end)))
	})
	return meanLuma(total.Load(), y)
}
