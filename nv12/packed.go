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
	"encoding/binary"
	"math/bits"
)

// Packed kernels treat a uint64 as a vector of eight byte lanes. A chunk is
// several such words processed back to back; whatever is left of a row after
// the last full chunk goes through the scalar tail loops shared with the base
// kernels.

const (
	// laneBytes is the number of byte lanes in one packed word.
	laneBytes = 8

	// MinChunk and MaxChunk bound the chunk width in bytes.
	MinChunk = laneBytes
	MaxChunk = 64

	lo8  = 0x00FF00FF00FF00FF
	lo16 = 0x0000FFFF0000FFFF
	lo32 = 0x00000000FFFFFFFF

	// maxWordsPerFlush is how many words fit in 16-bit lanes before a lane
	// can overflow: each word adds at most 2*255 to a lane.
	maxWordsPerFlush = 0xFFFF / (2 * 0xFF)
)

func load64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func store64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// pairAdd8 adds adjacent byte lanes into four 16-bit lanes.
func pairAdd8(v uint64) uint64 {
	return (v & lo8) + ((v >> 8) & lo8)
}

// pairAdd16 adds adjacent 16-bit lanes into two 32-bit lanes.
func pairAdd16(v uint64) uint64 {
	return (v & lo16) + ((v >> 16) & lo16)
}

// reduce32 sums the two 32-bit lanes.
func reduce32(v uint64) uint64 {
	return (v & lo32) + (v >> 32)
}

// reverseSamples reverses the eight byte lanes of v.
func reverseSamples(v uint64) uint64 {
	return bits.ReverseBytes64(v)
}

// reversePairs reverses the four 16-bit U,V lanes of v while keeping the
// byte order inside each lane.
func reversePairs(v uint64) uint64 {
	v = bits.ReverseBytes64(v)
	return ((v >> 8) & lo8) | ((v & lo8) << 8)
}

// Packed is the word-parallel Processor. Its zero value is not usable; build
// one with NewPacked.
type Packed struct {
	chunk int
}

// NewPacked returns a packed processor working on chunks of the given width
// in bytes. The width is rounded down to a multiple of 8 and clamped to
// [MinChunk, MaxChunk].
func NewPacked(chunk int) Packed {
	chunk = min(max(chunk, MinChunk), MaxChunk)
	return Packed{chunk: chunk &^ (laneBytes - 1)}
}

// Chunk returns the chunk width in bytes.
func (p Packed) Chunk() int {
	return p.chunk
}

// Name implements Processor.
func (p Packed) Name() string {
	return packedName(p.chunk)
}

// CopyPlanes implements Processor. Row copies already run on the runtime's
// vectorized memmove, so the packed and base kernels are the same.
func (p Packed) CopyPlanes(src, dst Frame) {
	BaseCopyPlanes(src, dst)
}

// MirrorPlanes implements Processor.
func (p Packed) MirrorPlanes(src, dst Frame) {
	assertMirror(src, dst)
	for y := range src.Y.Height {
		p.mirrorLumaRow(src.Y.Row(y), dst.Y.Row(y))
	}
	for y := range src.UV.Height {
		p.mirrorChromaRow(src.UV.Row(y), dst.UV.Row(y))
	}
}

func (p Packed) mirrorLumaRow(s, d []byte) {
	w := len(s)
	i := 0
	for ; i+p.chunk <= w; i += p.chunk {
		for k := i; k < i+p.chunk; k += laneBytes {
			store64(d[w-k-laneBytes:], reverseSamples(load64(s[k:])))
		}
	}
	mirrorLumaTail(s, d, i)
}

// mirrorChromaRow works on byte offsets: a word at offset k holds the four
// pairs starting at pair k/2 and lands at offset w-k-8, the same position
// rule as luma.
func (p Packed) mirrorChromaRow(s, d []byte) {
	w := len(s) &^ 1
	i := 0
	for ; i+p.chunk <= w; i += p.chunk {
		for k := i; k < i+p.chunk; k += laneBytes {
			store64(d[w-k-laneBytes:], reversePairs(load64(s[k:])))
		}
	}
	mirrorChromaTail(s[:w], d[:w], i)
}

// SumLuma implements Processor.
func (p Packed) SumLuma(y Plane) uint64 {
	var sum uint64
	for r := range y.Height {
		sum += p.sumRow(y.Row(r))
	}
	return sum
}

// sumRow accumulates eight byte lanes into four 16-bit lanes, widens them to
// two 32-bit lanes before they can overflow, and reduces horizontally at the
// end of the row. The last len(row)%chunk samples are added one by one.
func (p Packed) sumRow(row []byte) uint64 {
	w := len(row)
	words := p.chunk / laneBytes
	var acc16, acc32 uint64
	pending := 0
	i := 0
	for ; i+p.chunk <= w; i += p.chunk {
		if pending+words > maxWordsPerFlush {
			acc32 += pairAdd16(acc16)
			acc16, pending = 0, 0
		}
		for k := i; k < i+p.chunk; k += laneBytes {
			acc16 += pairAdd8(load64(row[k:]))
		}
		pending += words
	}
	acc32 += pairAdd16(acc16)
	sum := reduce32(acc32)
	for _, v := range row[i:] {
		sum += uint64(v)
	}
	return sum
}

// ComputeLuminance implements Processor.
func (p Packed) ComputeLuminance(y Plane) uint32 {
	assertLuma(y)
	return meanLuma(p.SumLuma(y), y)
}
