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
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Plane is a non-owning view of one image plane in caller memory.
//
// Row y starts at Data[y*Stride] and holds Width meaningful bytes. The bytes
// between Width and Stride are padding and are never written by the kernels.
// For a chroma plane Width counts bytes, so a row holds Width/2 U,V pairs.
type Plane struct {
	Data   []byte
	Stride int // bytes between the starts of consecutive rows
	Width  int // meaningful bytes per row
	Height int // rows
}

// NewPlane validates a plane view over data.
// The last row only needs Width bytes, so data may end right after it.
func NewPlane(data []byte, stride, width, height int) (Plane, error) {
	if width <= 0 || height <= 0 {
		return Plane{}, errors.Wrapf(ErrInvalidGeometry, "plane size %dx%d", width, height)
	}
	if stride < width {
		return Plane{}, errors.WithHint(
			errors.Wrapf(ErrInvalidGeometry, "stride %d is smaller than width %d", stride, width),
			"the row stride includes alignment padding and is at least the row width")
	}
	if need := planeSpan(stride, width, height); len(data) < need {
		return Plane{}, errors.Wrapf(ErrShortBuffer, "plane %dx%d stride %d needs %d bytes, have %d",
			width, height, stride, need, len(data))
	}
	return Plane{Data: data, Stride: stride, Width: width, Height: height}, nil
}

// planeSpan is the number of bytes from the first sample to the end of the
// last row's logical region.
func planeSpan(stride, width, height int) int {
	if height <= 0 {
		return 0
	}
	return stride*(height-1) + width
}

// Row returns the logical samples of row y, excluding padding.
// The capacity is clipped to Width so appends cannot spill into padding.
func (p Plane) Row(y int) []byte {
	off := y * p.Stride
	return p.Data[off : off+p.Width : off+p.Width]
}

// Rows returns a view of rows [start, end) sharing the same memory.
func (p Plane) Rows(start, end int) Plane {
	if end <= start {
		return Plane{Stride: p.Stride, Width: p.Width}
	}
	off := start * p.Stride
	return Plane{
		Data:   p.Data[off : off+planeSpan(p.Stride, p.Width, end-start)],
		Stride: p.Stride,
		Width:  p.Width,
		Height: end - start,
	}
}

// Padding returns the number of padding bytes at the end of each row.
func (p Plane) Padding() int {
	return p.Stride - p.Width
}

// Overlaps reports whether the backing memory of p and q intersects.
func (p Plane) Overlaps(q Plane) bool {
	if len(p.Data) == 0 || len(q.Data) == 0 {
		return false
	}
	p0 := uintptr(unsafe.Pointer(unsafe.SliceData(p.Data)))
	q0 := uintptr(unsafe.Pointer(unsafe.SliceData(q.Data)))
	return p0 < q0+uintptr(len(q.Data)) && q0 < p0+uintptr(len(p.Data))
}
