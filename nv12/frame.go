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
	"fmt"

	"github.com/cockroachdb/errors"
)

// Geometry is the logical size of an NV12 frame in pixels.
// Both dimensions are positive and even.
type Geometry struct {
	Width  int
	Height int
}

// NewGeometry validates a frame size.
func NewGeometry(width, height int) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, errors.Wrapf(ErrInvalidGeometry, "frame size %dx%d", width, height)
	}
	if width%2 != 0 || height%2 != 0 {
		return Geometry{}, errors.WithHint(
			errors.Wrapf(ErrOddDimension, "frame size %dx%d", width, height),
			"4:2:0 chroma covers 2x2 luma blocks, crop the frame to even dimensions")
	}
	return Geometry{Width: width, Height: height}, nil
}

// Pixels returns width*height.
func (g Geometry) Pixels() int {
	return g.Width * g.Height
}

// LumaSize returns the size in bytes of a tightly packed luma plane.
func (g Geometry) LumaSize() int {
	return g.Width * g.Height
}

// ChromaRows returns the number of rows in the chroma plane.
func (g Geometry) ChromaRows() int {
	return g.Height / 2
}

// ChromaSize returns the size in bytes of a tightly packed chroma plane.
func (g Geometry) ChromaSize() int {
	return g.Width * g.ChromaRows()
}

// FrameSize returns the size in bytes of a tightly packed frame.
func (g Geometry) FrameSize() int {
	return g.LumaSize() + g.ChromaSize()
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Frame is an NV12 frame: a luma plane of Width x Height bytes and a chroma
// plane of Height/2 rows, each holding Width/2 interleaved U,V pairs.
type Frame struct {
	Y  Plane
	UV Plane
}

// NewFrame checks that y and uv describe the two planes of one NV12 frame.
func NewFrame(y, uv Plane) (Frame, error) {
	if _, err := NewGeometry(y.Width, y.Height); err != nil {
		return Frame{}, err
	}
	if uv.Width != y.Width || uv.Height != y.Height/2 {
		return Frame{}, errors.Wrapf(ErrInvalidGeometry,
			"chroma plane %dx%d does not match luma plane %dx%d (want %dx%d)",
			uv.Width, uv.Height, y.Width, y.Height, y.Width, y.Height/2)
	}
	if uv.Stride < uv.Width || y.Stride < y.Width {
		return Frame{}, errors.Wrapf(ErrInvalidGeometry, "stride smaller than width")
	}
	if len(y.Data) < planeSpan(y.Stride, y.Width, y.Height) ||
		len(uv.Data) < planeSpan(uv.Stride, uv.Width, uv.Height) {
		return Frame{}, errors.Wrapf(ErrShortBuffer, "frame %dx%d", y.Width, y.Height)
	}
	return Frame{Y: y, UV: uv}, nil
}

// WrapFrame views buf as a luma plane immediately followed by a chroma
// plane, the layout camera drivers and rawvideo files use. A stride <= 0
// means rows are tightly packed.
func WrapFrame(buf []byte, g Geometry, yStride, uvStride int) (Frame, error) {
	if _, err := NewGeometry(g.Width, g.Height); err != nil {
		return Frame{}, err
	}
	if yStride <= 0 {
		yStride = g.Width
	}
	if uvStride <= 0 {
		uvStride = g.Width
	}
	lumaBytes := yStride * g.Height
	if len(buf) < lumaBytes {
		return Frame{}, errors.Wrapf(ErrShortBuffer, "frame %s luma needs %d bytes, have %d", g, lumaBytes, len(buf))
	}
	y, err := NewPlane(buf[:lumaBytes], yStride, g.Width, g.Height)
	if err != nil {
		return Frame{}, errors.Wrap(err, "luma plane")
	}
	uv, err := NewPlane(buf[lumaBytes:], uvStride, g.Width, g.ChromaRows())
	if err != nil {
		return Frame{}, errors.Wrap(err, "chroma plane")
	}
	return Frame{Y: y, UV: uv}, nil
}

// AllocFrame allocates a zeroed frame with the given strides (<= 0 means
// tightly packed). It is meant for tools and tests; the kernels never
// allocate.
func AllocFrame(g Geometry, yStride, uvStride int) (Frame, error) {
	if _, err := NewGeometry(g.Width, g.Height); err != nil {
		return Frame{}, err
	}
	if yStride <= 0 {
		yStride = g.Width
	}
	if uvStride <= 0 {
		uvStride = g.Width
	}
	buf := make([]byte, yStride*g.Height+uvStride*g.ChromaRows())
	return WrapFrame(buf, g, yStride, uvStride)
}

// Width returns the frame width in pixels.
func (f Frame) Width() int {
	return f.Y.Width
}

// Height returns the frame height in pixels.
func (f Frame) Height() int {
	return f.Y.Height
}

// Geometry returns the logical frame size.
func (f Frame) Geometry() Geometry {
	return Geometry{Width: f.Y.Width, Height: f.Y.Height}
}

// Band returns the part of the frame covered by chroma rows [start, end),
// that is luma rows [2*start, 2*end). Bands of one frame never share rows,
// so disjoint bands can be processed concurrently.
func (f Frame) Band(start, end int) Frame {
	return Frame{
		Y:  f.Y.Rows(2*start, 2*end),
		UV: f.UV.Rows(start, end),
	}
}
