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

// Package rawio reads and writes raw NV12 streams: tightly packed frames of
// a luma plane followed by a chroma plane, w*h*3/2 bytes each, as produced
// by ffmpeg -f rawvideo -pix_fmt nv12.
package rawio

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/ajroetker/go-nv12/nv12"
)

// Reader reads frames from a raw NV12 stream.
type Reader struct {
	r      *bufio.Reader
	g      nv12.Geometry
	frames int
}

// NewReader returns a Reader for frames of geometry g.
func NewReader(r io.Reader, g nv12.Geometry) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, g.FrameSize()), g: g}
}

// Frames returns the number of frames read so far.
func (rd *Reader) Frames() int {
	return rd.frames
}

// ReadFrame fills dst, which may be strided, with the next frame. It returns
// io.EOF when the stream ends on a frame boundary and wraps
// io.ErrUnexpectedEOF when it ends inside a frame.
func (rd *Reader) ReadFrame(dst nv12.Frame) error {
	if err := checkGeometry(rd.g, dst); err != nil {
		return err
	}
	for y := 0; y < dst.Y.Height; y++ {
		n, err := io.ReadFull(rd.r, dst.Y.Row(y))
		if err != nil {
			if y == 0 && n == 0 && err == io.EOF {
				return io.EOF
			}
			return rd.truncated(err)
		}
	}
	for y := 0; y < dst.UV.Height; y++ {
		if _, err := io.ReadFull(rd.r, dst.UV.Row(y)); err != nil {
			return rd.truncated(err)
		}
	}
	rd.frames++
	return nil
}

func (rd *Reader) truncated(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return errors.Wrapf(err, "read frame %d (%s)", rd.frames, rd.g)
}

// Writer writes frames as a raw NV12 stream.
type Writer struct {
	w      *bufio.Writer
	g      nv12.Geometry
	frames int
}

// NewWriter returns a Writer for frames of geometry g. Call Flush when done.
func NewWriter(w io.Writer, g nv12.Geometry) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, g.FrameSize()), g: g}
}

// Frames returns the number of frames written so far.
func (wr *Writer) Frames() int {
	return wr.frames
}

// WriteFrame writes the logical region of src; row padding is dropped.
func (wr *Writer) WriteFrame(src nv12.Frame) error {
	if err := checkGeometry(wr.g, src); err != nil {
		return err
	}
	for _, p := range []nv12.Plane{src.Y, src.UV} {
		for y := 0; y < p.Height; y++ {
			if _, err := wr.w.Write(p.Row(y)); err != nil {
				return errors.Wrapf(err, "write frame %d", wr.frames)
			}
		}
	}
	wr.frames++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (wr *Writer) Flush() error {
	return errors.Wrap(wr.w.Flush(), "flush")
}

func checkGeometry(g nv12.Geometry, f nv12.Frame) error {
	if f.Geometry() != g || f.UV.Height != g.ChromaRows() || f.UV.Width != g.Width {
		return errors.Wrapf(nv12.ErrInvalidGeometry, "frame is %s, stream is %s", f.Geometry(), g)
	}
	return nil
}

// SynthFrame fills f with a deterministic moving test pattern: a diagonal
// luma ramp and a chroma gradient, both shifted by seed.
func SynthFrame(f nv12.Frame, seed int) {
	for y := 0; y < f.Y.Height; y++ {
		row := f.Y.Row(y)
		for x := range row {
			row[x] = byte(x + 2*y + 3*seed)
		}
	}
	for y := 0; y < f.UV.Height; y++ {
		row := f.UV.Row(y)
		for x := 0; x+1 < len(row); x += 2 {
			row[x] = byte(64 + x/2 + seed)    // U
			row[x+1] = byte(192 - 3*y + seed) // V
		}
	}
}
