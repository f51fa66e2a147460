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

// Package nv12 provides hot-path kernels for NV12 (semi-planar YUV 4:2:0)
// camera frames: strided copy, horizontal mirror, and mean luminance.
//
// A frame is two views over caller-owned memory: a full resolution luma
// plane (one byte per pixel) and a half resolution chroma plane of
// interleaved U,V byte pairs. Rows may be padded, so every Plane carries its
// own row stride next to its logical width.
//
// # Operations
//
//	nv12.CopyPlanes(src, dst)      // dst = src, padding untouched
//	nv12.MirrorPlanes(src, dst)    // dst = horizontal mirror of src
//	nv12.ComputeLuminance(src.Y)   // floor(sum(Y) / (width*height))
//
// The package-level functions dispatch at init time to either the packed
// kernels (eight samples per 64-bit word, unrolled to the chunk width the
// CPU favours) or the portable scalar kernels. Set NV12_NO_SIMD=1 to force
// the scalar kernels. Both are also available as Processor values so they
// can be compared directly:
//
//	nv12.Scalar.MirrorPlanes(src, a)
//	nv12.NewPacked(16).MirrorPlanes(src, b)
//
// # Preconditions
//
// The kernels do not validate their inputs and never allocate. Geometry is
// checked once, when a Plane or Frame is built with NewPlane, NewFrame or
// WrapFrame. Source and destination must not overlap, width and height must
// be even, and both frames must share the same logical size. Build with
// -tags nv12debug to turn these preconditions into panicking assertions.
//
// # Usage Example
//
//	g, _ := nv12.NewGeometry(1280, 720)
//	src, _ := nv12.WrapFrame(cameraBuf, g, 1280, 1280)
//	dst, _ := nv12.AllocFrame(g, 0, 0)
//	nv12.MirrorPlanes(src, dst)
//	brightness := nv12.ComputeLuminance(dst.Y)
package nv12
