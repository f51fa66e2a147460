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

//go:build nv12debug

package nv12

import "github.com/cockroachdb/errors"

// DebugAssertions reports whether kernel preconditions are checked.
const DebugAssertions = true

func assertCopy(src, dst Frame) {
	assertPair("CopyPlanes", src, dst)
}

func assertMirror(src, dst Frame) {
	assertPair("MirrorPlanes", src, dst)
}

func assertLuma(y Plane) {
	if y.Width <= 0 || y.Height <= 0 {
		panic(errors.AssertionFailedf("nv12.ComputeLuminance: empty plane %dx%d", y.Width, y.Height))
	}
	assertPlane("ComputeLuminance", "luma", y)
}

func assertPair(op string, src, dst Frame) {
	if src.Y.Width != dst.Y.Width || src.Y.Height != dst.Y.Height ||
		src.UV.Width != dst.UV.Width || src.UV.Height != dst.UV.Height {
		panic(errors.AssertionFailedf("nv12.%s: src %s and dst %s differ in size",
			op, src.Geometry(), dst.Geometry()))
	}
	if src.Y.Width%2 != 0 || src.Y.Height%2 != 0 || src.UV.Height*2 != src.Y.Height {
		panic(errors.AssertionFailedf("nv12.%s: frame %s is not a 4:2:0 frame with even dimensions",
			op, src.Geometry()))
	}
	assertPlane(op, "src luma", src.Y)
	assertPlane(op, "src chroma", src.UV)
	assertPlane(op, "dst luma", dst.Y)
	assertPlane(op, "dst chroma", dst.UV)
	if src.Y.Overlaps(dst.Y) || src.Y.Overlaps(dst.UV) ||
		src.UV.Overlaps(dst.Y) || src.UV.Overlaps(dst.UV) {
		panic(errors.AssertionFailedf("nv12.%s: source and destination overlap", op))
	}
}

func assertPlane(op, name string, p Plane) {
	if p.Stride < p.Width {
		panic(errors.AssertionFailedf("nv12.%s: %s stride %d < width %d", op, name, p.Stride, p.Width))
	}
	if need := planeSpan(p.Stride, p.Width, p.Height); len(p.Data) < need {
		panic(errors.AssertionFailedf("nv12.%s: %s needs %d bytes, has %d", op, name, need, len(p.Data)))
	}
}
