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
	"testing"
)

var copyCases = []struct {
	name           string
	w, h           int
	srcYPad, srcUV int
	dstYPad, dstUV int
}{
	{"tight", 16, 8, 0, 0, 0, 0},
	{"smallest", 2, 2, 0, 0, 0, 0},
	{"src_padded", 18, 6, 14, 6, 0, 0},
	{"dst_padded", 18, 6, 0, 0, 14, 6},
	{"both_padded_differently", 30, 10, 2, 34, 64, 1},
	{"vga", 640, 480, 128, 128, 0, 0},
}

func TestCopyPlanes(t *testing.T) {
	for _, proc := range testProcessors() {
		for _, tc := range copyCases {
			t.Run(fmt.Sprintf("%s/%s", proc.Name(), tc.name), func(t *testing.T) {
				src := newTestFrame(t, tc.w, tc.h, tc.srcYPad, tc.srcUV)
				dst := newTestFrame(t, tc.w, tc.h, tc.dstYPad, tc.dstUV)
				fillFrameRandom(src, uint64(tc.w*tc.h))

				// Destination padding gets a different value than the
				// source padding, so a stray full-stride copy shows up.
				fillBytes(dst.Y.Data, 0x11)
				fillBytes(dst.UV.Data, 0x11)

				proc.CopyPlanes(src, dst)

				assertFramesEqual(t, dst, src)
				assertPadding(t, "dst Y", dst.Y, 0x11)
				assertPadding(t, "dst UV", dst.UV, 0x11)
				assertPadding(t, "src Y", src.Y, sentinel)
			})
		}
	}
}

// TestCopyPlanes_Idempotent copies src -> a -> b across three different
// stride layouts; b must equal src.
func TestCopyPlanes_Idempotent(t *testing.T) {
	src := newTestFrame(t, 34, 12, 6, 0)
	a := newTestFrame(t, 34, 12, 0, 30)
	b := newTestFrame(t, 34, 12, 2, 2)
	fillFrameRandom(src, 99)

	CopyPlanes(src, a)
	CopyPlanes(a, b)

	assertFramesEqual(t, b, src)
}

func TestCopyPlanes_ChromaRowCount(t *testing.T) {
	src := newTestFrame(t, 4, 4, 0, 0)
	fillFrameRandom(src, 5)

	// dst chroma plane has room for an extra row that must stay untouched.
	g := Geometry{Width: 4, Height: 4}
	buf := make([]byte, g.FrameSize()+4)
	fillBytes(buf, sentinel)
	dst, err := WrapFrame(buf, g, 0, 0)
	if err != nil {
		t.Fatalf("WrapFrame: %v", err)
	}

	CopyPlanes(src, dst)

	assertFramesEqual(t, dst, src)
	for i, v := range buf[g.FrameSize():] {
		if v != sentinel {
			t.Errorf("byte %d past the chroma plane: got %#x, want %#x", g.FrameSize()+i, v, sentinel)
		}
	}
}

func TestCopyPlanes_NoAllocs(t *testing.T) {
	if DebugAssertions {
		t.Skip("assertions box their arguments")
	}
	src := newTestFrame(t, 320, 240, 16, 16)
	dst := newTestFrame(t, 320, 240, 0, 0)
	allocs := testing.AllocsPerRun(10, func() {
		CopyPlanes(src, dst)
	})
	if allocs != 0 {
		t.Errorf("CopyPlanes allocated %v times per run, want 0", allocs)
	}
}
