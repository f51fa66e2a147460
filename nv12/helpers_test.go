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
	"math/rand/v2"
	"testing"
)

// sentinel marks padding bytes so tests can tell whether a kernel wrote them.
const sentinel = 0xA5

// testProcessors are every Processor the property tests run against. Scalar
// comes first: it is the reference.
func testProcessors() []Processor {
	return []Processor{
		Scalar,
		NewPacked(8),
		NewPacked(16),
		NewPacked(32),
		NewPacked(64),
		Current(),
	}
}

// newTestFrame allocates a w x h frame whose rows carry yPad / uvPad bytes
// of padding, with every byte (logical and padding) set to sentinel.
func newTestFrame(tb testing.TB, w, h, yPad, uvPad int) Frame {
	tb.Helper()
	g, err := NewGeometry(w, h)
	if err != nil {
		tb.Fatalf("NewGeometry(%d, %d): %v", w, h, err)
	}
	f, err := AllocFrame(g, w+yPad, w+uvPad)
	if err != nil {
		tb.Fatalf("AllocFrame(%s): %v", g, err)
	}
	fillBytes(f.Y.Data, sentinel)
	fillBytes(f.UV.Data, sentinel)
	return f
}

// newTestPlane allocates a single plane of any width, padded like
// newTestFrame.
func newTestPlane(tb testing.TB, w, h, pad int) Plane {
	tb.Helper()
	stride := w + pad
	data := make([]byte, stride*h)
	fillBytes(data, sentinel)
	p, err := NewPlane(data, stride, w, h)
	if err != nil {
		tb.Fatalf("NewPlane(%d, %d, %d): %v", stride, w, h, err)
	}
	return p
}

func fillBytes(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

// fillRandom fills the logical region of p with deterministic noise.
func fillRandom(p Plane, seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	for y := range p.Height {
		row := p.Row(y)
		for x := range row {
			row[x] = byte(r.UintN(256))
		}
	}
}

func fillFrameRandom(f Frame, seed uint64) {
	fillRandom(f.Y, seed)
	fillRandom(f.UV, seed+1)
}

// assertPadding fails if any padding byte of p differs from want.
func assertPadding(tb testing.TB, name string, p Plane, want byte) {
	tb.Helper()
	for y := range p.Height {
		for x := p.Width; x < p.Stride; x++ {
			i := y*p.Stride + x
			if i >= len(p.Data) {
				break
			}
			if p.Data[i] != want {
				tb.Fatalf("%s padding row %d col %d: got %#x, want %#x", name, y, x, p.Data[i], want)
			}
		}
	}
}

// assertPlanesEqual compares the logical regions of two planes.
func assertPlanesEqual(tb testing.TB, name string, got, want Plane) {
	tb.Helper()
	if got.Width != want.Width || got.Height != want.Height {
		tb.Fatalf("%s size: got %dx%d, want %dx%d", name, got.Width, got.Height, want.Width, want.Height)
	}
	for y := range want.Height {
		g, w := got.Row(y), want.Row(y)
		for x := range w {
			if g[x] != w[x] {
				tb.Fatalf("%s[%d][%d]: got %d, want %d", name, y, x, g[x], w[x])
			}
		}
	}
}

func assertFramesEqual(tb testing.TB, got, want Frame) {
	tb.Helper()
	assertPlanesEqual(tb, "Y", got.Y, want.Y)
	assertPlanesEqual(tb, "UV", got.UV, want.UV)
}
