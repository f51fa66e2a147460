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

func TestComputeLuminance_Constant(t *testing.T) {
	for _, proc := range testProcessors() {
		for _, v := range []byte{0, 1, 16, 127, 128, 235, 254, 255} {
			for _, w := range []int{1, 7, 8, 17, 64, 1024} {
				t.Run(fmt.Sprintf("%s/v%d/w%d", proc.Name(), v, w), func(t *testing.T) {
					p := newTestPlane(t, w, 5, 3)
					for y := range p.Height {
						fillBytes(p.Row(y), v)
					}
					if got := proc.ComputeLuminance(p); got != uint32(v) {
						t.Errorf("ComputeLuminance: got %d, want %d", got, v)
					}
				})
			}
		}
	}
}

// TestComputeLuminance_PaddedRows is the 4x4 stride-6 scenario: padding of
// 0xFF must not leak into the mean.
func TestComputeLuminance_PaddedRows(t *testing.T) {
	data := make([]byte, 6*4)
	fillBytes(data, 0xFF)
	p, err := NewPlane(data, 6, 4, 4)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	for y := range 4 {
		fillBytes(p.Row(y), byte(y))
	}

	for _, proc := range testProcessors() {
		if got := proc.ComputeLuminance(p); got != 1 {
			t.Errorf("%s: ComputeLuminance = %d, want 1", proc.Name(), got)
		}
		if got := proc.SumLuma(p); got != 4*(0+1+2+3) {
			t.Errorf("%s: SumLuma = %d, want 24", proc.Name(), got)
		}
	}
}

func TestComputeLuminance_Truncates(t *testing.T) {
	tests := []struct {
		name    string
		samples []byte
		want    uint32
	}{
		{"below_one", []byte{0, 0, 0, 1}, 0},
		{"just_below_two", []byte{1, 2, 2, 2}, 1},
		{"top", []byte{254, 255, 255, 255}, 254},
		{"exact", []byte{10, 20, 30, 40}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlane(tt.samples, 2, 2, 2)
			if err != nil {
				t.Fatalf("NewPlane: %v", err)
			}
			for _, proc := range testProcessors() {
				if got := proc.ComputeLuminance(p); got != tt.want {
					t.Errorf("%s: got %d, want %d", proc.Name(), got, tt.want)
				}
			}
		})
	}
}

func TestComputeLuminance_Bounds(t *testing.T) {
	for seed := range uint64(20) {
		w := 1 + int(seed*37%300)
		p := newTestPlane(t, w, 9, int(seed%5))
		fillRandom(p, seed)
		for _, proc := range testProcessors() {
			if got := proc.ComputeLuminance(p); got > 255 {
				t.Errorf("%s w%d: ComputeLuminance = %d, want <= 255", proc.Name(), w, got)
			}
		}
	}
}

// TestSumLuma_WideBrightRow drives the packed accumulator through several
// 16-bit lane flushes within one row.
func TestSumLuma_WideBrightRow(t *testing.T) {
	const w = 8192 + 13
	p := newTestPlane(t, w, 3, 0)
	for y := range p.Height {
		fillBytes(p.Row(y), 255)
	}
	want := uint64(255 * w * 3)
	for _, proc := range testProcessors() {
		if got := proc.SumLuma(p); got != want {
			t.Errorf("%s: SumLuma = %d, want %d", proc.Name(), got, want)
		}
		if got := proc.ComputeLuminance(p); got != 255 {
			t.Errorf("%s: ComputeLuminance = %d, want 255", proc.Name(), got)
		}
	}
}

// TestSumLuma_4K checks that the accumulator does not wrap for a full
// 3840x2160 plane of maximum brightness.
func TestSumLuma_4K(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a 4K plane")
	}
	p := newTestPlane(t, 3840, 2160, 0)
	fillBytes(p.Data, 255)
	want := uint64(255) * 3840 * 2160
	for _, proc := range testProcessors() {
		if got := proc.SumLuma(p); got != want {
			t.Errorf("%s: SumLuma = %d, want %d", proc.Name(), got, want)
		}
	}
}

func TestComputeLuminance_NoAllocs(t *testing.T) {
	if DebugAssertions {
		t.Skip("assertions box their arguments")
	}
	p := newTestPlane(t, 320, 240, 8)
	fillRandom(p, 1)
	allocs := testing.AllocsPerRun(10, func() {
		_ = ComputeLuminance(p)
	})
	if allocs != 0 {
		t.Errorf("ComputeLuminance allocated %v times per run, want 0", allocs)
	}
}
