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

// Processor is one implementation of the frame kernels. All implementations
// produce identical output for identical input; they differ only in speed.
type Processor interface {
	// CopyPlanes copies the logical region of src into dst.
	CopyPlanes(src, dst Frame)

	// MirrorPlanes writes the horizontal mirror of src into dst.
	MirrorPlanes(src, dst Frame)

	// SumLuma returns the sum of all logical samples of y.
	SumLuma(y Plane) uint64

	// ComputeLuminance returns floor(SumLuma(y) / (y.Width*y.Height)).
	ComputeLuminance(y Plane) uint32

	// Name identifies the implementation, e.g. "scalar" or "packed16".
	Name() string
}

type scalar struct{}

// Scalar is the portable byte-at-a-time Processor. It is the reference the
// packed kernels are tested against.
var Scalar Processor = scalar{}

func (scalar) CopyPlanes(src, dst Frame)       { BaseCopyPlanes(src, dst) }
func (scalar) MirrorPlanes(src, dst Frame)     { BaseMirrorPlanes(src, dst) }
func (scalar) SumLuma(y Plane) uint64          { return BaseSumLuma(y) }
func (scalar) ComputeLuminance(y Plane) uint32 { return BaseComputeLuminance(y) }
func (scalar) Name() string                    { return "scalar" }
