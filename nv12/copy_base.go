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

// BaseCopyPlanes copies the logical region of every luma row and every
// chroma row of src into dst. Strides may differ; padding bytes in dst are
// left as they are. src and dst must not overlap.
//
// Rows are moved with the built-in copy, which lowers to the runtime's
// vectorized memmove on every architecture, so this is also the kernel the
// packed processor uses.
func BaseCopyPlanes(src, dst Frame) {
	assertCopy(src, dst)
	copyPlane(src.Y, dst.Y)
	copyPlane(src.UV, dst.UV)
}

func copyPlane(src, dst Plane) {
	w := src.Width
	so, do := 0, 0
	for range src.Height {
		copy(dst.Data[do:do+w], src.Data[so:so+w])
		so += src.Stride
		do += dst.Stride
	}
}
