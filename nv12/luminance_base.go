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

// BaseSumLuma returns the sum of every logical sample of the plane.
// Padding is skipped. A uint64 cannot overflow for any addressable plane.
func BaseSumLuma(y Plane) uint64 {
	var sum uint64
	for r := range y.Height {
		sum += sumBytes(y.Row(r))
	}
	return sum
}

// BaseComputeLuminance returns the mean luma sample of the plane, rounded
// down. The plane must not be empty.
func BaseComputeLuminance(y Plane) uint32 {
	assertLuma(y)
	return meanLuma(BaseSumLuma(y), y)
}

func sumBytes(b []byte) uint64 {
	var sum uint64
	for _, v := range b {
		sum += uint64(v)
	}
	return sum
}

// meanLuma divides with truncation. The result is at most 255.
func meanLuma(sum uint64, y Plane) uint32 {
	return uint32(sum / uint64(y.Width*y.Height))
}
