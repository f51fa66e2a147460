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

// BaseMirrorPlanes writes the horizontal mirror of src into dst.
//
// Luma samples are reversed one by one. Chroma is reversed in units of one
// U,V pair, so U stays before V in every pair of the output. src and dst
// must be distinct buffers.
func BaseMirrorPlanes(src, dst Frame) {
	assertMirror(src, dst)
	for y := range src.Y.Height {
		mirrorLumaTail(src.Y.Row(y), dst.Y.Row(y), 0)
	}
	for y := range src.UV.Height {
		mirrorChromaTail(src.UV.Row(y), dst.UV.Row(y), 0)
	}
}

// mirrorLumaTail mirrors samples s[from:] into d, where len(s) == len(d).
func mirrorLumaTail(s, d []byte, from int) {
	last := len(s) - 1
	if last < 0 {
		return
	}
	_ = d[last]
	for j := from; j <= last; j++ {
		d[last-j] = s[j]
	}
}

// mirrorChromaTail mirrors the U,V pairs of s starting at byte offset from
// (which must be even) into d.
func mirrorChromaTail(s, d []byte, from int) {
	w := len(s) &^ 1
	if w == 0 {
		return
	}
	_ = d[w-1]
	for j := from; j+1 < w; j += 2 {
		k := w - 2 - j
		d[k] = s[j]
		d[k+1] = s[j+1]
	}
}
