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

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the constructors. Kernels never return errors;
// wrap-aware callers should test with errors.Is.
var (
	// ErrInvalidGeometry reports a non-positive size, a stride smaller than
	// the row, or planes that do not describe the same frame.
	ErrInvalidGeometry = errors.New("nv12: invalid geometry")

	// ErrOddDimension reports an odd frame width or height.
	ErrOddDimension = errors.New("nv12: odd frame dimension")

	// ErrShortBuffer reports a backing slice too small for its plane.
	ErrShortBuffer = errors.New("nv12: buffer too short")
)
