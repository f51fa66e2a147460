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

// Command nv12tool runs the nv12 kernels over raw NV12 files and synthetic
// frames.
//
// Usage:
//
//	nv12tool info
//	nv12tool mirror --width 1280 --height 720 --in cam.nv12 --out preview.nv12
//	nv12tool luma --width 1280 --height 720 --in cam.nv12
//	nv12tool bench --width 1920 --height 1080 --frames 300 --workers 4 -v
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
