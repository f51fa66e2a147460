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

package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v3/cpu"
)

type cpuInfo struct {
	model string
	cores int
}

// hostCPU returns the model name and logical core count of this machine.
func hostCPU(ctx context.Context) (cpuInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return cpuInfo{}, errors.Wrap(err, "failed to get cpu info")
	}
	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return cpuInfo{}, errors.Wrap(err, "failed to get cpu count")
	}
	var info cpuInfo
	if len(infos) > 0 {
		info.model = infos[0].ModelName
	}
	info.cores = cores
	return info, nil
}
