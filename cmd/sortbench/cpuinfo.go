// Copyright 2025 go-netsort Authors
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
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

// cpuFields describes the host for benchmark logs.
func cpuFields() []zap.Field {
	fields := []zap.Field{
		zap.String("arch", runtime.GOARCH),
		zap.Int("cpus", runtime.NumCPU()),
		zap.String("go", runtime.Version()),
	}

	switch runtime.GOARCH {
	case "amd64":
		fields = append(fields,
			zap.Bool("sse41", cpu.X86.HasSSE41),
			zap.Bool("avx2", cpu.X86.HasAVX2),
			zap.Bool("avx512f", cpu.X86.HasAVX512F),
			zap.Bool("bmi2", cpu.X86.HasBMI2),
		)
	case "arm64":
		fields = append(fields,
			zap.Bool("asimd", cpu.ARM64.HasASIMD),
			zap.Bool("sve", cpu.ARM64.HasSVE),
		)
	}
	return fields
}
