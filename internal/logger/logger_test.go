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

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output = &buf
	t.Cleanup(func() {
		output = os.Stderr
		JSONOutput = false
		Logger = zap.NewNop().Sugar()
	})
	return &buf
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{"JSON output mode", true},
		{"Console output mode", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)

			if err := Initialize(tt.jsonOutput, VerbosityInfo); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			Infow("frame copied", FieldFrame, 3)
			Debugw("hidden at info level")
			Cleanup()

			out := buf.String()
			if !strings.Contains(out, "frame copied") {
				t.Errorf("output %q missing info message", out)
			}
			if strings.Contains(out, "hidden at info level") {
				t.Errorf("output %q contains debug message at info level", out)
			}
			if tt.jsonOutput {
				var entry map[string]interface{}
				if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
					t.Fatalf("JSON output is not valid JSON: %v", err)
				}
				if entry[FieldFrame] != float64(3) {
					t.Errorf("frame field = %v, want 3", entry[FieldFrame])
				}
			}
		})
	}
}

func TestNamed(t *testing.T) {
	buf := captureOutput(t)
	if err := Initialize(true, VerbosityDebug); err != nil {
		t.Fatal(err)
	}

	Named("profiler").Debug("frame event")
	Cleanup()

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry[FieldComponent] != "profiler" {
		t.Errorf("component = %v, want profiler", entry[FieldComponent])
	}
}

func TestNopBeforeInitialize(t *testing.T) {
	// Must not panic.
	Infow("before init")
	Warnw("before init")
	Errorw("before init")
	Debugw("before init")
	Cleanup()
}
