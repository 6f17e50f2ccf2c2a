// Copyright 2025 walteh LLC
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

package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name string
		flag bool
		env  map[string]string
		want bool
	}{
		{name: "flag", flag: true, want: true},
		{name: "runner_debug", env: map[string]string{RunnerDebugEnv: "1"}, want: true},
		{name: "runner_debug_off", env: map[string]string{RunnerDebugEnv: "0"}, want: false},
		{name: "runner_debug_garbage", env: map[string]string{RunnerDebugEnv: "yes please"}, want: false},
		{name: "nothing", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			assert.Equal(t, tt.want, DebugEnabled(tt.flag, getenv))
		})
	}

	assert.False(t, DebugEnabled(false, nil), "nil getenv means no environment")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.InfoLevel, true)

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "a.enc").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "file=a.enc")
}

func TestSetup(t *testing.T) {
	previous := zerolog.DefaultContextLogger
	t.Cleanup(func() { zerolog.DefaultContextLogger = previous })

	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
	}{
		{name: "info", opts: Options{NoColor: true}},
		{name: "debug_flag", opts: Options{Debug: true, NoColor: true}, wantDebug: true},
		{
			name: "runner_debug",
			opts: Options{
				NoColor: true,
				Getenv:  func(k string) string { return map[string]string{RunnerDebugEnv: "1"}[k] },
			},
			wantDebug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Writer = &buf

			ctx := Setup(context.Background(), tt.opts)
			zerolog.Ctx(ctx).Debug().Msg("probe")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("probe")))
			assert.NotNil(t, zerolog.DefaultContextLogger)
		})
	}
}
