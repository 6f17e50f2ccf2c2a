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
	"context"
	"io"
	"strconv"

	"github.com/rs/zerolog"
)

// RunnerDebugEnv is set to 1 by GitHub Actions when step debug logging is on.
const RunnerDebugEnv = "RUNNER_DEBUG"

// 🪵 Options configure the process logger
type Options struct {
	Writer  io.Writer           // Where log lines go, usually stderr
	Debug   bool                // Set by --debug
	Getenv  func(string) string // Reads RUNNER_DEBUG; nil means no environment
	NoColor bool                // Disable ANSI colors in the console writer
}

// 🔍 DebugEnabled reports whether debug logging was requested by flag or by
// the runner
func DebugEnabled(flag bool, getenv func(string) string) bool {
	if flag {
		return true
	}
	if getenv == nil {
		return false
	}
	v, err := strconv.ParseBool(getenv(RunnerDebugEnv))
	return err == nil && v
}

// 🏭 New creates a console logger at the given level
func New(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		With().Timestamp().Logger().
		Level(level)
}

// 🎯 Setup builds the process logger, installs it as the zerolog default
// and returns ctx carrying it
func Setup(ctx context.Context, opts Options) context.Context {
	level := zerolog.InfoLevel
	if DebugEnabled(opts.Debug, opts.Getenv) {
		level = zerolog.DebugLevel
	}

	logger := New(opts.Writer, level, opts.NoColor)
	zerolog.DefaultContextLogger = &logger

	logger.Debug().Str("level", level.String()).Msg("logging configured")

	return logger.WithContext(ctx)
}
