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

// Package decrypter runs the external decryption tool.
package decrypter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔐 Decrypter decrypts one encrypted file into dst
type Decrypter interface {
	// Decrypt blocks until src has been decrypted into dst or the attempt failed
	Decrypt(ctx context.Context, src, dst string) error
}

var _ Decrypter = (*Tool)(nil)

// 🛠️ Tool invokes an executable as `<name> -d <src>` and redirects its stdout to dst
type Tool struct {
	name string
}

// 🏭 NewTool creates a Tool for an executable name on PATH or a path to one
func NewTool(name string) *Tool {
	return &Tool{name: name}
}

// Name returns the configured executable.
func (t *Tool) Name() string {
	return t.name
}

// 💥 ToolError describes a failed tool invocation
type ToolError struct {
	Command  string // Command line that was run
	ExitCode int    // Exit code, -1 when the process never exited normally
	Stderr   string // Trimmed standard error of the tool
	Err      error  // Underlying error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// 🏃 Decrypt runs the tool synchronously. dst is created or truncated with
// mode 0600 and removed again when the tool fails. The parent of dst is
// never created here.
func (t *Tool) Decrypt(ctx context.Context, src, dst string) error {
	logger := zerolog.Ctx(ctx)
	command := strings.Join([]string{t.name, "-d", src}, " ")

	path, err := exec.LookPath(t.name)
	if err != nil {
		return &ToolError{Command: command, ExitCode: -1, Err: err}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return errors.Errorf("opening destination file: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "-d", src)
	cmd.Stdout = out
	cmd.Stderr = &stderr

	logger.Debug().Str("command", command).Str("destination", dst).Msg("running decryption tool")

	runErr := cmd.Run()
	closeErr := out.Close()

	if runErr != nil {
		if rmErr := os.Remove(dst); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Warn().Err(rmErr).Str("destination", dst).Msg("removing partial output")
		}
		toolErr := &ToolError{
			Command:  command,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      runErr,
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		}
		return toolErr
	}

	if closeErr != nil {
		return errors.Errorf("closing destination file: %w", closeErr)
	}

	return nil
}
