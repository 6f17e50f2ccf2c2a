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

package status

import (
	"context"
	"io"
)

// 📢 Reporter publishes pipeline-visible messages for a step
type Reporter interface {
	// Notice emits an informational notice
	Notice(ctx context.Context, msg string)
	// Failure emits the single terminal failure message of a step
	Failure(ctx context.Context, msg string)
	// Summary lists the per-file outcome of a decrypt run
	Summary(ctx context.Context, results []FileResult)
}

// 📄 FileResult is the outcome of decrypting one file
type FileResult struct {
	Source      string // Encrypted file
	Destination string // Decrypted file
	Err         error  // Set when decryption failed
}

// 🏭 NewReporter picks workflow commands when running inside GitHub Actions
// and terminal output otherwise. getenv defaults to os.Getenv.
func NewReporter(out io.Writer, getenv func(string) string) Reporter {
	if IsGitHubActions(getenv) {
		return NewGitHubReporter(out)
	}
	return NewTerminalReporter(out)
}
