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
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// IsGitHubActions reports whether the process runs as a GitHub Actions step.
func IsGitHubActions(getenv func(string) string) bool {
	if getenv == nil {
		getenv = os.Getenv
	}
	return getenv("GITHUB_ACTIONS") == "true"
}

// 🐙 GitHubReporter writes GitHub Actions workflow commands
type GitHubReporter struct {
	out io.Writer
	mu  sync.Mutex
}

var _ Reporter = (*GitHubReporter)(nil)

// 🏭 NewGitHubReporter creates a reporter writing workflow commands to out
func NewGitHubReporter(out io.Writer) *GitHubReporter {
	return &GitHubReporter{out: out}
}

// Notice emits ::notice::
func (r *GitHubReporter) Notice(ctx context.Context, msg string) {
	r.command("notice", msg)
	zerolog.Ctx(ctx).Debug().Str("command", "notice").Msg(msg)
}

// Failure emits ::error::
func (r *GitHubReporter) Failure(ctx context.Context, msg string) {
	r.command("error", msg)
	zerolog.Ctx(ctx).Debug().Str("command", "error").Msg(msg)
}

// Summary prints the results inside a collapsed log group
func (r *GitHubReporter) Summary(ctx context.Context, results []FileResult) {
	if len(results) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "::group::%s\n", EscapeData(fmt.Sprintf("Decrypted %d file(s)", countOK(results))))
	for _, result := range results {
		fmt.Fprintln(r.out, FormatFileResult(result, true))
	}
	fmt.Fprintln(r.out, "::endgroup::")
}

func (r *GitHubReporter) command(name, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "::%s::%s\n", name, EscapeData(msg))
}

// 🔡 EscapeData escapes a workflow command message
func EscapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

func countOK(results []FileResult) int {
	n := 0
	for _, result := range results {
		if result.Err == nil {
			n++
		}
	}
	return n
}
