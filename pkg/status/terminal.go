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
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🖥️ TerminalReporter renders messages for humans running the binary locally
type TerminalReporter struct {
	out io.Writer
	mu  sync.Mutex
}

var _ Reporter = (*TerminalReporter)(nil)

// 🏭 NewTerminalReporter creates a reporter printing to out
func NewTerminalReporter(out io.Writer) *TerminalReporter {
	return &TerminalReporter{out: out}
}

// Notice prints an info line
func (r *TerminalReporter) Notice(ctx context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔓"}).WithWriter(r.out).Println(msg)
	zerolog.Ctx(ctx).Debug().Msg(msg)
}

// Failure prints an error line
func (r *TerminalReporter) Failure(ctx context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(r.out).Println(msg)
	zerolog.Ctx(ctx).Debug().Msg(msg)
}

// Summary prints one colored line per file
func (r *TerminalReporter) Summary(ctx context.Context, results []FileResult) {
	if len(results) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out)
	for _, result := range results {
		fmt.Fprintln(r.out, FormatFileResult(result, false))
	}
	fmt.Fprintln(r.out)
}
