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

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/walteh/sops-decrypt/cmd/sops-decrypt/commands"
	"github.com/walteh/sops-decrypt/cmd/sops-decrypt/opts"
	"github.com/walteh/sops-decrypt/pkg/operation"
	"github.com/walteh/sops-decrypt/pkg/status"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// 🏃 run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	o := &opts.RootOpts{
		Stdout:   stdout,
		Stderr:   stderr,
		Getenv:   getenv,
		Reporter: status.NewReporter(stdout, getenv),
	}

	rootCmd := newRootCmd(o)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// step failures were already printed by the reporter
		if !commands.IsReported(err) {
			o.Reporter.Failure(ctx, operation.FailureMessage(rootCmd.Name(), err))
		}
		return 1
	}

	return 0
}
