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

package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/cmd/sops-decrypt/opts"
	"github.com/walteh/sops-decrypt/pkg/operation"
)

// reportedError marks an error the user has already seen as a step failure
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// IsReported reports whether err was already printed as a step failure.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// flagName maps an input name to its flag, source_dir to --source-dir
func flagName(input string) string {
	return strings.ReplaceAll(input, "_", "-")
}

// changedInputs collects the inputs that were set explicitly on the command line
func changedInputs(cmd *cobra.Command, inputs ...string) map[string]string {
	out := make(map[string]string)
	for _, input := range inputs {
		if f := cmd.Flags().Lookup(flagName(input)); f != nil && f.Changed {
			out[input] = f.Value.String()
		}
	}
	return out
}

// fail reports err as the failure of step and marks it as reported
func fail(ctx context.Context, o *opts.RootOpts, step string, err error) error {
	o.Reporter.Failure(ctx, operation.FailureMessage(step, err))
	return reportedError{err}
}

// run executes op, whose failures the runner reports itself
func run(ctx context.Context, o *opts.RootOpts, op operation.Operation) error {
	if err := operation.NewRunner(o.Reporter).Run(ctx, op); err != nil {
		return reportedError{err}
	}
	return nil
}
