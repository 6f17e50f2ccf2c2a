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

package operation

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/failure"
	"github.com/walteh/sops-decrypt/pkg/status"
)

// 🏃 OperationRunner executes operations and turns their errors into the
// single failure message a pipeline step reports
type OperationRunner struct {
	reporter status.Reporter
}

// 🏗️ NewRunner creates a new runner
func NewRunner(reporter status.Reporter) *OperationRunner {
	return &OperationRunner{
		reporter: reporter,
	}
}

// 🏃 Run executes an operation synchronously. A failing operation is
// reported once and its error is returned for the exit code.
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	logger := zerolog.Ctx(ctx).With().Str("operation", op.Name()).Logger()
	logger.Debug().Msg("starting operation")
	start := time.Now()

	if err := op.Execute(ctx); err != nil {
		r.reporter.Failure(ctx, FailureMessage(op.Name(), err))
		event := logger.Debug().Err(err).Dur("elapsed", time.Since(start))
		if kind := failure.Kind(err); kind != nil {
			event = event.Str("kind", kind.Error())
		}
		event.Msg("operation failed")
		return errors.Errorf("executing operation: %w", err)
	}

	logger.Debug().Dur("elapsed", time.Since(start)).Msg("operation completed")
	return nil
}

// FailureMessage renders the terminal failure line of a step.
func FailureMessage(step string, err error) string {
	return fmt.Sprintf("%s failed with: %s", step, err.Error())
}
