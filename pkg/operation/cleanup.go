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
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/config"
	"github.com/walteh/sops-decrypt/pkg/failure"
)

// CleanupStepName labels the cleanup step in failure messages.
const CleanupStepName = "sops-decrypt post"

// 🧹 CleanupOperation removes the decrypted secrets directory
type CleanupOperation struct {
	BaseOperation
	config *config.CleanupConfig
}

var _ Operation = (*CleanupOperation)(nil)

// 🏭 NewCleanupOperation creates a cleanup operation
func NewCleanupOperation(cfg *config.CleanupConfig, opts Options) (*CleanupOperation, error) {
	if cfg == nil {
		return nil, errors.Errorf("config is required")
	}
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &CleanupOperation{BaseOperation: base, config: cfg}, nil
}

// Name returns the step label.
func (op *CleanupOperation) Name() string {
	return CleanupStepName
}

// 🏃 Execute removes DestDir and everything below it when DeleteDestDir is set
func (op *CleanupOperation) Execute(ctx context.Context) error {
	dir := op.config.DestDir

	if !op.config.DeleteDestDir {
		op.Reporter.Notice(ctx, fmt.Sprintf("Skipping deletion of %s.", dir))
		return nil
	}

	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("%w: %s does not exist", failure.ErrNotFound, dir)
		}
		return errors.Errorf("checking output directory %s: %w", dir, err)
	}

	zerolog.Ctx(ctx).Debug().Str("dest_dir", dir).Msg("removing output directory")

	if err := os.RemoveAll(dir); err != nil {
		return errors.Errorf("error removing output directory %s with %w", dir, err)
	}

	op.Reporter.Notice(ctx, fmt.Sprintf("Secrets output directory %s has been removed.", dir))
	return nil
}
