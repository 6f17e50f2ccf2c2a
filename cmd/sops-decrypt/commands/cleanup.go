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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/cmd/sops-decrypt/opts"
	"github.com/walteh/sops-decrypt/pkg/config"
	"github.com/walteh/sops-decrypt/pkg/operation"
)

// NewCleanupCmd creates the cleanup command
func NewCleanupCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cleanup",
		Aliases: []string{"post"},
		Short:   "Remove the decrypted secrets directory",
		Long: `Cleanup removes the destination directory and everything below it when
--delete-dest-dir is set. Without it the directory is left in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "cleanup").Logger().WithContext(cmd.Context())

			resolver, err := o.Resolver(ctx, changedInputs(cmd, config.InputDestDir, config.InputDeleteDestDir))
			if err != nil {
				return fail(ctx, o, operation.CleanupStepName, err)
			}

			cfg, err := resolver.Cleanup()
			if err != nil {
				return fail(ctx, o, operation.CleanupStepName, err)
			}

			op, err := operation.NewCleanupOperation(cfg, operation.Options{Reporter: o.Reporter})
			if err != nil {
				return errors.Errorf("creating cleanup operation: %w", err)
			}

			return run(ctx, o, op)
		},
	}

	cmd.Flags().String(flagName(config.InputDestDir), "", "directory to remove")
	cmd.Flags().Bool(flagName(config.InputDeleteDestDir), false, "remove the directory")

	return cmd
}
