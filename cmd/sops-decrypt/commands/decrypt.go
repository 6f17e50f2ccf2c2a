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
	"github.com/walteh/sops-decrypt/pkg/decrypter"
	"github.com/walteh/sops-decrypt/pkg/operation"
)

var decryptInputs = []string{
	config.InputSourceDir,
	config.InputDestDir,
	config.InputFilePattern,
	config.InputPatternSyntax,
	config.InputCreateDestDir,
	config.InputTool,
}

// NewDecryptCmd creates the decrypt command
func NewDecryptCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt matching files into the destination directory",
		Long: `Decrypt runs "<tool> -d <file>" for every file of the source directory
whose name matches the file pattern and writes the output to the file of the
same name in the destination directory.
It will:
1. Resolve and validate the source and destination directories
2. Create the destination directory when --create-dest-dir is set
3. Decrypt the matching files one at a time, stopping at the first failure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "decrypt").Logger().WithContext(cmd.Context())

			resolver, err := o.Resolver(ctx, changedInputs(cmd, decryptInputs...))
			if err != nil {
				return fail(ctx, o, operation.DecryptStepName, err)
			}

			cfg, err := resolver.Decrypt()
			if err != nil {
				return fail(ctx, o, operation.DecryptStepName, err)
			}

			tool := decrypter.NewTool(cfg.Tool)

			zerolog.Ctx(ctx).Debug().
				Str("config", cfg.String()).
				Str("tool", tool.Name()).
				Msg("resolved decrypt configuration")

			op, err := operation.NewDecryptOperation(cfg, operation.Options{
				Reporter:  o.Reporter,
				Decrypter: tool,
			})
			if err != nil {
				return errors.Errorf("creating decrypt operation: %w", err)
			}

			return run(ctx, o, op)
		},
	}

	cmd.Flags().String(flagName(config.InputSourceDir), "", "directory holding the encrypted files (default: working directory)")
	cmd.Flags().String(flagName(config.InputDestDir), "", "directory the decrypted files are written to")
	cmd.Flags().String(flagName(config.InputFilePattern), "", "pattern selecting files by base name (default: all files)")
	cmd.Flags().String(flagName(config.InputPatternSyntax), string(config.PatternRegex), "pattern syntax, regex or glob")
	cmd.Flags().Bool(flagName(config.InputCreateDestDir), false, "create the destination directory when it is missing")
	cmd.Flags().String(flagName(config.InputTool), config.DefaultTool, "decryption tool invoked as <tool> -d <file>")

	return cmd
}
