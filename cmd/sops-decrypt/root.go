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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/walteh/sops-decrypt/cmd/sops-decrypt/commands"
	"github.com/walteh/sops-decrypt/cmd/sops-decrypt/opts"
	"github.com/walteh/sops-decrypt/pkg/log"
)

// newRootCmd creates the root command with its sub commands
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sops-decrypt",
		Short: "Decrypt SOPS encrypted secrets for a pipeline step",
		Long: `sops-decrypt decrypts every matching file of a source directory into a
destination directory with an external tool (sops by default), and removes
that directory again in a later cleanup step.

Inputs are read from flags, then GitHub Actions inputs (INPUT_<NAME>), then
the optional config file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), o))
		},
	}

	cmd.SetOut(o.Stdout)
	cmd.SetErr(o.Stderr)

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewDecryptCmd(o),
		commands.NewCleanupCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and the runner environment
func setupLogging(ctx context.Context, o *opts.RootOpts) context.Context {
	return log.Setup(ctx, log.Options{
		Writer:  o.Stderr,
		Debug:   o.Debug,
		Getenv:  o.Getenv,
		NoColor: color.NoColor,
	})
}
