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

package opts

import (
	"context"
	"io"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/config"
	"github.com/walteh/sops-decrypt/pkg/status"
)

// 🎯 RootOpts contains the dependencies shared by all commands
type RootOpts struct {
	// ConfigFile is the optional config file given with --config
	ConfigFile string
	// Debug is set by --debug
	Debug bool
	// Stdout receives notices and workflow commands
	Stdout io.Writer
	// Stderr receives log lines
	Stderr io.Writer
	// Getenv reads the process environment
	Getenv func(string) string
	// Reporter prints notices and the step failure
	Reporter status.Reporter
}

// 🔀 Resolver loads the config file, if any, and returns an input resolver
// with the given flag overrides on top
func (o *RootOpts) Resolver(ctx context.Context, overrides map[string]string) (*config.Resolver, error) {
	var file *config.Config
	if o.ConfigFile != "" {
		cfg, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		file = cfg
	}

	resolver, err := config.NewResolver(file, overrides)
	if err != nil {
		return nil, errors.Errorf("creating resolver: %w", err)
	}
	if o.Getenv != nil {
		resolver.Getenv = o.Getenv
	}

	return resolver, nil
}
