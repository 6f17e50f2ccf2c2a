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

package config

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/failure"
)

// Input names shared by flags, action inputs and config files.
const (
	InputSourceDir     = "source_dir"
	InputDestDir       = "dest_dir"
	InputFilePattern   = "file_pattern"
	InputPatternSyntax = "pattern_syntax"
	InputCreateDestDir = "create_dest_dir"
	InputTool          = "tool"
	InputDeleteDestDir = "delete_dest_dir"
)

// YAML 1.2 "core schema" booleans, the only ones action inputs accept.
var (
	trueValues  = []string{"true", "True", "TRUE"}
	falseValues = []string{"false", "False", "FALSE"}
)

// 🔀 Resolver looks up step inputs in order: explicit overrides (flags),
// action inputs from the environment, the config file, then defaults.
type Resolver struct {
	// Overrides holds values that were set explicitly, usually changed flags
	Overrides map[string]string
	// File is the optional config file
	File *Config
	// WorkingDir is what relative decrypt paths are joined onto
	WorkingDir string
	// Getenv reads the environment; defaults to os.Getenv
	Getenv func(string) string
}

// 🏭 NewResolver creates a resolver for the current process
func NewResolver(file *Config, overrides map[string]string) (*Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}
	return &Resolver{
		Overrides:  overrides,
		File:       file,
		WorkingDir: wd,
		Getenv:     os.Getenv,
	}, nil
}

// 🌍 EnvName returns the environment variable an action input is passed in
func EnvName(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// 🔍 Lookup finds the raw value of an input and whether any source set it
func (r *Resolver) Lookup(name string) (string, bool) {
	if v, ok := r.Overrides[name]; ok {
		return v, true
	}

	if v := strings.TrimSpace(r.getenv(EnvName(name))); v != "" {
		return v, true
	}

	if v, ok := r.File.Values()[name]; ok {
		return v, true
	}

	return "", false
}

// Input returns the value of an input, or def when nothing sets it.
func (r *Resolver) Input(name, def string) string {
	if v, ok := r.Lookup(name); ok {
		return v
	}
	return def
}

// BoolInput returns a boolean input, or def when nothing sets it.
func (r *Resolver) BoolInput(name string, def bool) (bool, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return def, nil
	}
	return ParseBool(name, v)
}

// 🔘 ParseBool parses a boolean input the way GitHub Actions does
func ParseBool(name, value string) (bool, error) {
	for _, t := range trueValues {
		if value == t {
			return true, nil
		}
	}
	for _, f := range falseValues {
		if value == f {
			return false, nil
		}
	}
	return false, errors.Errorf(
		"%w: input %s does not meet YAML 1.2 \"Core Schema\" specification, supported values are true | True | TRUE | false | False | FALSE",
		failure.ErrConfiguration, name)
}

// 🔓 Decrypt resolves the decrypt step configuration
func (r *Resolver) Decrypt() (*DecryptConfig, error) {
	createDestDir, err := r.BoolInput(InputCreateDestDir, false)
	if err != nil {
		return nil, err
	}

	cfg := &DecryptConfig{
		SourceDir:     r.resolvePath(r.Input(InputSourceDir, "")),
		DestDir:       r.resolvePath(r.Input(InputDestDir, "")),
		FilePattern:   r.Input(InputFilePattern, ""),
		PatternSyntax: PatternSyntax(r.Input(InputPatternSyntax, string(PatternRegex))),
		CreateDestDir: createDestDir,
		Tool:          r.Input(InputTool, DefaultTool),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// 🧹 Cleanup resolves the cleanup step configuration
func (r *Resolver) Cleanup() (*CleanupConfig, error) {
	deleteDestDir, err := r.BoolInput(InputDeleteDestDir, false)
	if err != nil {
		return nil, err
	}

	destDir := r.Input(InputDestDir, "")
	if _, set := r.Overrides[InputDestDir]; !set && strings.TrimSpace(r.getenv(EnvName(InputDestDir))) == "" {
		if v, ok := r.File.Values()[cleanupDestDirKey]; ok {
			destDir = v
		}
	}

	return &CleanupConfig{
		DestDir:       destDir,
		DeleteDestDir: deleteDestDir,
	}, nil
}

func (r *Resolver) getenv(name string) string {
	if r.Getenv == nil {
		return os.Getenv(name)
	}
	return r.Getenv(name)
}

// resolvePath joins relative decrypt paths onto the working directory
func (r *Resolver) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.WorkingDir, p)
}
