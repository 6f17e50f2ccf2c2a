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
	"fmt"
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/failure"
)

// DefaultTool is the decryption tool looked up on PATH when none is configured.
const DefaultTool = "sops"

// 🔤 PatternSyntax selects how file_pattern is interpreted
type PatternSyntax string

const (
	// PatternRegex searches the file name for a regular expression
	PatternRegex PatternSyntax = "regex"
	// PatternGlob matches the whole file name against a glob
	PatternGlob PatternSyntax = "glob"
)

// 🔓 DecryptConfig is the resolved, immutable decrypt step configuration
type DecryptConfig struct {
	SourceDir     string        // Absolute directory holding encrypted files
	DestDir       string        // Absolute directory decrypted files are written to
	FilePattern   string        // Pattern file names must match
	PatternSyntax PatternSyntax // How FilePattern is interpreted
	CreateDestDir bool          // Whether DestDir may be created
	Tool          string        // Decryption tool name or path
}

// 🔍 Validate checks that the configuration can be acted on
func (cfg *DecryptConfig) Validate() error {
	if !filepath.IsAbs(cfg.SourceDir) {
		return errors.Errorf("%w: invalid source directory %s", failure.ErrConfiguration, cfg.SourceDir)
	}
	if !filepath.IsAbs(cfg.DestDir) {
		return errors.Errorf("%w: invalid destination directory %s", failure.ErrConfiguration, cfg.DestDir)
	}
	switch cfg.PatternSyntax {
	case PatternRegex, PatternGlob:
	default:
		return errors.Errorf("%w: unknown pattern syntax %q", failure.ErrConfiguration, cfg.PatternSyntax)
	}
	if cfg.Tool == "" {
		return errors.Errorf("%w: tool is required", failure.ErrConfiguration)
	}
	return nil
}

// 📝 String returns a string representation of the config
func (cfg *DecryptConfig) String() string {
	return fmt.Sprintf("%s [%s %q] -> %s", cfg.SourceDir, cfg.PatternSyntax, cfg.FilePattern, cfg.DestDir)
}

// 🧹 CleanupConfig is the resolved cleanup step configuration
type CleanupConfig struct {
	DestDir       string // Directory to remove, used as given
	DeleteDestDir bool   // Whether to remove it at all
}
