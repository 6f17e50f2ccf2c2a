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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/config"
	"github.com/walteh/sops-decrypt/pkg/failure"
	"github.com/walteh/sops-decrypt/pkg/match"
	"github.com/walteh/sops-decrypt/pkg/status"
)

// DecryptStepName labels the decrypt step in failure messages.
const DecryptStepName = "sops-decrypt"

// 📦 Result lists the files a decrypt run touched, in processing order
type Result struct {
	Files []status.FileResult
}

// Decrypted returns the destination paths that were written successfully.
func (r *Result) Decrypted() []string {
	var out []string
	for _, f := range r.Files {
		if f.Err == nil {
			out = append(out, f.Destination)
		}
	}
	return out
}

// 🔓 DecryptOperation decrypts every matching file of the source directory
type DecryptOperation struct {
	BaseOperation
	config *config.DecryptConfig
}

var _ Operation = (*DecryptOperation)(nil)

// 🏭 NewDecryptOperation creates a decrypt operation
func NewDecryptOperation(cfg *config.DecryptConfig, opts Options) (*DecryptOperation, error) {
	if cfg == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Decrypter == nil {
		return nil, errors.Errorf("decrypter is required")
	}
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &DecryptOperation{BaseOperation: base, config: cfg}, nil
}

// Name returns the step label.
func (op *DecryptOperation) Name() string {
	return DecryptStepName
}

// 🏃 Execute runs the decryption and prints the per-file summary
func (op *DecryptOperation) Execute(ctx context.Context) error {
	result, err := op.Decrypt(ctx)
	if result != nil {
		op.Reporter.Summary(ctx, result.Files)
		zerolog.Ctx(ctx).Info().Strs("decrypted", result.Decrypted()).Msg("decrypt finished")
	}
	return err
}

// 🔓 Decrypt processes the matching files one at a time and stops at the
// first failure. Files decrypted before the failure are kept.
func (op *DecryptOperation) Decrypt(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	cfg := op.config

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matcher, err := match.New(cfg.PatternSyntax, cfg.FilePattern)
	if err != nil {
		return nil, err
	}

	// Check if the source directory exists
	info, err := os.Stat(cfg.SourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%w: source directory %s does not exist", failure.ErrNotFound, cfg.SourceDir)
		}
		return nil, errors.Errorf("checking source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: source directory %s is not a directory", failure.ErrNotFound, cfg.SourceDir)
	}

	// Create the destination directory if allowed and missing
	if cfg.CreateDestDir {
		if err := ensureDir(ctx, cfg.DestDir); err != nil {
			return nil, err
		}
	}

	files, err := listFiles(cfg.SourceDir)
	if err != nil {
		return nil, err
	}
	selected := match.Filter(matcher, files)

	logger.Debug().
		Str("source_dir", cfg.SourceDir).
		Str("dest_dir", cfg.DestDir).
		Str("file_pattern", matcher.String()).
		Strs("files", files).
		Strs("filtered_files", selected).
		Msg("resolved file set")

	result := &Result{}
	for _, name := range selected {
		src := filepath.Join(cfg.SourceDir, name)
		dst := filepath.Join(cfg.DestDir, filepath.Base(name))

		// the listing may be stale by now
		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				return result, errors.Errorf("%w: file %s does not exist", failure.ErrNotFound, src)
			}
			return result, errors.Errorf("checking file %s: %w", src, err)
		}

		logger.Debug().Str("file", src).Str("destination", dst).Msg("decrypting file")

		if err := op.Decrypter.Decrypt(ctx, src, dst); err != nil {
			result.Files = append(result.Files, status.FileResult{Source: src, Destination: dst, Err: err})
			return result, errors.WithStack(&failure.DecryptionError{File: src, Err: err})
		}

		result.Files = append(result.Files, status.FileResult{Source: src, Destination: dst})
		op.Reporter.Notice(ctx, "Successfully decrypted file: "+src)
	}

	if len(selected) == 0 {
		logger.Warn().Str("source_dir", cfg.SourceDir).Str("file_pattern", matcher.String()).Msg("no files matched")
	}

	return result, nil
}

// 📁 ensureDir creates dir and its parents when it does not exist yet
func ensureDir(ctx context.Context, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking destination directory: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("dest_dir", dir).Msg("creating destination directory")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Errorf("creating destination directory: %w", err)
	}
	return nil
}

// 📋 listFiles returns the non-directory entries of dir in listing order.
// Symlinks to directories count as directories.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading source directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		isDir, err := isDirEntry(dir, entry)
		if err != nil {
			return nil, err
		}
		if isDir {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// isDirEntry reports whether entry is a directory, following symlinks.
// A dangling symlink is kept as a file so the per-file check reports it.
func isDirEntry(dir string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Errorf("resolving %s: %w", entry.Name(), err)
	}
	return info.IsDir(), nil
}
