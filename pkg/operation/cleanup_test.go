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

package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/walteh/sops-decrypt/gen/mockery"
	"github.com/walteh/sops-decrypt/pkg/config"
	"github.com/walteh/sops-decrypt/pkg/failure"
	"github.com/walteh/sops-decrypt/pkg/operation"
)

func TestCleanup(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, dir string)
		delete     bool
		wantNotice string
		wantErrIs  error
		wantGone   bool
	}{
		{
			name: "skip_when_not_requested",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(dir, 0o755))
			},
			delete:     false,
			wantNotice: "Skipping deletion of %DIR%.",
		},
		{
			name: "skip_does_not_require_dir",
			setup: func(t *testing.T, dir string) {
			},
			delete:     false,
			wantNotice: "Skipping deletion of %DIR%.",
		},
		{
			name: "remove_tree",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "a.enc"), []byte("secret"), 0o600))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.enc"), []byte("secret"), 0o600))
			},
			delete:     true,
			wantNotice: "Secrets output directory %DIR% has been removed.",
			wantGone:   true,
		},
		{
			name: "missing_dir",
			setup: func(t *testing.T, dir string) {
			},
			delete:    true,
			wantErrIs: failure.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			dir := filepath.Join(t.TempDir(), "out")
			tt.setup(t, dir)

			reporter := mockery.NewMockReporter_status(t)
			if tt.wantNotice != "" {
				reporter.EXPECT().Notice(mock.Anything, replaceDir(tt.wantNotice, dir)).Return().Once()
			}

			op, err := operation.NewCleanupOperation(&config.CleanupConfig{
				DestDir:       dir,
				DeleteDestDir: tt.delete,
			}, operation.Options{Reporter: reporter})
			require.NoError(t, err)
			assert.Equal(t, operation.CleanupStepName, op.Name())

			err = op.Execute(ctx)
			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Contains(t, err.Error(), dir+" does not exist")
				return
			}
			require.NoError(t, err)

			if tt.wantGone {
				assert.NoDirExists(t, dir)
			}
		})
	}
}

func TestCleanupKeepsDirWhenSkipping(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.enc"), []byte("secret"), 0o600))

	reporter := mockery.NewMockReporter_status(t)
	reporter.EXPECT().Notice(mock.Anything, mock.Anything).Return().Once()

	op, err := operation.NewCleanupOperation(&config.CleanupConfig{DestDir: dir}, operation.Options{Reporter: reporter})
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	assert.FileExists(t, filepath.Join(dir, "a.enc"))
}

func TestNewCleanupOperationRequiresOptions(t *testing.T) {
	_, err := operation.NewCleanupOperation(nil, operation.Options{Reporter: mockery.NewMockReporter_status(t)})
	assert.ErrorContains(t, err, "config is required")

	_, err = operation.NewCleanupOperation(&config.CleanupConfig{}, operation.Options{})
	assert.ErrorContains(t, err, "reporter is required")
}

func replaceDir(s, dir string) string {
	return strings.ReplaceAll(s, "%DIR%", dir)
}
