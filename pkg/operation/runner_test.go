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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/gen/mockery"
	"github.com/walteh/sops-decrypt/pkg/failure"
	"github.com/walteh/sops-decrypt/pkg/operation"
)

type stubOperation struct {
	name string
	err  error
	runs int
}

func (s *stubOperation) Name() string { return s.name }

func (s *stubOperation) Execute(ctx context.Context) error {
	s.runs++
	return s.err
}

func TestRunnerSuccess(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	reporter := mockery.NewMockReporter_status(t)
	op := &stubOperation{name: operation.DecryptStepName}

	err := operation.NewRunner(reporter).Run(ctx, op)
	require.NoError(t, err)
	assert.Equal(t, 1, op.runs)
}

func TestRunnerFailure(t *testing.T) {
	tests := []struct {
		name    string
		step    string
		err     error
		wantMsg string
	}{
		{
			name:    "decrypt_step",
			step:    operation.DecryptStepName,
			err:     errors.Errorf("%w: source directory /work/secrets does not exist", failure.ErrNotFound),
			wantMsg: "sops-decrypt failed with: not found: source directory /work/secrets does not exist",
		},
		{
			name:    "cleanup_step",
			step:    operation.CleanupStepName,
			err:     errors.Errorf("%w: /work/out does not exist", failure.ErrNotFound),
			wantMsg: "sops-decrypt post failed with: not found: /work/out does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

			reporter := mockery.NewMockReporter_status(t)
			reporter.EXPECT().Failure(mock.Anything, tt.wantMsg).Return().Once()

			op := &stubOperation{name: tt.step, err: tt.err}
			err := operation.NewRunner(reporter).Run(ctx, op)
			require.Error(t, err)
			assert.ErrorIs(t, err, failure.ErrNotFound, "the kind survives the runner")
			assert.Equal(t, 1, op.runs)
		})
	}
}
