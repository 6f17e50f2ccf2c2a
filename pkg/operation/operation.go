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

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/decrypter"
	"github.com/walteh/sops-decrypt/pkg/status"
)

// 🎯 Operation is a single pipeline step
type Operation interface {
	// Name is how the step labels itself in pipeline output
	Name() string
	// Execute runs the step to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies of an operation
type Options struct {
	// Reporter publishes notices
	Reporter status.Reporter
	// Decrypter runs the external tool, only needed for decryption
	Decrypter decrypter.Decrypter
}

// 🧱 BaseOperation carries the shared dependencies
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation validates the shared options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Reporter == nil {
		return BaseOperation{}, errors.Errorf("reporter is required")
	}
	return BaseOperation{Options: opts}, nil
}
