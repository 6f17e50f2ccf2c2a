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

// Package failure defines the error kinds a pipeline step can fail with.
//
// Every error returned by an entry point matches exactly one of
// [ErrConfiguration], [ErrNotFound] or [ErrDecryption] via errors.Is.
package failure

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrConfiguration marks invalid inputs: non-absolute paths, bad booleans, bad patterns.
	ErrConfiguration = errors.Base("configuration error")

	// ErrNotFound marks a missing source directory, source file or destination directory.
	ErrNotFound = errors.Base("not found")

	// ErrDecryption marks a failed or non-zero external tool invocation.
	ErrDecryption = errors.Base("decryption error")
)

// 🔐 DecryptionError reports which file the external tool failed on
type DecryptionError struct {
	File string
	Err  error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("error decrypting %s with error %v", e.File, e.Err)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is reports DecryptionError as an ErrDecryption kind.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryption
}

// 🏷️ Kind returns the error kind err belongs to, or nil when it has none
func Kind(err error) error {
	for _, kind := range []error{ErrConfiguration, ErrNotFound, ErrDecryption} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
