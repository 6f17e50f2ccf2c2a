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

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/sops-decrypt/pkg/config"
	"github.com/walteh/sops-decrypt/pkg/failure"
)

func TestFilter(t *testing.T) {
	names := []string{"a.enc", "b.enc", "c.txt", "d.enc.yaml", "enc"}

	tests := []struct {
		name    string
		syntax  config.PatternSyntax
		pattern string
		want    []string
	}{
		{
			name:    "regex_suffix",
			syntax:  config.PatternRegex,
			pattern: `\.enc$`,
			want:    []string{"a.enc", "b.enc"},
		},
		{
			name:    "regex_is_a_search_not_a_full_match",
			syntax:  config.PatternRegex,
			pattern: "enc",
			want:    []string{"a.enc", "b.enc", "d.enc.yaml", "enc"},
		},
		{
			name:    "regex_empty_matches_all",
			syntax:  config.PatternRegex,
			pattern: "",
			want:    names,
		},
		{
			name:    "default_syntax_is_regex",
			syntax:  "",
			pattern: `^[ab]\.`,
			want:    []string{"a.enc", "b.enc"},
		},
		{
			name:    "glob_suffix",
			syntax:  config.PatternGlob,
			pattern: "*.enc",
			want:    []string{"a.enc", "b.enc"},
		},
		{
			name:    "glob_alternatives",
			syntax:  config.PatternGlob,
			pattern: "*.{txt,yaml}",
			want:    []string{"c.txt", "d.enc.yaml"},
		},
		{
			name:    "glob_empty_matches_all",
			syntax:  config.PatternGlob,
			pattern: "",
			want:    names,
		},
		{
			name:    "nothing_matches",
			syntax:  config.PatternRegex,
			pattern: `\.gpg$`,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.syntax, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Filter(m, names))
		})
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name    string
		syntax  config.PatternSyntax
		pattern string
		errMsg  string
	}{
		{
			name:    "bad_regex",
			syntax:  config.PatternRegex,
			pattern: `(\.enc`,
			errMsg:  "invalid file pattern",
		},
		{
			name:    "bad_glob",
			syntax:  config.PatternGlob,
			pattern: "[a-",
			errMsg:  "invalid file pattern",
		},
		{
			name:    "unknown_syntax",
			syntax:  "shell",
			pattern: "*",
			errMsg:  "unknown pattern syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.syntax, tt.pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, failure.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestString(t *testing.T) {
	m, err := New(config.PatternRegex, `\.enc$`)
	require.NoError(t, err)
	assert.Equal(t, `regex:\.enc$`, m.String())

	m, err = New(config.PatternGlob, "*.enc")
	require.NoError(t, err)
	assert.Equal(t, "glob:*.enc", m.String())
}
