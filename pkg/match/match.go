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

// Package match decides which file names in the source directory are decrypted.
package match

import (
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sops-decrypt/pkg/config"
	"github.com/walteh/sops-decrypt/pkg/failure"
)

// 🎯 Matcher reports whether a base file name is selected
type Matcher interface {
	Match(name string) bool
	String() string
}

// 🏭 New compiles pattern according to syntax. Invalid patterns are
// configuration errors.
func New(syntax config.PatternSyntax, pattern string) (Matcher, error) {
	switch syntax {
	case config.PatternRegex, "":
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Errorf("%w: invalid file pattern %q: %s", failure.ErrConfiguration, pattern, err.Error())
		}
		return &regexMatcher{re: re}, nil
	case config.PatternGlob:
		if pattern == "" {
			pattern = "*"
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("%w: invalid file pattern %q", failure.ErrConfiguration, pattern)
		}
		return &globMatcher{pattern: pattern}, nil
	default:
		return nil, errors.Errorf("%w: unknown pattern syntax %q", failure.ErrConfiguration, syntax)
	}
}

// regexMatcher searches anywhere in the name, an empty expression matches everything
type regexMatcher struct {
	re *regexp.Regexp
}

func (m *regexMatcher) Match(name string) bool {
	return m.re.MatchString(name)
}

func (m *regexMatcher) String() string {
	return "regex:" + m.re.String()
}

// globMatcher matches the whole name
type globMatcher struct {
	pattern string
}

func (m *globMatcher) Match(name string) bool {
	// pattern was validated in New, so the error is always nil
	ok, _ := doublestar.Match(m.pattern, name)
	return ok
}

func (m *globMatcher) String() string {
	return "glob:" + m.pattern
}

// 🔍 Filter returns the names selected by m, keeping their order
func Filter(m Matcher, names []string) []string {
	selected := make([]string, 0, len(names))
	for _, name := range names {
		if m.Match(name) {
			selected = append(selected, name)
		}
	}
	return selected
}
