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
	"context"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config file parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔓 DecryptSection holds the decrypt step inputs of a config file
type DecryptSection struct {
	SourceDir     string `json:"source_dir,omitempty" yaml:"source_dir,omitempty"`
	DestDir       string `json:"dest_dir,omitempty" yaml:"dest_dir,omitempty"`
	FilePattern   string `json:"file_pattern,omitempty" yaml:"file_pattern,omitempty"`
	PatternSyntax string `json:"pattern_syntax,omitempty" yaml:"pattern_syntax,omitempty"`
	CreateDestDir *bool  `json:"create_dest_dir,omitempty" yaml:"create_dest_dir,omitempty"`
	Tool          string `json:"tool,omitempty" yaml:"tool,omitempty"`
}

// 🧹 CleanupSection holds the cleanup step inputs of a config file
type CleanupSection struct {
	DestDir       string `json:"dest_dir,omitempty" yaml:"dest_dir,omitempty"`
	DeleteDestDir *bool  `json:"delete_dest_dir,omitempty" yaml:"delete_dest_dir,omitempty"`
}

// 📚 Config is the content of a config file. Every field is optional; the
// values act as defaults underneath flags and action inputs.
type Config struct {
	Decrypt DecryptSection `json:"decrypt" yaml:"decrypt"`
	Cleanup CleanupSection `json:"cleanup" yaml:"cleanup"`
}

// 🗂️ Values flattens the config into raw input values keyed by input name
func (cfg *Config) Values() map[string]string {
	values := map[string]string{}
	if cfg == nil {
		return values
	}

	setString(values, InputSourceDir, cfg.Decrypt.SourceDir)
	setString(values, InputDestDir, cfg.Decrypt.DestDir)
	setString(values, InputFilePattern, cfg.Decrypt.FilePattern)
	setString(values, InputPatternSyntax, cfg.Decrypt.PatternSyntax)
	setBool(values, InputCreateDestDir, cfg.Decrypt.CreateDestDir)
	setString(values, InputTool, cfg.Decrypt.Tool)
	setBool(values, InputDeleteDestDir, cfg.Cleanup.DeleteDestDir)

	// the cleanup section may name its own directory, otherwise it shares the decrypt one
	if cfg.Cleanup.DestDir != "" {
		values[cleanupDestDirKey] = cfg.Cleanup.DestDir
	}

	return values
}

// cleanupDestDirKey keeps the cleanup override apart from the decrypt dest_dir.
const cleanupDestDirKey = "cleanup." + InputDestDir

func setString(values map[string]string, name, value string) {
	if value != "" {
		values[name] = value
	}
}

func setBool(values map[string]string, name string, value *bool) {
	if value != nil {
		values[name] = strconv.FormatBool(*value)
	}
}

// expand runs fn over the path-like fields. Patterns are left alone since
// regular expressions routinely end in "$".
func (cfg *Config) expand(fn func(string) (string, error)) error {
	fields := []*string{
		&cfg.Decrypt.SourceDir,
		&cfg.Decrypt.DestDir,
		&cfg.Decrypt.Tool,
		&cfg.Cleanup.DestDir,
	}
	for _, field := range fields {
		expanded, err := fn(*field)
		if err != nil {
			return errors.Errorf("expanding %q: %w", *field, err)
		}
		*field = expanded
	}
	return nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}
