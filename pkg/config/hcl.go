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
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context, exposing the environment as env.NAME
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environment(),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Decrypt *struct {
			SourceDir     string `hcl:"source_dir,optional"`
			DestDir       string `hcl:"dest_dir,optional"`
			FilePattern   string `hcl:"file_pattern,optional"`
			PatternSyntax string `hcl:"pattern_syntax,optional"`
			CreateDestDir *bool  `hcl:"create_dest_dir,optional"`
			Tool          string `hcl:"tool,optional"`
		} `hcl:"decrypt,block"`
		Cleanup *struct {
			DestDir       string `hcl:"dest_dir,optional"`
			DeleteDestDir *bool  `hcl:"delete_dest_dir,optional"`
		} `hcl:"cleanup,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{}
	if d := hclCfg.Decrypt; d != nil {
		cfg.Decrypt = DecryptSection{
			SourceDir:     d.SourceDir,
			DestDir:       d.DestDir,
			FilePattern:   d.FilePattern,
			PatternSyntax: d.PatternSyntax,
			CreateDestDir: d.CreateDestDir,
			Tool:          d.Tool,
		}
	}
	if c := hclCfg.Cleanup; c != nil {
		cfg.Cleanup = CleanupSection{
			DestDir:       c.DestDir,
			DeleteDestDir: c.DeleteDestDir,
		}
	}

	return cfg, nil
}

// 🌱 environment converts the process environment into a cty object
func environment() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
