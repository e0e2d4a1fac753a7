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

// 📝 Parse parses the config from HCL over the defaults
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	cfg := Default()

	// Create evaluation context; the defaults are visible as variables
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_sentinel": cty.StringVal(cfg.Scope.Sentinel),
			"default_version":  cty.StringVal(cfg.Vulkan.Version),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Scope *struct {
			Sentinel   *string  `hcl:"sentinel,optional"`
			Extensions []string `hcl:"extensions,optional"`
		} `hcl:"scope,block"`
		IncludeRoots *struct {
			From *string `hcl:"from,optional"`
			To   *string `hcl:"to,optional"`
		} `hcl:"include_roots,block"`
		Vulkan *struct {
			Version *string `hcl:"version,optional"`
			BaseURL *string `hcl:"base_url,optional"`
		} `hcl:"vulkan,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if s := hclCfg.Scope; s != nil {
		setString(&cfg.Scope.Sentinel, s.Sentinel)
		if s.Extensions != nil {
			cfg.Scope.Extensions = s.Extensions
		}
	}
	if ir := hclCfg.IncludeRoots; ir != nil {
		setString(&cfg.IncludeRoots.From, ir.From)
		setString(&cfg.IncludeRoots.To, ir.To)
	}
	if v := hclCfg.Vulkan; v != nil {
		setString(&cfg.Vulkan.Version, v.Version)
		setString(&cfg.Vulkan.BaseURL, v.BaseURL)
	}

	return cfg, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
