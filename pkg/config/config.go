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
	"fmt"
	"net/url"
	"strings"

	"github.com/astralengine/astraldev/pkg/text"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, starting from Default()
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

// 🌳 Scope selects which directories and files the rename commands touch
type Scope struct {
	Sentinel   string   `yaml:"sentinel"`   // Directory name that opens its subtree
	Extensions []string `yaml:"extensions"` // File name patterns eligible for rewriting
}

// 🔄 IncludeRoots is the fixed rule used by the include-roots command
type IncludeRoots struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// 🌋 Vulkan pins the SDK the engine builds against
type Vulkan struct {
	Version string `yaml:"version"`
	BaseURL string `yaml:"base_url"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Scope        Scope        `yaml:"scope"`
	IncludeRoots IncludeRoots `yaml:"include_roots"`
	Vulkan       Vulkan       `yaml:"vulkan"`

	location string
}

// 🏭 Default returns the values the engine scripts were written against
func Default() *Config {
	return &Config{
		Scope: Scope{
			Sentinel:   "source",
			Extensions: []string{"*.h", "*.cpp"},
		},
		IncludeRoots: IncludeRoots{
			From: "#include Ayla",
			To:   "#include Solas",
		},
		Vulkan: Vulkan{
			Version: "1.4.321.0",
			BaseURL: "https://sdk.lunarg.com/sdk/download",
		},
	}
}

// 🎯 Load loads the configuration from a file on fs
func Load(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault loads path, falling back to Default when the file does not exist
func LoadOrDefault(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, errors.Errorf("checking config file: %w", err)
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}

	return Load(ctx, fs, path)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Scope.Sentinel == "" {
		return errors.Errorf("scope.sentinel is required")
	}
	if strings.ContainsAny(cfg.Scope.Sentinel, `/\`) {
		return errors.Errorf("scope.sentinel must be a directory name, got %q", cfg.Scope.Sentinel)
	}
	if len(cfg.Scope.Extensions) == 0 {
		return errors.Errorf("scope.extensions must not be empty")
	}
	for _, pattern := range cfg.Scope.Extensions {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("scope.extensions: invalid pattern %q", pattern)
		}
	}

	if err := cfg.IncludeRule().Validate(); err != nil {
		return errors.Errorf("include_roots.from: %w", err)
	}

	if cfg.Vulkan.Version == "" {
		return errors.Errorf("vulkan.version is required")
	}
	u, err := url.Parse(cfg.Vulkan.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("vulkan.base_url must be an absolute URL, got %q", cfg.Vulkan.BaseURL)
	}
	cfg.Vulkan.BaseURL = strings.TrimSuffix(cfg.Vulkan.BaseURL, "/")

	return nil
}

// IncludeRule returns the replacement rule for the include-roots command
func (cfg *Config) IncludeRule() text.Rule {
	return text.Rule{Search: cfg.IncludeRoots.From, Replace: cfg.IncludeRoots.To}
}

// Location returns the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("scope=%s%v include_roots=%s vulkan=%s",
		cfg.Scope.Sentinel, cfg.Scope.Extensions, cfg.IncludeRule(), cfg.Vulkan.Version)
}
