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
	"path/filepath"
	"testing"

	"github.com/astralengine/astraldev/pkg/text"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "full_yaml",
			filename: ".astraldev.yaml",
			config: `
scope:
  sentinel: src
  extensions: ["*.hpp", "*.cc"]
include_roots:
  from: "#include Solas"
  to: "#include Astral"
vulkan:
  version: 1.4.328.1
  base_url: https://mirror.example.com/vulkan/
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "src", cfg.Scope.Sentinel, "sentinel should match")
				assert.Equal(t, []string{"*.hpp", "*.cc"}, cfg.Scope.Extensions, "extensions should match")
				assert.Equal(t, text.Rule{Search: "#include Solas", Replace: "#include Astral"}, cfg.IncludeRule(), "include rule should match")
				assert.Equal(t, "1.4.328.1", cfg.Vulkan.Version, "version should match")
				assert.Equal(t, "https://mirror.example.com/vulkan", cfg.Vulkan.BaseURL, "trailing slash should be trimmed")
			},
		},
		{
			name:     "partial_yaml_keeps_defaults",
			filename: ".astraldev.yml",
			config: `
vulkan:
  version: 1.3.290.0
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "source", cfg.Scope.Sentinel, "sentinel should keep default")
				assert.Equal(t, []string{"*.h", "*.cpp"}, cfg.Scope.Extensions, "extensions should keep default")
				assert.Equal(t, "#include Ayla", cfg.IncludeRoots.From, "from should keep default")
				assert.Equal(t, "1.3.290.0", cfg.Vulkan.Version, "version should match")
				assert.Equal(t, "https://sdk.lunarg.com/sdk/download", cfg.Vulkan.BaseURL, "base url should keep default")
			},
		},
		{
			name:     "empty_yaml_is_defaults",
			filename: ".astraldev.yaml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default().Scope, cfg.Scope)
				assert.Equal(t, Default().Vulkan, cfg.Vulkan)
			},
		},
		{
			name:     "full_hcl",
			filename: ".astraldev.hcl",
			config: `
scope {
  sentinel   = "src"
  extensions = ["*.h", "*.cpp", "*.inl"]
}

include_roots {
  from = "#include Ayla"
  to   = ""
}

vulkan {
  version = default_version
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "src", cfg.Scope.Sentinel, "sentinel should match")
				assert.Equal(t, []string{"*.h", "*.cpp", "*.inl"}, cfg.Scope.Extensions, "extensions should match")
				assert.Equal(t, "", cfg.IncludeRoots.To, "explicit empty replacement should be kept")
				assert.Equal(t, "1.4.321.0", cfg.Vulkan.Version, "version should resolve the variable")
			},
		},
		{
			name:     "empty_hcl_is_defaults",
			filename: ".astraldev.hcl",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default().IncludeRoots, cfg.IncludeRoots)
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    ".astraldev.yaml",
			config:      "scope:\n  sentinal: src\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_hcl_block",
			filename:    ".astraldev.hcl",
			config:      "provider {\n  repo = \"x\"\n}\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "invalid_hcl_syntax",
			filename:    ".astraldev.hcl",
			config:      "scope {",
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "sentinel_with_separator",
			filename:    ".astraldev.yaml",
			config:      "scope:\n  sentinel: source/Core\n",
			wantErr:     true,
			errContains: "must be a directory name",
		},
		{
			name:        "empty_include_root",
			filename:    ".astraldev.yaml",
			config:      "include_roots:\n  from: \"\"\n",
			wantErr:     true,
			errContains: "search text is required",
		},
		{
			name:        "invalid_extension_pattern",
			filename:    ".astraldev.yaml",
			config:      "scope:\n  extensions: [\"[*.h\"]\n",
			wantErr:     true,
			errContains: "invalid pattern",
		},
		{
			name:        "relative_base_url",
			filename:    ".astraldev.yaml",
			config:      "vulkan:\n  base_url: sdk.lunarg.com\n",
			wantErr:     true,
			errContains: "absolute URL",
		},
		{
			name:        "unsupported_extension",
			filename:    ".astraldev.toml",
			config:      "",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			configPath := filepath.Join("/workspace", tt.filename)
			err := afero.WriteFile(fs, configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, fs, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, configPath, cfg.Location(), "location should be recorded")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// 💥 statFailingFs fails every Stat with a non not-exist error
type statFailingFs struct {
	afero.Fs
}

func (statFailingFs) Stat(name string) (os.FileInfo, error) {
	return nil, errors.Errorf("stat %s: permission denied", name)
}

func TestLoadOrDefault(t *testing.T) {
	ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())

	t.Run("missing_file", func(t *testing.T) {
		cfg, err := LoadOrDefault(ctx, afero.NewMemMapFs(), "/workspace/.astraldev.hcl")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Empty(t, cfg.Location())
	})

	t.Run("empty_path", func(t *testing.T) {
		cfg, err := LoadOrDefault(ctx, afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("existing_file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		path := "/workspace/.astraldev.hcl"
		require.NoError(t, afero.WriteFile(fs, path, []byte("scope {\n  sentinel = \"engine\"\n}\n"), 0644))

		cfg, err := LoadOrDefault(ctx, fs, path)
		require.NoError(t, err)
		assert.Equal(t, "engine", cfg.Scope.Sentinel)
		assert.Equal(t, path, cfg.Location())
	})

	t.Run("os_filesystem", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".astraldev.yaml")
		require.NoError(t, os.WriteFile(path, []byte("vulkan:\n  version: 1.3.296.0\n"), 0644))

		cfg, err := LoadOrDefault(ctx, afero.NewOsFs(), path)
		require.NoError(t, err)
		assert.Equal(t, "1.3.296.0", cfg.Vulkan.Version)
	})

	t.Run("stat_failure", func(t *testing.T) {
		_, err := LoadOrDefault(ctx, statFailingFs{afero.NewMemMapFs()}, "/workspace/.astraldev.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "checking config file")
	})
}

func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: "config.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: "config.yml", want: &YAMLParser{}},
		{name: "hcl_file", filename: ".astraldev.hcl", want: &HCLParser{}},
		{name: "unknown_extension", filename: "config.txt", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "no parser should match")
				return
			}
			assert.IsType(t, tt.want, got, "parser type should match")
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, `scope=source[*.h *.cpp] include_roots="#include Ayla" -> "#include Solas" vulkan=1.4.321.0`, cfg.String())
}
