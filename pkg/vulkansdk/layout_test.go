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

package vulkansdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		want    *Layout
		wantErr error
		errMsg  string
	}{
		{
			name: "windows",
			opts: Options{GOOS: "windows", Version: "1.4.321.0"},
			want: &Layout{
				Version:  "1.4.321.0",
				Platform: "windows",
				Root:     "C:/VulkanSDK/1.4.321.0",
				LibDir:   "C:/VulkanSDK/1.4.321.0/Lib",
				Libraries: []string{
					"vulkan-1.lib",
					"SPIRV-Toolsd.lib",
					"SPIRV-Tools-diffd.lib",
					"SPIRV-Tools-optd.lib",
					"glslangd.lib",
					"glslang-default-resource-limitsd.lib",
				},
				InstallerPath: "C:/VulkanSDK/1.4.321.0/vulkansdk-windows-X64-1.4.321.0.exe",
				DownloadURL:   "https://sdk.lunarg.com/sdk/download/1.4.321.0/windows/vulkansdk-windows-X64-1.4.321.0.exe",
			},
		},
		{
			name: "darwin",
			opts: Options{GOOS: "darwin", Home: "/Users/dev", Version: "1.4.321.0", BaseURL: "https://mirror.example.com/"},
			want: &Layout{
				Version:  "1.4.321.0",
				Platform: "mac",
				Root:     "/Users/dev/VulkanSDK/1.4.321.0",
				LibDir:   "/Users/dev/VulkanSDK/1.4.321.0/Lib",
				Libraries: []string{
					"libvulkan.1.dylib",
					"libSPIRV-Tools.a",
					"libSPIRV-Tools-diff.a",
					"libSPIRV-Tools-opt.a",
					"libglslang.a",
					"libglslang-default-resource-limits.a",
				},
				InstallerPath: "/Users/dev/VulkanSDK/1.4.321.0/vulkansdk-macos-1.4.321.0.zip",
				DownloadURL:   "https://mirror.example.com/1.4.321.0/mac/vulkansdk-macos-1.4.321.0.zip",
			},
		},
		{
			name:    "linux_unsupported",
			opts:    Options{GOOS: "linux", Home: "/home/dev", Version: "1.4.321.0"},
			wantErr: ErrUnsupportedPlatform,
		},
		{
			name:   "missing_version",
			opts:   Options{GOOS: "windows"},
			errMsg: "sdk version is required",
		},
		{
			name:   "darwin_without_home",
			opts:   Options{GOOS: "darwin", Version: "1.4.321.0"},
			errMsg: "home directory is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.opts)
			if tt.wantErr != nil || tt.errMsg != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.True(t, errors.Is(err, tt.wantErr), "error should wrap %v", tt.wantErr)
				}
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_LibrariesAreCopied(t *testing.T) {
	layout, err := Resolve(Options{GOOS: "windows", Version: "1.4.321.0"})
	require.NoError(t, err)

	layout.Libraries[0] = "changed"

	again, err := Resolve(Options{GOOS: "windows", Version: "1.4.321.0"})
	require.NoError(t, err)
	assert.Equal(t, "vulkan-1.lib", again.Libraries[0], "callers must not be able to mutate the platform table")
}
