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
	"fmt"
	"path"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrUnsupportedPlatform is returned for operating systems without a known SDK layout
var ErrUnsupportedPlatform = errors.Base("platform not supported")

// DefaultBaseURL is the LunarG download endpoint
const DefaultBaseURL = "https://sdk.lunarg.com/sdk/download"

// 🔧 Options selects the SDK to resolve
type Options struct {
	GOOS    string // Target operating system, as in runtime.GOOS
	Home    string // User home directory, used on macOS
	Version string // SDK version, e.g. 1.4.321.0
	BaseURL string // Download endpoint; defaults to DefaultBaseURL
}

// 📦 Layout is where an SDK version lives on disk and where to fetch it from
type Layout struct {
	Version       string
	Platform      string   // LunarG platform name (windows, mac)
	Root          string   // SDK install directory
	LibDir        string   // Directory holding the required libraries
	Libraries     []string // Library file names the engine links against
	InstallerPath string   // Where the downloaded installer is stored
	DownloadURL   string
}

type platformSpec struct {
	name      string
	installer string
	libraries []string
	root      func(home, version string) string
}

var platforms = map[string]platformSpec{
	"windows": {
		name:      "windows",
		installer: "vulkansdk-windows-X64-%s.exe",
		libraries: []string{
			"vulkan-1.lib",
			"SPIRV-Toolsd.lib",
			"SPIRV-Tools-diffd.lib",
			"SPIRV-Tools-optd.lib",
			"glslangd.lib",
			"glslang-default-resource-limitsd.lib",
		},
		root: func(_, version string) string {
			return path.Join("C:/VulkanSDK", version)
		},
	},
	"darwin": {
		name:      "mac",
		installer: "vulkansdk-macos-%s.zip",
		libraries: []string{
			"libvulkan.1.dylib",
			"libSPIRV-Tools.a",
			"libSPIRV-Tools-diff.a",
			"libSPIRV-Tools-opt.a",
			"libglslang.a",
			"libglslang-default-resource-limits.a",
		},
		root: func(home, version string) string {
			return path.Join(home, "VulkanSDK", version)
		},
	},
}

// 🎯 Resolve computes the layout for the given platform and version.
// Paths use forward slashes on every platform.
func Resolve(opts Options) (*Layout, error) {
	spec, ok := platforms[opts.GOOS]
	if !ok {
		return nil, errors.Errorf("%w: %s", ErrUnsupportedPlatform, opts.GOOS)
	}
	if opts.Version == "" {
		return nil, errors.Errorf("sdk version is required")
	}
	if opts.GOOS == "darwin" && opts.Home == "" {
		return nil, errors.Errorf("home directory is required on %s", opts.GOOS)
	}

	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	root := spec.root(toSlash(opts.Home), opts.Version)
	installer := fmt.Sprintf(spec.installer, opts.Version)

	return &Layout{
		Version:       opts.Version,
		Platform:      spec.name,
		Root:          root,
		LibDir:        path.Join(root, "Lib"),
		Libraries:     append([]string(nil), spec.libraries...),
		InstallerPath: path.Join(root, installer),
		DownloadURL:   fmt.Sprintf("%s/%s/%s/%s", baseURL, opts.Version, spec.name, installer),
	}, nil
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
