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
	"context"
	"path"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// 🔍 CheckResult describes what was found for a Layout
type CheckResult struct {
	Root       string
	RootExists bool
	Missing    []string // Required libraries absent from the library directory
}

// Installed reports whether the SDK directory and every required library are present
func (r CheckResult) Installed() bool {
	return r.RootExists && len(r.Missing) == 0
}

// 🔍 Check looks for the SDK directory and its required libraries
func Check(ctx context.Context, fs afero.Fs, layout *Layout) CheckResult {
	logger := zerolog.Ctx(ctx)
	result := CheckResult{Root: layout.Root}

	exists, err := afero.DirExists(fs, layout.Root)
	if err != nil {
		logger.Debug().Err(err).Str("root", layout.Root).Msg("checking sdk directory")
	}
	if !exists {
		logger.Debug().Str("root", layout.Root).Msg("sdk directory not found")
		return result
	}
	result.RootExists = true

	for _, lib := range layout.Libraries {
		libPath := path.Join(layout.LibDir, lib)
		info, err := fs.Stat(libPath)
		if err != nil || !info.Mode().IsRegular() {
			logger.Debug().Str("library", libPath).Msg("required library missing")
			result.Missing = append(result.Missing, lib)
		}
	}

	return result
}
