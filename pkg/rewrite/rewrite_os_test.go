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

package rewrite

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/astralengine/astraldev/pkg/status"
	"github.com/astralengine/astraldev/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplacer_Run_OsFs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks and permission bits differ on windows")
	}

	ctx := testutils.Context(t)
	root := t.TempDir()

	sourceDir := filepath.Join(root, "source")
	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "Core"), 0755))

	header := filepath.Join(sourceDir, "Core", "App.h")
	require.NoError(t, os.WriteFile(header, []byte("#include Ayla/Core/Log.h\n"), 0600))

	outside := filepath.Join(root, "outside.h")
	require.NoError(t, os.WriteFile(outside, []byte("Ayla"), 0644))

	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(sourceDir, "broken.h")))
	require.NoError(t, os.Symlink(filepath.Join(sourceDir, "Core"), filepath.Join(sourceDir, "linked")))

	replacer, err := New(Options{Rule: aylaToSolas})
	require.NoError(t, err)

	report, err := replacer.Run(ctx, root)
	require.NoError(t, err)

	content, err := os.ReadFile(header)
	require.NoError(t, err)
	assert.Equal(t, "#include Solas/Core/Log.h\n", string(content))

	info, err := os.Stat(header)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "permission bits should be preserved")

	// root-level files are visited
	content, err = os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, "Solas", string(content))

	assert.ElementsMatch(t,
		[]string{filepath.Join(sourceDir, "broken.h"), filepath.Join(sourceDir, "linked")},
		report.Paths(status.StatusUnknown),
		"broken and directory symlinks should be reported as unknown",
	)
}
