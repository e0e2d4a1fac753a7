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

// Package testutils holds helpers shared by the package tests.
package testutils

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/astralengine/astraldev/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Context returns a context carrying a zerolog logger that writes to t
func Context(t testing.TB) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

// WriteTree creates every file in files, keyed by path, with its parents
func WriteTree(t testing.TB, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755), "creating parent of %s", path)
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644), "writing %s", path)
	}
}

// ReadFile returns the content of path or fails the test
func ReadFile(t testing.TB, fs afero.Fs, path string) string {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "reading %s", path)
	return string(content)
}

// MockReporter is a testify mock of the traversal event sink
type MockReporter struct {
	mock.Mock
}

// NewMockReporter creates a MockReporter whose expectations are asserted
// when the test ends
func NewMockReporter(t testing.TB) *MockReporter {
	m := &MockReporter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockReporter) DirectoryEntered(ctx context.Context, path string) {
	m.Called(ctx, path)
}

func (m *MockReporter) DirectorySkipped(ctx context.Context, path string) {
	m.Called(ctx, path)
}

func (m *MockReporter) FileVisited(ctx context.Context, entry status.FileEntry) {
	m.Called(ctx, entry)
}
