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

package opts

import (
	"io"
	"net/http"

	"github.com/astralengine/astraldev/pkg/config"
	"github.com/astralengine/astraldev/pkg/vulkansdk"
	"github.com/spf13/afero"
)

// Prompter asks the user for a single line of text
type Prompter interface {
	Prompt(label string) (string, error)
}

// RootOpts contains shared options used by all commands. Config is filled
// in once the global flags have been parsed; the console logger travels in
// the command context.
type RootOpts struct {
	Config *config.Config

	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer

	// Prompter is nil when no terminal is attached
	Prompter Prompter
	// NewProgress is nil when download progress should not be drawn
	NewProgress func() vulkansdk.Progress

	HTTPClient *http.Client
	GOOS       string
	HomeDir    func() (string, error)
}
