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

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"

	"github.com/astralengine/astraldev/cmd/astraldev/commands"
	"github.com/astralengine/astraldev/cmd/astraldev/opts"
	"github.com/astralengine/astraldev/pkg/log"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	o := &opts.RootOpts{
		Fs:         afero.NewOsFs(),
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		HTTPClient: http.DefaultClient,
		GOOS:       runtime.GOOS,
		HomeDir:    os.UserHomeDir,
	}

	if isTerminal(o.Stdout) {
		o.Prompter = commands.TerminalPrompter{}
		o.NewProgress = commands.NewProgressBar
	}

	if err := newRootCmd(o).ExecuteContext(ctx); err != nil {
		log.New(o.Stderr, zerolog.Nop(), false).Error(err.Error())
		stop()
		os.Exit(1)
	}
}
