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

package commands

import (
	"strings"

	"github.com/astralengine/astraldev/cmd/astraldev/opts"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// TerminalPrompter reads answers with pterm's interactive text input
type TerminalPrompter struct{}

var _ opts.Prompter = TerminalPrompter{}

func (TerminalPrompter) Prompt(label string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.Show(label)
	if err != nil {
		return "", errors.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(answer, "\r\n"), nil
}

// resolveString returns the flag value when it was set, otherwise it asks
// the prompter. Without a prompter the flag is required.
func resolveString(o *opts.RootOpts, value string, set bool, flag, label string) (string, error) {
	if set {
		return value, nil
	}
	if o.Prompter == nil {
		return "", errors.Errorf("--%s is required when not running in a terminal", flag)
	}
	answer, err := o.Prompter.Prompt(label)
	if err != nil {
		return "", errors.Errorf("prompting for %s: %w", flag, err)
	}
	return answer, nil
}
