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
	"github.com/astralengine/astraldev/pkg/vulkansdk"
	"github.com/pterm/pterm"
)

// 📊 ProgressBar draws download progress with pterm
type ProgressBar struct {
	Title string
	bar   *pterm.ProgressbarPrinter
}

var _ vulkansdk.Progress = (*ProgressBar)(nil)

// NewProgressBar returns a progress bar for the vulkan download
func NewProgressBar() vulkansdk.Progress {
	return &ProgressBar{Title: "Downloading Vulkan SDK"}
}

func (p *ProgressBar) Start(total int64) {
	// unknown sizes get no bar
	if total <= 0 {
		return
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(int(total)).
		WithTitle(p.Title).
		WithShowCount(false).
		Start()
	if err != nil {
		return
	}
	p.bar = bar
}

func (p *ProgressBar) Add(n int) {
	if p.bar != nil {
		p.bar.Add(n)
	}
}

func (p *ProgressBar) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}
