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
	"github.com/astralengine/astraldev/pkg/status"
	"github.com/astralengine/astraldev/pkg/text"
)

// 📋 Report is the record of one Run
type Report struct {
	Root        string
	Rule        text.Rule
	DryRun      bool
	Directories []string           // Directories entered, in visit order
	Entries     []status.FileEntry // Outcomes for every examined item, in visit order
}

// Summary aggregates the report's entries
func (r *Report) Summary() status.Summary {
	s := status.Summary{Directories: len(r.Directories)}
	for _, entry := range r.Entries {
		s.Add(entry)
	}
	return s
}

// Paths returns the paths of entries with the given status
func (r *Report) Paths(st status.FileStatus) []string {
	var paths []string
	for _, entry := range r.Entries {
		if entry.Status == st {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// Failed reports whether any item could not be processed
func (r *Report) Failed() bool {
	for _, entry := range r.Entries {
		if entry.Status == status.StatusFailed {
			return true
		}
	}
	return false
}
