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

package status

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// 📈 Summary aggregates the outcomes of a run
type Summary struct {
	Directories  int
	Rewritten    int
	Unchanged    int
	Skipped      int
	Failed       int
	Unknown      int
	Replacements int
}

// Add counts one file entry
func (s *Summary) Add(entry FileEntry) {
	switch entry.Status {
	case StatusRewritten:
		s.Rewritten++
	case StatusUnchanged:
		s.Unchanged++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	default:
		s.Unknown++
	}
	s.Replacements += entry.Replacements
}

// Files returns the number of file entries counted
func (s Summary) Files() int {
	return s.Rewritten + s.Unchanged + s.Skipped + s.Failed + s.Unknown
}

// 🎨 RenderTable renders the summary as a borderless two column table
func (s Summary) RenderTable() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Outcome", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := []struct {
		label string
		count int
	}{
		{"directories", s.Directories},
		{StatusRewritten.String(), s.Rewritten},
		{StatusUnchanged.String(), s.Unchanged},
		{StatusSkipped.String(), s.Skipped},
		{StatusFailed.String(), s.Failed},
		{StatusUnknown.String(), s.Unknown},
	}
	for _, row := range rows {
		table.Append([]string{row.label, fmt.Sprintf("%d", row.count)})
	}

	table.SetFooter([]string{"replacements", fmt.Sprintf("%d", s.Replacements)})
	table.Render()

	return buf.String()
}
