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

// 📊 FileStatus represents what a run did with a filesystem item
type FileStatus int

const (
	StatusUnknown   FileStatus = iota // Item is neither a regular file nor a directory
	StatusRewritten                   // File contained the search text and was rewritten
	StatusUnchanged                   // File was read but contained no match
	StatusSkipped                     // File matched an extension but was not text
	StatusFailed                      // Reading or writing the file failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileEntry records the outcome for one filesystem item
type FileEntry struct {
	Path         string     // Walk root joined with the names below it; absolute when the root is
	Status       FileStatus // What happened to the item
	Replacements int        // Occurrences replaced (or that would be, on a dry run)
	Reason       string     // Short explanation for skipped and unknown items
	Err          error      // Failure cause for StatusFailed
}
