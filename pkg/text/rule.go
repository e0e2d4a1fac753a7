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

package text

import (
	"bytes"
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrEmptySearch is returned when a rule has nothing to search for.
var ErrEmptySearch = errors.Base("search text is required")

// 🔄 Rule is a literal (search, replace) pair applied uniformly to every
// visited file in a run.
type Rule struct {
	Search  string
	Replace string
}

// Result contains the outcome of applying a Rule to some content
type Result struct {
	// Original is the content before replacement
	Original []byte

	// Modified is the content after replacement; it aliases Original when nothing matched
	Modified []byte

	// Count is the number of non-overlapping occurrences replaced
	Count int

	// WasModified reports whether at least one occurrence was found
	WasModified bool
}

// 🔍 Validate rejects degenerate rules
func (r Rule) Validate() error {
	if r.Search == "" {
		return errors.WithStack(ErrEmptySearch)
	}
	return nil
}

// 🔄 Apply replaces all non-overlapping occurrences of r.Search in content.
// An invalid rule never modifies content.
func (r Rule) Apply(content []byte) Result {
	result := Result{
		Original: content,
		Modified: content,
	}

	if r.Search == "" {
		return result
	}

	search := []byte(r.Search)
	count := bytes.Count(content, search)
	if count == 0 {
		return result
	}

	result.Count = count
	result.WasModified = true
	result.Modified = bytes.ReplaceAll(content, search, []byte(r.Replace))
	return result
}

// String returns a printable form of the rule
func (r Rule) String() string {
	return fmt.Sprintf("%q -> %q", r.Search, r.Replace)
}
