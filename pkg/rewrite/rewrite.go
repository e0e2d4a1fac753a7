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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/astralengine/astraldev/pkg/status"
	"github.com/astralengine/astraldev/pkg/text"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultSentinel is the directory name that opens up its subtree for rewriting
const DefaultSentinel = "source"

// DefaultExtensions are the header and source file patterns eligible for rewriting
var DefaultExtensions = []string{"*.h", "*.cpp"}

// 📢 Reporter receives traversal events as they happen
type Reporter interface {
	DirectoryEntered(ctx context.Context, path string)
	DirectorySkipped(ctx context.Context, path string)
	FileVisited(ctx context.Context, entry status.FileEntry)
}

// 🔧 Options configures a Replacer
type Options struct {
	// Fs is the filesystem to walk; defaults to the OS filesystem
	Fs afero.Fs

	// Rule is the replacement applied to every eligible file
	Rule text.Rule

	// Sentinel is the tracked directory name; defaults to DefaultSentinel
	Sentinel string

	// Extensions are doublestar patterns matched against file names; defaults to DefaultExtensions
	Extensions []string

	// DryRun reports what would change without writing anything
	DryRun bool

	// Reporter is notified of every event; optional
	Reporter Reporter
}

// 🔄 Replacer rewrites files in place under sentinel directories
type Replacer struct {
	fs         afero.Fs
	rule       text.Rule
	sentinel   string
	extensions []string
	dryRun     bool
	reporter   Reporter
}

// 🏭 New validates the options and creates a Replacer
func New(opts Options) (*Replacer, error) {
	if err := opts.Rule.Validate(); err != nil {
		return nil, errors.Errorf("validating rule: %w", err)
	}

	r := &Replacer{
		fs:         opts.Fs,
		rule:       opts.Rule,
		sentinel:   opts.Sentinel,
		extensions: opts.Extensions,
		dryRun:     opts.DryRun,
		reporter:   opts.Reporter,
	}

	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	if r.sentinel == "" {
		r.sentinel = DefaultSentinel
	}
	if len(r.extensions) == 0 {
		r.extensions = DefaultExtensions
	}
	if r.reporter == nil {
		r.reporter = nopReporter{}
	}

	for _, pattern := range r.extensions {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid extension pattern: %q", pattern)
		}
	}

	return r, nil
}

// 🏃 Run walks root depth-first and applies the rule. Per-item failures are
// recorded in the report and do not stop the walk; only an unreadable root
// or a cancelled context returns an error. The report is returned even
// alongside an error so partial progress stays visible.
func (r *Replacer) Run(ctx context.Context, root string) (*Report, error) {
	report := &Report{Root: root, Rule: r.rule, DryRun: r.dryRun}

	infos, err := afero.ReadDir(r.fs, root)
	if err != nil {
		return report, errors.Errorf("listing root directory %s: %w", root, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("root", root).
		Str("sentinel", r.sentinel).
		Strs("extensions", r.extensions).
		Str("rule", r.rule.String()).
		Bool("dry_run", r.dryRun).
		Msg("starting scoped rewrite")

	report.Directories = append(report.Directories, root)
	r.reporter.DirectoryEntered(ctx, root)

	if err := r.visitEntries(ctx, root, infos, false, report); err != nil {
		return report, err
	}

	return report, nil
}

// visitDir lists a nested directory; a listing failure is recorded, not returned
func (r *Replacer) visitDir(ctx context.Context, dir string, inside bool, report *Report) error {
	infos, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		r.record(ctx, report, status.FileEntry{
			Path:   dir,
			Status: status.StatusFailed,
			Err:    errors.Errorf("listing directory: %w", err),
		})
		return nil
	}

	report.Directories = append(report.Directories, dir)
	r.reporter.DirectoryEntered(ctx, dir)

	return r.visitEntries(ctx, dir, infos, inside, report)
}

// visitEntries handles the children of dir; inside is the traversal state of dir
func (r *Replacer) visitEntries(ctx context.Context, dir string, infos []os.FileInfo, inside bool, report *Report) error {
	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("walk interrupted at %s: %w", dir, err)
		}

		path := filepath.Join(dir, info.Name())

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := r.fs.Stat(path)
			if err != nil || !target.Mode().IsRegular() {
				r.record(ctx, report, status.FileEntry{
					Path:   path,
					Status: status.StatusUnknown,
					Reason: "symlink not pointing to a regular file",
				})
				continue
			}
			info = target
		}

		switch {
		case info.Mode().IsRegular():
			r.visitFile(ctx, path, info, report)

		case info.IsDir():
			switch {
			case info.Name() == r.sentinel:
				if err := r.visitDir(ctx, path, true, report); err != nil {
					return err
				}
			case inside:
				if err := r.visitDir(ctx, path, inside, report); err != nil {
					return err
				}
			default:
				r.reporter.DirectorySkipped(ctx, path)
			}

		default:
			r.record(ctx, report, status.FileEntry{
				Path:   path,
				Status: status.StatusUnknown,
				Reason: fmt.Sprintf("unsupported file type %s", info.Mode().Type()),
			})
		}
	}

	return nil
}

// visitFile applies the rule to a single regular file
func (r *Replacer) visitFile(ctx context.Context, path string, info os.FileInfo, report *Report) {
	if !r.recognized(info.Name()) {
		return
	}

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		r.record(ctx, report, status.FileEntry{
			Path:   path,
			Status: status.StatusFailed,
			Err:    errors.Errorf("reading file: %w", err),
		})
		return
	}

	zerolog.Ctx(ctx).Trace().Str("file", path).Str("content", string(content)).Msg("file contents")

	if !utf8.Valid(content) {
		r.record(ctx, report, status.FileEntry{
			Path:   path,
			Status: status.StatusSkipped,
			Reason: "non-text file",
		})
		return
	}

	result := r.rule.Apply(content)
	if !result.WasModified {
		r.record(ctx, report, status.FileEntry{Path: path, Status: status.StatusUnchanged})
		return
	}

	entry := status.FileEntry{
		Path:         path,
		Status:       status.StatusRewritten,
		Replacements: result.Count,
	}

	if r.dryRun {
		entry.Reason = "dry run"
		r.record(ctx, report, entry)
		return
	}

	if err := afero.WriteFile(r.fs, path, result.Modified, info.Mode().Perm()); err != nil {
		r.record(ctx, report, status.FileEntry{
			Path:   path,
			Status: status.StatusFailed,
			Err:    errors.Errorf("writing file: %w", err),
		})
		return
	}

	r.record(ctx, report, entry)
}

// recognized reports whether name matches one of the extension patterns
func (r *Replacer) recognized(name string) bool {
	for _, pattern := range r.extensions {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (r *Replacer) record(ctx context.Context, report *Report, entry status.FileEntry) {
	report.Entries = append(report.Entries, entry)
	r.reporter.FileVisited(ctx, entry)
}

type nopReporter struct{}

func (nopReporter) DirectoryEntered(context.Context, string)      {}
func (nopReporter) DirectorySkipped(context.Context, string)      {}
func (nopReporter) FileVisited(context.Context, status.FileEntry) {}
