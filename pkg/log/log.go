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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/astralengine/astraldev/pkg/status"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 45 // Base width for file path
	statusWidth = 12 // Width for status text
)

// 🎯 Logger prints user-facing progress and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	verbose bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Verbose loggers also print skipped
// directories and unchanged files.
func New(console io.Writer, zlog zerolog.Logger, verbose bool) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		verbose: verbose,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileEntry formats a file entry for display
func (l *Logger) formatFileEntry(entry status.FileEntry) string {
	var symbol rune
	var symbolColor color.Attribute
	switch entry.Status {
	case status.StatusRewritten:
		symbol = '⟳'
		symbolColor = color.FgGreen
	case status.StatusUnchanged:
		symbol = '•'
		symbolColor = color.FgCyan
	case status.StatusSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case status.StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '?'
		symbolColor = color.FgMagenta
	}

	var detail string
	switch {
	case entry.Err != nil:
		detail = entry.Err.Error()
	case entry.Status == status.StatusRewritten && entry.Reason != "":
		detail = fmt.Sprintf("%d replacement(s), %s", entry.Replacements, entry.Reason)
	case entry.Status == status.StatusRewritten:
		detail = fmt.Sprintf("%d replacement(s)", entry.Replacements)
	default:
		detail = entry.Reason
	}

	return fmt.Sprintf("%*s%s %-*s %s %s",
		fileIndent, "",
		color.New(symbolColor).Sprint(string(symbol)),
		nameWidth, entry.Path,
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, entry.Status)),
		detail)
}

// 📂 DirectoryEntered logs a directory the walk descends into
func (l *Logger) DirectoryEntered(ctx context.Context, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Faint).Sprint("checking directory "+path))

	l.zlog.Debug().Str("directory", path).Msg("checking directory")
}

// ⏭️ DirectorySkipped logs a directory outside the tracked tree
func (l *Logger) DirectorySkipped(ctx context.Context, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.verbose {
		fmt.Fprintf(l.console, "%s %s\n",
			color.New(color.Faint).Sprint("◇"),
			color.New(color.Faint).Sprint("skipping directory "+path))
	}

	l.zlog.Debug().Str("directory", path).Msg("skipping untracked directory")
}

// 📝 FileVisited logs the outcome for a single file
func (l *Logger) FileVisited(ctx context.Context, entry status.FileEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Status != status.StatusUnchanged || l.verbose {
		fmt.Fprintln(l.console, l.formatFileEntry(entry))
	}

	var ev *zerolog.Event
	switch entry.Status {
	case status.StatusFailed:
		ev = l.zlog.Error().Err(entry.Err)
	case status.StatusUnknown, status.StatusSkipped:
		ev = l.zlog.Warn()
	case status.StatusRewritten:
		ev = l.zlog.Info()
	default:
		ev = l.zlog.Debug()
	}

	ev.Str("file", entry.Path).
		Str("status", entry.Status.String()).
		Int("replacements", entry.Replacements).
		Str("reason", entry.Reason).
		Msg("file processed")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Raw writes preformatted text such as a summary table
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("astraldev")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
