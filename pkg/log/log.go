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

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation represents one rewritten (or, in a dry run, rewritable) file
type FileOperation struct {
	Name         string   // File name, without directory
	Transformers []string // Transformers that changed the file
	Edits        int      // Number of edits made
	DryRun       bool     // Whether the file was left on disk untouched
}

// 📦 Summary represents the end of a pass over a directory
type Summary struct {
	Directory string // Directory that was scanned
	Scanned   int    // Number of qualifying files
	Fixed     int    // Number of files changed
	DryRun    bool   // Whether nothing was written
}

// 🎯 Logger prints the run report on the console and mirrors it to zerolog.
// Report lines go to console uncolored; headers and warnings go to diag.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	diag    io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console, diag io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		diag:    diag,
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

// 📝 LogFileOperation reports a changed file
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if op.DryRun {
		fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgYellow).Sprint("Would fix:"), op.Name)
	} else {
		fmt.Fprintf(l.console, "Fixed: %s\n", op.Name)
	}

	l.zlog.Debug().
		Str("file", op.Name).
		Strs("transformers", op.Transformers).
		Int("edits", op.Edits).
		Bool("dry_run", op.DryRun).
		Msg("file operation")
}

// 📝 LogSummary prints the trailing total for a pass
func (l *Logger) LogSummary(ctx context.Context, s Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s.DryRun {
		fmt.Fprintf(l.console, "\nTotal files to fix: %d\n", s.Fixed)
	} else {
		fmt.Fprintf(l.console, "\nTotal files fixed: %d\n", s.Fixed)
	}

	l.zlog.Info().
		Str("directory", s.Directory).
		Int("scanned", s.Scanned).
		Int("fixed", s.Fixed).
		Bool("dry_run", s.DryRun).
		Msg("pass complete")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("specfix")
	fmt.Fprintf(l.diag, "%s %s\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.diag, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.diag, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
