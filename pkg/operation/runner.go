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

package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/specfix/pkg/log"
	"github.com/walteh/specfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the runner
type Options struct {
	// Directory is scanned without recursion
	Directory string
	// Suffix selects which files are processed
	Suffix string
	// Transformers are applied to each file in order
	Transformers []text.Transformer
	// DryRun reports changes without writing them
	DryRun bool
	// Logger receives the per-file report and the summary
	Logger *log.Logger
}

// 📦 Summary describes a finished pass
type Summary struct {
	Directory string
	Scanned   int
	Fixed     []string
}

// 🏃 Runner executes one pass over a directory
type Runner struct {
	opts Options
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Directory == "" {
		return nil, errors.Errorf("directory is required")
	}
	if opts.Suffix == "" {
		return nil, errors.Errorf("suffix is required")
	}
	if len(opts.Transformers) == 0 {
		return nil, errors.Errorf("at least one transformer is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &Runner{opts: opts}, nil
}

// 🏃 Run processes every qualifying file and prints the summary
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx).With().Str("directory", r.opts.Directory).Logger()

	names, err := SelectFiles(r.opts.Directory, r.opts.Suffix)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("files", len(names)).Str("suffix", r.opts.Suffix).Msg("selected files")

	summary := &Summary{
		Directory: r.opts.Directory,
		Scanned:   len(names),
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("operation cancelled: %w", err)
		}

		op, err := r.fixFile(logger.WithContext(ctx), name)
		if err != nil {
			return nil, err
		}
		if op == nil {
			logger.Trace().Str("file", name).Msg("no change")
			continue
		}

		summary.Fixed = append(summary.Fixed, name)
		r.opts.Logger.LogFileOperation(ctx, *op)
	}

	r.opts.Logger.LogSummary(ctx, log.Summary{
		Directory: summary.Directory,
		Scanned:   summary.Scanned,
		Fixed:     len(summary.Fixed),
		DryRun:    r.opts.DryRun,
	})

	return summary, nil
}

// fixFile returns nil when no transformer changed the file
func (r *Runner) fixFile(ctx context.Context, name string) (*log.FileOperation, error) {
	path := filepath.Join(r.opts.Directory, name)

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stat %s: %w", path, err)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	op := &log.FileOperation{
		Name:   name,
		DryRun: r.opts.DryRun,
	}

	current := original
	for _, t := range r.opts.Transformers {
		result, err := t.Transform(ctx, current)
		if err != nil {
			return nil, errors.Errorf("applying %s to %s: %w", t.Name(), path, err)
		}
		if result.WasModified {
			op.Transformers = append(op.Transformers, t.Name())
			op.Edits += result.ReplacementCount
			current = result.ModifiedContent
		}
	}

	if bytes.Equal(original, current) {
		return nil, nil
	}

	if !r.opts.DryRun {
		if err := os.WriteFile(path, current, info.Mode().Perm()); err != nil {
			return nil, errors.Errorf("writing %s: %w", path, err)
		}
	}

	return op, nil
}
