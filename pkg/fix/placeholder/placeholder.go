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

// Package placeholder fills test blocks that only hold a "// Requires ..." note
// with a trivial assertion so the block is not empty.
package placeholder

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/specfix/pkg/text"
)

const (
	// Name identifies the inserter in logs and on the command line
	Name = "placeholder"

	// Marker starts the comment left in place of an unimplemented test body
	Marker = "// Requires"

	// BlockClose is the line that must directly follow the marker
	BlockClose = "});"

	// Assertion is inserted between the marker and the block close
	Assertion = "expect(true).toBe(true); // Placeholder"
)

// 🔧 Inserter implements text.Transformer
type Inserter struct{}

// 🏭 New creates a placeholder inserter
func New() *Inserter {
	return &Inserter{}
}

// Name implements text.Transformer.Name
func (i *Inserter) Name() string {
	return Name
}

// Transform implements text.Transformer.Transform
func (i *Inserter) Transform(ctx context.Context, content []byte) (*text.Result, error) {
	lines, inserted := InsertAssertions(text.SplitLines(string(content)))
	if inserted == 0 {
		return text.NewResult(content, content, 0), nil
	}

	zerolog.Ctx(ctx).Trace().Int("inserted", inserted).Msg("placeholder assertions inserted")

	return text.NewResult(content, []byte(text.JoinLines(lines)), inserted), nil
}

// 🎯 InsertAssertions scans lines (with their endings) and inserts the placeholder
// assertion after every marker line that is immediately followed by the block
// close. A marker followed by anything else is left alone. The new line copies
// the marker's leading tabs and line ending.
func InsertAssertions(lines []string) ([]string, int) {
	out := make([]string, 0, len(lines))
	inserted := 0

	for i, line := range lines {
		out = append(out, line)

		if !strings.HasPrefix(strings.TrimSpace(line), Marker) {
			continue
		}
		if i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) != BlockClose {
			continue
		}

		eol := text.LineEnding(line)
		if eol == "" {
			eol = "\n"
		}
		out = append(out, text.LeadingTabs(line)+Assertion+eol)
		inserted++
	}

	return out, inserted
}
