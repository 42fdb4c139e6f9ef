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
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// SelectFiles returns the names of the regular entries of dir whose name ends
// with suffix, in directory order. Subdirectories are not descended into.
func SelectFiles(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	pattern := "*" + escapeGlob(suffix)

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching %s against %q: %w", entry.Name(), pattern, err)
		}
		if matched {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

var globMeta = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// escapeGlob makes every character of s match literally
func escapeGlob(s string) string {
	return globMeta.Replace(s)
}
