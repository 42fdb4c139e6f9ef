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

// Package text holds the content transformation contract shared by every fixer,
// plus the regex rule engine and line helpers the fixers are built on.
package text

import (
	"bytes"
	"context"
)

// 📦 Result contains the outcome of a single transformation
type Result struct {
	// WasModified indicates if the content changed
	WasModified bool

	// ReplacementCount is the number of edits made
	ReplacementCount int

	// OriginalContent is the content before the transformation
	OriginalContent []byte

	// ModifiedContent is the content after the transformation
	ModifiedContent []byte
}

// 🏭 NewResult builds a Result, deriving WasModified from the two contents
func NewResult(original, modified []byte, count int) *Result {
	return &Result{
		WasModified:      !bytes.Equal(original, modified),
		ReplacementCount: count,
		OriginalContent:  original,
		ModifiedContent:  modified,
	}
}

// 🔄 Transformer rewrites the full content of a file
type Transformer interface {
	// Name identifies the transformer in logs
	Name() string

	// Transform returns the rewritten content. It must not mutate content.
	Transform(ctx context.Context, content []byte) (*Result, error)
}
