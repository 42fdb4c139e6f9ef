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
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Rule pairs a pattern with the function that rewrites each of its matches.
// Replace receives the full match at index 0 followed by the capture groups;
// groups that did not participate are empty.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace func(groups []string) string
}

// 🏭 Literal builds a rule that swaps one exact string for another
func Literal(name, from, to string) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(regexp.QuoteMeta(from)),
		Replace: func([]string) string { return to },
	}
}

// 🎯 Apply rewrites every non-overlapping match in content.
// The count only includes matches whose replacement differs from the match.
func (r Rule) Apply(content string) (string, int) {
	matches := r.Pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))

	count := 0
	last := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = content[m[2*i]:m[2*i+1]]
			}
		}

		replacement := r.Replace(groups)
		if replacement != groups[0] {
			count++
		}

		b.WriteString(content[last:m[0]])
		b.WriteString(replacement)
		last = m[1]
	}
	b.WriteString(content[last:])

	return b.String(), count
}

// 🔄 RegexReplacer applies an ordered list of rules to the whole content
type RegexReplacer struct {
	name  string
	rules []Rule
}

// 🏭 NewRegexReplacer validates the rules and creates a RegexReplacer
func NewRegexReplacer(name string, rules []Rule) (*RegexReplacer, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules for %s: %w", name, err)
	}
	return &RegexReplacer{name: name, rules: rules}, nil
}

// Name implements Transformer.Name
func (r *RegexReplacer) Name() string {
	return r.name
}

// Rules returns the rules in the order they are applied
func (r *RegexReplacer) Rules() []Rule {
	return r.rules
}

// Transform implements Transformer.Transform
func (r *RegexReplacer) Transform(ctx context.Context, content []byte) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	current := string(content)
	total := 0
	for _, rule := range r.rules {
		next, n := rule.Apply(current)
		if n > 0 {
			logger.Trace().Str("transformer", r.name).Str("rule", rule.Name).Int("replacements", n).Msg("rule applied")
		}
		total += n
		current = next
	}

	return NewResult(content, []byte(current), total), nil
}

// ✅ ValidateRules checks that every rule can be applied
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == nil {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		if rule.Replace == nil {
			return errors.Errorf("rule %d (%s): replace is required", i, rule.Name)
		}
	}
	return nil
}
