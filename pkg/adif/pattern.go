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

package adif

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Wildcard is the shell-safe spelling of '*' accepted in delete patterns.
const Wildcard = "%"

// 🎯 Matcher tests field names against delete patterns, ignoring case.
type Matcher struct {
	patterns []string
}

// 🏭 NewMatcher compiles delete patterns.
//
// '*' and '%' match zero or more characters, '?' one character and
// [...] a class. Patterns are compared upper-cased against upper-cased names.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		norm := strings.ToUpper(strings.ReplaceAll(p, Wildcard, "*"))
		if norm == "" || strings.Contains(norm, "/") || !doublestar.ValidatePattern(norm) {
			return nil, errors.Errorf("%w: %q", ErrInvalidPattern, p)
		}
		m.patterns = append(m.patterns, norm)
	}
	return m, nil
}

// 🔍 Match reports whether name matches any pattern.
func (m *Matcher) Match(name string) bool {
	up := strings.ToUpper(name)
	for _, p := range m.patterns {
		if ok, err := doublestar.Match(p, up); err == nil && ok {
			return true
		}
	}
	return false
}

// Empty reports whether there is nothing to match.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.patterns) == 0
}
