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

// Package diff renders before/after views of an edited log.
package diff

import (
	"github.com/pmezard/go-difflib/difflib"
	"gitlab.com/tozd/go/errors"
)

// contextLines is the number of unchanged lines shown around each hunk
const contextLines = 2

// 🔍 Unified returns a unified diff between before and after, or "" when
// they are identical.
func Unified(before, after, from, to string) (string, error) {
	if before == after {
		return "", nil
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: from,
		ToFile:   to,
		Context:  contextLines,
	})
	if err != nil {
		return "", errors.Errorf("rendering diff: %w", err)
	}
	return out, nil
}

// 📊 Stats counts added and removed lines in a unified diff
func Stats(unified string) (adds, removes int) {
	for _, line := range difflib.SplitLines(unified) {
		switch {
		case len(line) == 0:
		case len(line) >= 3 && (line[:3] == "+++" || line[:3] == "---"):
		case line[0] == '+':
			adds++
		case line[0] == '-':
			removes++
		}
	}
	return adds, removes
}
