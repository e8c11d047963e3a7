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

	"gitlab.com/tozd/go/errors"
)

// 🔧 FieldValue is one add operation.
type FieldValue struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// 📋 RecordChange lists what the editor did to one record.
type RecordChange struct {
	Record   int
	Added    []string
	Replaced []string
	Deleted  []string
}

// Modified reports whether the record text changed.
func (c RecordChange) Modified() bool {
	return len(c.Added) > 0 || len(c.Replaced) > 0 || len(c.Deleted) > 0
}

// ✏️ Editor applies deletes and then adds to single records.
//
// An Editor holds no mutable state and is safe for concurrent use.
type Editor struct {
	deletes  *Matcher
	adds     []FieldValue
	override bool
}

// 🏭 NewEditor validates the operation set and builds an Editor.
func NewEditor(adds []FieldValue, deletes []string, override bool) (*Editor, error) {
	for _, fv := range adds {
		if !ValidName(fv.Name) {
			return nil, errors.Errorf("%w: %q", ErrInvalidFieldName, fv.Name)
		}
	}
	m, err := NewMatcher(deletes)
	if err != nil {
		return nil, err
	}
	return &Editor{
		deletes:  m,
		adds:     adds,
		override: override,
	}, nil
}

// ✏️ EditRecord returns the edited record and what changed.
//
// The marker is carried over untouched. A *ConflictError is returned when an
// add target already holds a different value and override is off.
func (e *Editor) EditRecord(rec Record) (Record, RecordChange, error) {
	change := RecordChange{Record: rec.Number}
	text := rec.Text

	if !e.deletes.Empty() {
		text, change.Deleted = e.deleteFields(text)
	}

	for _, fv := range e.adds {
		existing, ok := Lookup(text, fv.Name)
		switch {
		case ok && existing.Value == fv.Value:
			continue
		case ok && !e.override:
			return Record{}, change, &ConflictError{Record: rec.Number, Field: fv.Name}
		case ok:
			text = text[:existing.Start] + Format(fv.Name, fv.Value) + text[existing.End:]
			change.Replaced = append(change.Replaced, fv.Name)
		default:
			text = appendField(text, Format(fv.Name, fv.Value))
			change.Added = append(change.Added, fv.Name)
		}
	}

	return Record{Number: rec.Number, Text: text, Marker: rec.Marker}, change, nil
}

// deleteFields drops matching fields plus the spaces and tabs after them.
func (e *Editor) deleteFields(text string) (string, []string) {
	var (
		b       strings.Builder
		deleted []string
		pos     int
	)
	for f := range Fields(text) {
		if !e.deletes.Match(f.Name) {
			continue
		}
		b.WriteString(text[pos:f.Start])
		pos = skipBlanks(text, f.End)
		deleted = append(deleted, f.Name)
	}
	if len(deleted) == 0 {
		return text, nil
	}
	b.WriteString(text[pos:])
	return b.String(), deleted
}

// 📐 MultiLine reports whether a record puts its fields on separate lines.
func MultiLine(text string) bool {
	return strings.Contains(strings.TrimSpace(text), "\n")
}

// appendField adds field after the record's last content, following the
// record's layout style.
func appendField(text, field string) string {
	end := contentEnd(text)
	head, tail := text[:end], text[end:]

	if MultiLine(text) {
		nl := "\n"
		if strings.Contains(text, "\r\n") {
			nl = "\r\n"
		}
		return head + nl + field + nl
	}
	if strings.TrimSpace(head) == "" {
		return text + field
	}
	return head + " " + field + tail
}

// contentEnd is the offset after the last non-whitespace byte, never inside
// a field value.
func contentEnd(text string) int {
	end := len(strings.TrimRight(text, " \t\r\n"))
	for f := range Fields(text) {
		if f.End > end {
			end = f.End
		}
	}
	return end
}

func skipBlanks(text string, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	return pos
}
