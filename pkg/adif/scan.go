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
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

// 🏷️ Field is one tag-length-value field located inside a record.
//
// Offsets are byte offsets into the text the field was scanned from.
// text[Start:End] is the exact extent of the tag plus its value.
type Field struct {
	Name       string // field name, casing as written
	Length     int    // declared length in characters
	Type       string // optional data type indicator, "" when absent
	Value      string // exactly Length characters (fewer if the text ended early)
	Start      int    // offset of '<'
	ValueStart int    // offset just past '>'
	End        int    // offset just past the value
}

// 📝 Tag returns the field's tag as written, e.g. <CALL:4>.
func (f Field) Tag(text string) string {
	return text[f.Start:f.ValueStart]
}

// 🔍 Fields lazily yields every field of text in order.
//
// A declared length is trusted: the value is consumed verbatim and never
// scanned for '<', so values holding whitespace or tag-like text stay whole.
// Text that does not form a valid tag is skipped. Each call starts over.
func Fields(text string) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		pos := 0
		for pos < len(text) {
			i := strings.IndexByte(text[pos:], '<')
			if i < 0 {
				return
			}
			start := pos + i
			f, ok := parseTag(text, start)
			if !ok {
				pos = start + 1
				continue
			}
			if !yield(f) {
				return
			}
			pos = f.End
		}
	}
}

// 🔍 Lookup finds the first field named name (case-insensitive).
func Lookup(text, name string) (Field, bool) {
	for f := range Fields(text) {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// 📝 Format builds <name:N>value where N is the character count of value.
func Format(name, value string) string {
	return fmt.Sprintf("<%s:%d>%s", name, utf8.RuneCountInString(value), value)
}

// ✅ ValidName reports whether name is a legal field identifier.
func ValidName(name string) bool {
	if name == "" || !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNamePart(name[i]) {
			return false
		}
	}
	return true
}

// parseTag parses <name:len> or <name:len:T> at text[start] == '<'.
func parseTag(text string, start int) (Field, bool) {
	i := start + 1
	if i >= len(text) || !isNameStart(text[i]) {
		return Field{}, false
	}
	nameStart := i
	for i++; i < len(text) && isNamePart(text[i]); i++ {
	}
	name := text[nameStart:i]

	if i >= len(text) || text[i] != ':' {
		return Field{}, false
	}
	i++
	digits := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == digits {
		return Field{}, false
	}
	length, err := strconv.Atoi(text[digits:i])
	if err != nil {
		return Field{}, false
	}

	typ := ""
	if i < len(text) && text[i] == ':' {
		if i+2 >= len(text) || !isLetter(text[i+1]) || text[i+2] != '>' {
			return Field{}, false
		}
		typ = text[i+1 : i+2]
		i += 2
	}
	if i >= len(text) || text[i] != '>' {
		return Field{}, false
	}
	i++

	end := advance(text, i, length)
	return Field{
		Name:       name,
		Length:     length,
		Type:       typ,
		Value:      text[i:end],
		Start:      start,
		ValueStart: i,
		End:        end,
	}, true
}

// advance moves n characters forward from pos, stopping at the end of s.
func advance(s string, pos, n int) int {
	for ; n > 0 && pos < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameStart(c byte) bool {
	return isLetter(c) || c == '_'
}

func isNamePart(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
