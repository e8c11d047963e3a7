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
)

// 📏 ToOneLine joins one-field-per-line records into one line per record.
//
// The header is copied as is. In the body, non-blank lines are collected and
// written space-joined when a blank line, a line ending in <eor>, or the end
// of input is reached.
func ToOneLine(doc string) string {
	header, body := Split(doc)

	var b strings.Builder
	b.Grow(len(doc))
	b.WriteString(header)

	var pending []string
	flush := func() {
		if len(pending) == 0 {
			return
		}
		b.WriteString(strings.Join(pending, " "))
		b.WriteByte('\n')
		pending = pending[:0]
	}

	for _, line := range strings.Split(body, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			flush()
			continue
		}
		pending = append(pending, s)
		if hasSuffixFold(s, EndOfRecord) {
			flush()
		}
	}
	flush()

	return b.String()
}

// 📐 ToMultiLine writes every field of every record on its own line,
// followed by the marker line and a blank line.
//
// Non-field text inside a record is kept on a line of its own. Non-blank text
// after the last record is appended without its leading line breaks.
func ToMultiLine(doc string) string {
	d := Parse(doc)

	var b strings.Builder
	b.Grow(len(doc) + 2*len(d.Records))
	b.WriteString(d.Header)

	for _, r := range d.Records {
		pos := 0
		for f := range Fields(r.Text) {
			writeGap(&b, r.Text[pos:f.Start])
			b.WriteString(r.Text[f.Start:f.End])
			b.WriteByte('\n')
			pos = f.End
		}
		writeGap(&b, r.Text[pos:])
		b.WriteString(r.Marker)
		b.WriteString("\n\n")
	}

	if strings.TrimSpace(d.Trailing) != "" {
		b.WriteString(strings.TrimLeft(d.Trailing, "\r\n"))
	}

	return b.String()
}

// writeGap keeps non-blank text found between fields on a line of its own.
func writeGap(b *strings.Builder, s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	b.WriteString(s)
	b.WriteByte('\n')
}
