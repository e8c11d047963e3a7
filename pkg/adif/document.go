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

const (
	// EndOfHeader ends the optional header section.
	EndOfHeader = "<EOH>"
	// EndOfRecord ends every record.
	EndOfRecord = "<eor>"
)

// 📄 Record is the raw text of one record.
type Record struct {
	Number int    // 1-based position in the document
	Text   string // record text without the marker
	Marker string // end-of-record marker as written
}

// 📝 String returns the record text with its marker reattached.
func (r Record) String() string {
	return r.Text + r.Marker
}

// 📚 Document is a parsed ADIF file.
//
// Header + every record + Trailing reproduces the input exactly.
type Document struct {
	Header   string
	Records  []Record
	Trailing string
}

// 🔍 Parse splits doc into header, records and trailing text.
func Parse(doc string) *Document {
	header, body := Split(doc)
	records, trailing := Segment(body)
	return &Document{
		Header:   header,
		Records:  records,
		Trailing: trailing,
	}
}

// 📝 String reassembles the document.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(d.Header)
	for _, r := range d.Records {
		b.WriteString(r.Text)
		b.WriteString(r.Marker)
	}
	b.WriteString(d.Trailing)
	return b.String()
}

// ✂️ Split separates the header from the body.
//
// The header runs through the first <EOH> (any case) plus one line break.
// Without a marker the header is empty and everything is body.
func Split(doc string) (header, body string) {
	i := indexFold(doc, EndOfHeader, 0)
	if i < 0 {
		return "", doc
	}
	end := i + len(EndOfHeader)
	switch {
	case strings.HasPrefix(doc[end:], "\r\n"):
		end += 2
	case strings.HasPrefix(doc[end:], "\n"):
		end++
	}
	return doc[:end], doc[end:]
}

// 📦 Segment cuts body into records at every <eor> (any case) that is not
// inside a field value.
//
// Text after the last marker is returned as trailing and is not a record.
func Segment(body string) ([]Record, string) {
	var records []Record
	pos := 0
	for {
		i := nextMarker(body, pos)
		if i < 0 {
			break
		}
		end := i + len(EndOfRecord)
		records = append(records, Record{
			Number: len(records) + 1,
			Text:   body[pos:i],
			Marker: body[i:end],
		})
		pos = end
	}
	return records, body[pos:]
}

// nextMarker finds the first <eor> at or after from, skipping any that
// fall inside a field value as measured by its declared length.
func nextMarker(body string, from int) int {
	i := indexFold(body, EndOfRecord, from)
	if i < 0 {
		return -1
	}
	for f := range Fields(body[from:]) {
		start, end := from+f.Start, from+f.End
		if i < start {
			return i
		}
		if i < end {
			i = indexFold(body, EndOfRecord, end)
			if i < 0 {
				return -1
			}
		}
	}
	return i
}

// indexFold finds the first ASCII case-insensitive match of marker in s at
// or after from.
func indexFold(s, marker string, from int) int {
	for i := from; i+len(marker) <= len(s); i++ {
		if s[i] == '<' && strings.EqualFold(s[i:i+len(marker)], marker) {
			return i
		}
	}
	return -1
}

// hasSuffixFold reports whether s ends with marker, ignoring case.
func hasSuffixFold(s, marker string) bool {
	return len(s) >= len(marker) && strings.EqualFold(s[len(s)-len(marker):], marker)
}
