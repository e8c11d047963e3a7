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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantHeader string
		wantBody   string
	}{
		{
			name:       "header_with_newline",
			doc:        "Log export\n<ADIF_VER:5>3.1.4\n<EOH>\n<CALL:4>W1AW <eor>\n",
			wantHeader: "Log export\n<ADIF_VER:5>3.1.4\n<EOH>\n",
			wantBody:   "<CALL:4>W1AW <eor>\n",
		},
		{
			name:       "lowercase_marker_crlf",
			doc:        "hdr <eoh>\r\n<CALL:4>W1AW<EOR>",
			wantHeader: "hdr <eoh>\r\n",
			wantBody:   "<CALL:4>W1AW<EOR>",
		},
		{
			name:       "only_one_line_break_taken",
			doc:        "<EOH>\n\n<CALL:4>W1AW<eor>",
			wantHeader: "<EOH>\n",
			wantBody:   "\n<CALL:4>W1AW<eor>",
		},
		{
			name:       "marker_at_end",
			doc:        "header<EOH>",
			wantHeader: "header<EOH>",
			wantBody:   "",
		},
		{
			name:       "headerless",
			doc:        "<CALL:4>W1AW <eor>\n",
			wantHeader: "",
			wantBody:   "<CALL:4>W1AW <eor>\n",
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body := Split(tt.doc)
			assert.Equal(t, tt.wantHeader, header, "header should match")
			assert.Equal(t, tt.wantBody, body, "body should match")
			assert.Equal(t, tt.doc, header+body, "split should be lossless")
		})
	}
}

func TestSegment(t *testing.T) {
	records, trailing := Segment("<CALL:4>W1AW <eor>\n<CALL:4>K1JT <EOR>\npartial <CALL:2>N0")

	require.Len(t, records, 2)
	assert.Equal(t, Record{Number: 1, Text: "<CALL:4>W1AW ", Marker: "<eor>"}, records[0])
	assert.Equal(t, Record{Number: 2, Text: "\n<CALL:4>K1JT ", Marker: "<EOR>"}, records[1])
	assert.Equal(t, "\npartial <CALL:2>N0", trailing, "text after the last marker is trailing")
}

func TestSegmentMarkerInsideValue(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantTexts    []string
		wantTrailing string
	}{
		{
			name:      "marker_inside_value",
			body:      "<COMMENT:5><eor><eor>\n<CALL:4>W1AW<eor>",
			wantTexts: []string{"<COMMENT:5><eor>", "\n<CALL:4>W1AW"},
		},
		{
			name:      "value_ends_before_marker",
			body:      "<COMMENT:1>a<eor>b<eor>",
			wantTexts: []string{"<COMMENT:1>a", "b"},
		},
		{
			name:         "marker_only_inside_value",
			body:         "<NOTES:9>x <eor> y tail",
			wantTexts:    nil,
			wantTrailing: "<NOTES:9>x <eor> y tail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, trailing := Segment(tt.body)

			var texts []string
			for _, r := range records {
				texts = append(texts, r.Text)
			}
			assert.Equal(t, tt.wantTexts, texts, "record texts should match")
			assert.Equal(t, tt.wantTrailing, trailing, "trailing text should match")
		})
	}
}

func TestSegmentNoMarkers(t *testing.T) {
	records, trailing := Segment("<CALL:4>W1AW\n")
	assert.Empty(t, records)
	assert.Equal(t, "<CALL:4>W1AW\n", trailing)
}

func TestParseString(t *testing.T) {
	docs := []string{
		"",
		"<EOH>",
		"header <EOH>\n<CALL:4>W1AW <eor>\n<CALL:4>K1JT <eor>\n",
		"<CALL:4>W1AW<eor><CALL:4>K1JT<Eor> trailing",
		"no records at all",
	}
	for _, doc := range docs {
		assert.Equal(t, doc, Parse(doc).String(), "parse then string should reproduce %q", doc)
	}
}
