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
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🎛️ Mode selects what Process does with a document.
type Mode int

const (
	ModeEdit      Mode = iota // add and delete fields
	ModeOneLine               // one record per line
	ModeMultiLine             // one field per line
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeOneLine:
		return "oneline"
	case ModeMultiLine:
		return "multiline"
	default:
		return "unknown"
	}
}

// ParseMode parses edit, oneline or multiline. Empty means edit.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edit":
		return ModeEdit, nil
	case "oneline", "one-line":
		return ModeOneLine, nil
	case "multiline", "multi-line":
		return ModeMultiLine, nil
	default:
		return ModeEdit, errors.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// 🔧 Options is the full operation set for one run.
type Options struct {
	Mode        Mode
	Add         []FieldValue // applied in order
	Delete      []string     // applied before Add
	Override    bool
	Concurrency int // records edited in parallel when > 1
}

// 🔍 Validate reports configuration errors before any parsing happens.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeEdit:
		if len(o.Add) == 0 && len(o.Delete) == 0 {
			return ErrNoOperation
		}
	case ModeOneLine, ModeMultiLine:
	default:
		return errors.Errorf("%w: %d", ErrUnknownMode, int(o.Mode))
	}
	if o.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", o.Concurrency)
	}
	for _, fv := range o.Add {
		if !ValidName(fv.Name) {
			return errors.Errorf("%w: %q", ErrInvalidFieldName, fv.Name)
		}
	}
	if _, err := NewMatcher(o.Delete); err != nil {
		return err
	}
	return nil
}

// 📊 Stats counts what a run did.
type Stats struct {
	Records  int
	Modified int
	Added    int
	Replaced int
	Deleted  int
}

// 📦 Result is the outcome of a run.
type Result struct {
	Output  string
	Changes []RecordChange // one per record, edit mode only
	Stats   Stats
}

// 🏃 Process validates opts and runs the selected mode.
func Process(ctx context.Context, doc string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}
	if opts.Mode == ModeEdit {
		return Edit(ctx, doc, opts)
	}
	out, err := Convert(ctx, doc, opts.Mode)
	if err != nil {
		return nil, err
	}
	_, body := Split(out)
	records, _ := Segment(body)
	return &Result{Output: out, Stats: Stats{Records: len(records)}}, nil
}

// ✏️ Edit applies deletes and adds to every record of doc.
//
// Every record is edited before anything is returned. When records conflict
// the error for the lowest numbered one is returned and there is no output.
// An empty operation set returns doc unchanged.
func Edit(ctx context.Context, doc string, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	editor, err := NewEditor(opts.Add, opts.Delete, opts.Override)
	if err != nil {
		return nil, errors.Errorf("creating editor: %w", err)
	}

	d := Parse(doc)
	logger.Debug().
		Int("records", len(d.Records)).
		Int("header_bytes", len(d.Header)).
		Int("trailing_bytes", len(d.Trailing)).
		Msg("parsed document")

	edited := make([]Record, len(d.Records))
	changes := make([]RecordChange, len(d.Records))
	errs := make([]error, len(d.Records))

	if opts.Concurrency > 1 && len(d.Records) > 1 {
		var g errgroup.Group
		g.SetLimit(opts.Concurrency)
		for i, rec := range d.Records {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				edited[i], changes[i], errs[i] = editor.EditRecord(rec)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, errors.Errorf("editing records: %w", err)
		}
	} else {
		for i, rec := range d.Records {
			if err := ctx.Err(); err != nil {
				return nil, errors.Errorf("editing records: %w", err)
			}
			edited[i], changes[i], errs[i] = editor.EditRecord(rec)
		}
	}

	for i, err := range errs {
		if err != nil {
			logger.Debug().Int("record", i+1).Err(err).Msg("record conflict")
			return nil, errors.WithStack(err)
		}
	}

	var stats Stats
	stats.Records = len(edited)
	for _, c := range changes {
		stats.Added += len(c.Added)
		stats.Replaced += len(c.Replaced)
		stats.Deleted += len(c.Deleted)
		if c.Modified() {
			stats.Modified++
			logger.Debug().
				Int("record", c.Record).
				Strs("added", c.Added).
				Strs("replaced", c.Replaced).
				Strs("deleted", c.Deleted).
				Msg("edited record")
		}
	}

	out := &Document{Header: d.Header, Records: edited, Trailing: d.Trailing}

	logger.Info().
		Int("records", stats.Records).
		Int("modified", stats.Modified).
		Int("added", stats.Added).
		Int("replaced", stats.Replaced).
		Int("deleted", stats.Deleted).
		Msg("edit complete")

	return &Result{
		Output:  out.String(),
		Changes: changes,
		Stats:   stats,
	}, nil
}

// 📐 Convert rewrites the layout of doc.
func Convert(ctx context.Context, doc string, mode Mode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Errorf("converting: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("mode", mode.String()).Msg("converting layout")

	switch mode {
	case ModeOneLine:
		return ToOneLine(doc), nil
	case ModeMultiLine:
		return ToMultiLine(doc), nil
	default:
		return "", errors.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}
