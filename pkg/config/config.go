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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/adif/pkg/adif"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for recipe parsers
type Parser interface {
	// 📝 Parse parses the recipe from bytes
	Parse(ctx context.Context, data []byte) (*Recipe, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ➕ AddField is one field to add to every record.
type AddField struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// 📚 Recipe is a saved set of edits.
type Recipe struct {
	Mode     string     `json:"mode,omitempty" yaml:"mode,omitempty"`
	Override bool       `json:"override,omitempty" yaml:"override,omitempty"`
	Delete   []string   `json:"delete,omitempty" yaml:"delete,omitempty"`
	Add      []AddField `json:"add,omitempty" yaml:"add,omitempty"`
	Jobs     int        `json:"jobs,omitempty" yaml:"jobs,omitempty"`
}

// 🎯 Load loads a recipe from a file
func Load(ctx context.Context, path string) (*Recipe, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading recipe")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading recipe file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	rcp, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing recipe: %w", err)
	}

	if err := rcp.Validate(); err != nil {
		return nil, errors.Errorf("validating recipe: %w", err)
	}

	logger.Debug().
		Str("mode", rcp.Mode).
		Int("add", len(rcp.Add)).
		Int("delete", len(rcp.Delete)).
		Bool("override", rcp.Override).
		Msg("loaded recipe")

	return rcp, nil
}

// 🔍 Validate checks the recipe and fills in defaults
func (r *Recipe) Validate() error {
	r.Mode = strings.ToLower(strings.TrimSpace(r.Mode))
	if r.Mode == "" {
		r.Mode = adif.ModeEdit.String()
	}
	if _, err := adif.ParseMode(r.Mode); err != nil {
		return err
	}
	if r.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", r.Jobs)
	}
	for i, a := range r.Add {
		if a.Name == "" {
			return errors.Errorf("add %d: name is required", i)
		}
		if !adif.ValidName(a.Name) {
			return errors.Errorf("add %d: %w: %q", i, adif.ErrInvalidFieldName, a.Name)
		}
	}
	for i, d := range r.Delete {
		if strings.TrimSpace(d) == "" {
			return errors.Errorf("delete %d: pattern is required", i)
		}
	}
	return nil
}

// 🔧 Options converts the recipe into engine options. A nil recipe gives
// empty edit options.
func (r *Recipe) Options() (adif.Options, error) {
	if r == nil {
		return adif.Options{}, nil
	}
	mode, err := adif.ParseMode(r.Mode)
	if err != nil {
		return adif.Options{}, err
	}
	opts := adif.Options{
		Mode:        mode,
		Delete:      append([]string(nil), r.Delete...),
		Override:    r.Override,
		Concurrency: r.Jobs,
	}
	for _, a := range r.Add {
		opts.Add = append(opts.Add, adif.FieldValue{Name: a.Name, Value: a.Value})
	}
	return opts, nil
}

// 📝 String returns a short description of the recipe
func (r *Recipe) String() string {
	names := make([]string, 0, len(r.Add))
	for _, a := range r.Add {
		names = append(names, a.Name)
	}
	return fmt.Sprintf("%s add=[%s] delete=[%s] override=%t",
		r.Mode, strings.Join(names, ","), strings.Join(r.Delete, ","), r.Override)
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
