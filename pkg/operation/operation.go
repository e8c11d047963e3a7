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

package operation

import (
	"context"
	"io"

	"github.com/walteh/adif/pkg/adif"
	"github.com/walteh/adif/pkg/diff"
	"github.com/walteh/adif/pkg/file"
	"github.com/walteh/adif/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one run of the tool over one log
type Operation interface {
	// Name describes the operation for logs
	Name() string
	// Execute reads the input, processes it and emits the output
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Input is the log path; "-" reads stdin
	Input string
	// Output is the destination path; "" or "-" writes stdout
	Output string
	// Stdin and Stdout back the "-" paths
	Stdin  io.Reader
	Stdout io.Writer
	// Engine holds the mode and the field operations
	Engine adif.Options
	// Diff prints a unified diff to Stdout instead of writing Output
	Diff bool
	// Verbose logs every modified record
	Verbose bool
}

// ErrNoConsole is returned when the context carries no console logger
var ErrNoConsole = errors.Base("console logger not found in context")

// 🧱 BaseOperation holds what edit and convert share
type BaseOperation struct {
	Options
	console *log.Logger
	result  *adif.Result
}

// ✅ prepare checks the options and picks up the console from ctx. It runs
// before anything is logged.
func (b *BaseOperation) prepare(ctx context.Context) error {
	if b.Input == "" {
		return errors.WithStack(adif.ErrNoInput)
	}
	console, ok := log.Lookup(ctx)
	if !ok {
		return errors.WithStack(ErrNoConsole)
	}
	b.console = console
	return nil
}

// 🏗️ NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Output == "" {
		opts.Output = file.Stdio
	}
	return BaseOperation{Options: opts}
}

// 📦 Result returns the engine result of the last successful Execute
func (b *BaseOperation) Result() *adif.Result {
	return b.result
}

// 🔄 process runs the engine and emits the output. Nothing is emitted when
// the engine fails.
func (b *BaseOperation) process(ctx context.Context) (*adif.Result, error) {
	doc, err := file.Read(ctx, b.Input, b.Stdin)
	if err != nil {
		return nil, errors.Errorf("reading input: %w", err)
	}

	res, err := adif.Process(ctx, doc, b.Engine)
	if err != nil {
		return nil, err
	}

	if b.Diff {
		if b.Output != file.Stdio {
			b.console.Warningf("diff only: %s is not written", b.Output)
		}
		if err := b.emitDiff(doc, res.Output); err != nil {
			return nil, err
		}
	} else if err := file.Write(ctx, b.Output, res.Output, b.Stdout); err != nil {
		return nil, errors.Errorf("writing output: %w", err)
	}

	b.result = res
	return res, nil
}

func (b *BaseOperation) emitDiff(before, after string) error {
	from := b.Input
	if from == file.Stdio {
		from = "stdin"
	}
	out, err := diff.Unified(before, after, from, from+" ("+b.Engine.Mode.String()+")")
	if err != nil {
		return err
	}
	if out == "" {
		b.console.Info("no changes")
		return nil
	}
	if _, err := io.WriteString(b.Stdout, out); err != nil {
		return errors.Errorf("writing diff: %w", err)
	}
	adds, removes := diff.Stats(out)
	b.console.Infof("diff: +%d -%d lines", adds, removes)
	return nil
}
