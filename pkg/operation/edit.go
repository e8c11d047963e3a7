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

	"github.com/walteh/adif/pkg/adif"
)

// ✏️ NewEditOperation creates an operation that adds and deletes fields
func NewEditOperation(opts Options) Operation {
	opts.Engine.Mode = adif.ModeEdit
	return &EditOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// ✏️ EditOperation adds and deletes fields in every record
type EditOperation struct {
	BaseOperation
}

// Name implements Operation
func (op *EditOperation) Name() string {
	return "edit " + op.Input
}

// 🏃 Execute runs the edit operation
func (op *EditOperation) Execute(ctx context.Context) error {
	if err := op.prepare(ctx); err != nil {
		return err
	}
	op.console.Header("editing " + op.Input)

	res, err := op.process(ctx)
	if err != nil {
		return err
	}

	if op.Verbose {
		for _, c := range res.Changes {
			op.console.LogRecordChange(ctx, c)
		}
	}
	op.console.Summary(res.Stats)

	if res.Stats.Modified == 0 {
		op.console.Info("no records needed changes")
		return nil
	}
	op.console.Successf("edited %d of %d records", res.Stats.Modified, res.Stats.Records)
	return nil
}
