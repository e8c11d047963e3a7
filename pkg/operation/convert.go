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
)

// 🔀 NewConvertOperation creates an operation that changes record layout.
// opts.Engine.Mode selects the target layout.
func NewConvertOperation(opts Options) Operation {
	opts.Engine.Add = nil
	opts.Engine.Delete = nil
	return &ConvertOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🔀 ConvertOperation rewrites record layout without touching fields
type ConvertOperation struct {
	BaseOperation
}

// Name implements Operation
func (op *ConvertOperation) Name() string {
	return op.Engine.Mode.String() + " " + op.Input
}

// 🏃 Execute runs the convert operation
func (op *ConvertOperation) Execute(ctx context.Context) error {
	if err := op.prepare(ctx); err != nil {
		return err
	}
	op.console.Header("converting " + op.Input + " to " + op.Engine.Mode.String())

	res, err := op.process(ctx)
	if err != nil {
		return err
	}

	op.console.Successf("wrote %d records", res.Stats.Records)
	return nil
}
