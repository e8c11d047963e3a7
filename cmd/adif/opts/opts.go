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

package opts

import (
	"io"

	"github.com/walteh/adif/pkg/config"
	"github.com/walteh/adif/pkg/operation"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Flags
	ConfigFile string
	Debug      bool
	Output     string
	Diff       bool

	// Set up before any command runs; the console travels in the context
	Recipe *config.Recipe
	Runner *operation.OperationRunner
	Stdin  io.Reader
	Stdout io.Writer
}

// OperationOptions returns the operation options shared by every command
func (o *RootOpts) OperationOptions(input string) operation.Options {
	return operation.Options{
		Input:  input,
		Output: o.Output,
		Stdin:  o.Stdin,
		Stdout: o.Stdout,
		Diff:   o.Diff,
	}
}
