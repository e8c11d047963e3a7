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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/adif/cmd/adif/opts"
	"github.com/walteh/adif/pkg/adif"
	"github.com/walteh/adif/pkg/log"
	"github.com/walteh/adif/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewOneLineCmd creates the command that puts each record on one line
func NewOneLineCmd(root *opts.RootOpts) *cobra.Command {
	return newConvertCmd(root, adif.ModeOneLine,
		"Put every record on a single line",
		`Oneline joins records written one field per line into a single line
per record. The header is copied unchanged.`,
		`  adif oneline log.adi one.adi
  adif oneline log.adi -o one.adi
  adif oneline --diff log.adi`)
}

// NewMultiLineCmd creates the command that puts each field on its own line
func NewMultiLineCmd(root *opts.RootOpts) *cobra.Command {
	return newConvertCmd(root, adif.ModeMultiLine,
		"Put every field on its own line",
		`Multiline writes every field of every record on its own line, followed
by the end-of-record marker and a blank line. The header is copied
unchanged.`,
		`  adif multiline log.adi multi.adi
  cat log.adi | adif multiline -`)
}

func newConvertCmd(root *opts.RootOpts, mode adif.Mode, short, long, example string) *cobra.Command {
	return &cobra.Command{
		Use:     mode.String() + " [flags] INPUT [OUTPUT]",
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				return errors.WithStack(adif.ErrNoInput)
			}

			opOpts := root.OperationOptions(args[0])
			if len(args) == 2 {
				if cmd.Flags().Changed("output-file") {
					return errors.Errorf("output given both as argument and --output-file")
				}
				opOpts.Output = args[1]
			}
			opOpts.Engine = adif.Options{Mode: mode}

			return root.Runner.Run(ctx, operation.NewConvertOperation(opOpts))
		},
	}
}

// NewRecipeRun runs the loaded recipe in whatever mode it names
func NewRecipeRun(root *opts.RootOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if root.ConfigFile == "" {
			return cmd.Help()
		}
		if len(args) == 0 {
			return errors.WithStack(adif.ErrNoInput)
		}

		engine, err := root.Recipe.Options()
		if err != nil {
			return errors.Errorf("reading recipe: %w", err)
		}
		if root.Recipe != nil {
			log.FromContext(ctx).Infof("using recipe %s (%s)", root.ConfigFile, root.Recipe)
		}

		opOpts := root.OperationOptions(args[0])
		opOpts.Engine = engine

		var op operation.Operation
		if engine.Mode == adif.ModeEdit {
			op = operation.NewEditOperation(opOpts)
		} else {
			op = operation.NewConvertOperation(opOpts)
		}
		return root.Runner.Run(ctx, op)
	}
}
