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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/adif/cmd/adif/opts"
	"github.com/walteh/adif/pkg/adif"
	"github.com/walteh/adif/pkg/log"
	"github.com/walteh/adif/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewFieldsCmd creates the command that adds and deletes fields
func NewFieldsCmd(root *opts.RootOpts) *cobra.Command {
	var (
		adds     []string
		deletes  []string
		override bool
		jobs     int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "fields [flags] INPUT",
		Short: "Add and delete fields in every record",
		Long: `Fields edits every record of an ADIF log.

Deletes run first: every field whose name matches a pattern is removed.
Adds run second, in the order given. A record that already has the field
with the same value is left alone; a different value stops the run unless
--override is set. Nothing is written when any record fails.

Patterns are case-insensitive globs; % is accepted in place of *.
The older spellings --add-NAME VALUE and --delete-PATTERN also work.`,
		Example: `  adif fields --add OPERATOR=KN2D --add MY_GRIDSQUARE=EL87 log.adi -o out.adi
  adif fields --delete 'N3FJP%' --delete 'APP_*' log.adi
  adif fields --add-OPERATOR KN2D --override --diff log.adi
  cat log.adi | adif fields --delete 'N3FJP*' -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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

			for _, a := range adds {
				fv, err := parseAdd(a)
				if err != nil {
					return err
				}
				engine.Add = append(engine.Add, fv)
			}
			engine.Delete = append(engine.Delete, deletes...)
			engine.Override = engine.Override || override
			if cmd.Flags().Changed("jobs") {
				engine.Concurrency = jobs
			}

			opOpts := root.OperationOptions(args[0])
			opOpts.Engine = engine
			opOpts.Verbose = verbose

			return root.Runner.Run(ctx, operation.NewEditOperation(opOpts))
		},
	}

	cmd.Flags().StringArrayVar(&adds, "add", nil, "add a field to every record, as NAME=VALUE (repeatable)")
	cmd.Flags().StringArrayVar(&deletes, "delete", nil, "delete fields whose name matches PATTERN (repeatable)")
	cmd.Flags().BoolVar(&override, "override", false, "replace existing fields that have a different value")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "records to edit in parallel")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every modified record")

	return cmd
}

// parseAdd splits NAME=VALUE on the first "="
func parseAdd(s string) (adif.FieldValue, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return adif.FieldValue{}, errors.Errorf("malformed --add %q: expected NAME=VALUE", s)
	}
	return adif.FieldValue{Name: name, Value: value}, nil
}
