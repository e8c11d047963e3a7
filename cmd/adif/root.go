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

package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/adif/cmd/adif/commands"
	"github.com/walteh/adif/cmd/adif/opts"
	"github.com/walteh/adif/pkg/config"
	"github.com/walteh/adif/pkg/log"
	"github.com/walteh/adif/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the adif command tree
func newRootCmd() *cobra.Command {
	root := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "adif [--config RECIPE] [INPUT]",
		Short: "Edit fields and layout of ADIF (.adi) logs",
		Long: `adif edits amateur radio logs in the ADIF tagged text format.

It adds or deletes fields in every record and converts between one record
per line and one field per line. Values are located by their declared
length, so text inside a value is never mistaken for a tag.

With --config and no subcommand, the recipe file is run on INPUT.`,
		Example: `  adif fields --add OPERATOR=KN2D log.adi -o out.adi
  adif oneline log.adi one.adi
  adif --config recipe.yaml log.adi`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(cmd.ErrOrStderr(), root.Debug)
			console := log.New(cmd.ErrOrStderr(), zlog)
			ctx := log.NewContext(zlog.WithContext(cmd.Context()), console)
			cmd.SetContext(ctx)

			root.Runner = operation.NewRunner(&zlog, true)
			root.Stdin = cmd.InOrStdin()
			root.Stdout = cmd.OutOrStdout()

			if root.ConfigFile != "" {
				rcp, err := config.Load(ctx, root.ConfigFile)
				if err != nil {
					return errors.Errorf("loading config: %w", err)
				}
				root.Recipe = rcp
				zlog.Debug().Str("recipe", rcp.String()).Msg("using recipe")
			}
			return nil
		},
		RunE: commands.NewRecipeRun(root),
	}

	addRootFlags(cmd, root)

	cmd.AddCommand(
		commands.NewFieldsCmd(root),
		commands.NewOneLineCmd(root),
		commands.NewMultiLineCmd(root),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, root *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&root.ConfigFile, "config", "c", "", "recipe file (.yaml, .yml, .hcl or .json)")
	cmd.PersistentFlags().BoolVarP(&root.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&root.Output, "output-file", "o", "-", "output path, - for stdout")
	cmd.PersistentFlags().BoolVar(&root.Diff, "diff", false, "print a unified diff instead of writing output")
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}
