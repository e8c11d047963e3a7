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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/adif/pkg/adif"
	"github.com/walteh/adif/pkg/log"
	"gitlab.com/tozd/go/errors"
)

const testLog = "ADIF export\n<EOH>\n" +
	"<CALL:4>W1AW <N3FJP_PCNAME:4>SHCK <eor>\n" +
	"<CALL:4>K1JT <eor>\n"

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "add_with_separate_value",
			args: []string{"fields", "--add-OPERATOR", "KN2D", "log.adi"},
			want: []string{"fields", "--add", "OPERATOR=KN2D", "log.adi"},
		},
		{
			name: "add_with_equals",
			args: []string{"fields", "--add-MY_GRIDSQUARE=EL87"},
			want: []string{"fields", "--add", "MY_GRIDSQUARE=EL87"},
		},
		{
			name: "delete_pattern",
			args: []string{"fields", "--delete-N3FJP%", "log.adi"},
			want: []string{"fields", "--delete", "N3FJP%", "log.adi"},
		},
		{
			name: "plain_flags_untouched",
			args: []string{"fields", "--add", "A=1", "--delete", "B", "--override"},
			want: []string{"fields", "--add", "A=1", "--delete", "B", "--override"},
		},
		{
			name: "add_without_value_left_alone",
			args: []string{"fields", "--add-OPERATOR"},
			want: []string{"fields", "--add-OPERATOR"},
		},
		{
			name: "stops_at_double_dash",
			args: []string{"fields", "--", "--delete-X"},
			want: []string{"fields", "--", "--delete-X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.args))
		})
	}
}

func TestFieldsCommand(t *testing.T) {
	t.Run("stdin_to_stdout_with_legacy_flags", func(t *testing.T) {
		res := run(t, testLog, "fields", "--add-OPERATOR", "KN2D", "--delete-N3FJP%", "-")
		require.NoError(t, res.err, "fields should succeed")
		assert.Equal(t, "ADIF export\n<EOH>\n"+
			"<CALL:4>W1AW <OPERATOR:4>KN2D <eor>\n"+
			"<CALL:4>K1JT <OPERATOR:4>KN2D <eor>\n", res.stdout)
		assert.Contains(t, res.stderr, "edited 2 of 2 records")
	})

	t.Run("file_to_file", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "log.adi")
		output := filepath.Join(dir, "out.adi")
		require.NoError(t, os.WriteFile(input, []byte(testLog), 0644))

		res := run(t, "", "fields", "--add", "OPERATOR=KN2D", "--jobs", "4", "-v", input, "-o", output)
		require.NoError(t, res.err, "fields should succeed")
		assert.Empty(t, res.stdout, "nothing should go to stdout")

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<CALL:4>K1JT <OPERATOR:4>KN2D <eor>")
		assert.Contains(t, res.stderr, "#2")
	})

	t.Run("conflict", func(t *testing.T) {
		doc := "<CALL:4>W1AW <OPERATOR:4>W1AW <eor>\n"
		res := run(t, doc, "fields", "--add", "OPERATOR=KN2D", "-")
		require.Error(t, res.err)

		var conflict *adif.ConflictError
		require.True(t, errors.As(res.err, &conflict), "error should be a ConflictError")
		assert.Equal(t, 1, conflict.Record)
		assert.Equal(t, "OPERATOR", conflict.Field)
		assert.Empty(t, res.stdout, "no partial output")
	})

	t.Run("override", func(t *testing.T) {
		doc := "<CALL:4>W1AW <OPERATOR:4>W1AW<eor>\n"
		res := run(t, doc, "fields", "--add", "OPERATOR=KN2D", "--override", "-")
		require.NoError(t, res.err)
		assert.Equal(t, "<CALL:4>W1AW <OPERATOR:4>KN2D<eor>\n", res.stdout)
	})

	t.Run("missing_input", func(t *testing.T) {
		res := run(t, "", "fields", "--add", "OPERATOR=KN2D")
		assert.ErrorIs(t, res.err, adif.ErrNoInput)
	})

	t.Run("malformed_add", func(t *testing.T) {
		res := run(t, testLog, "fields", "--add", "OPERATOR", "-")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "malformed --add")
	})

	t.Run("no_operations", func(t *testing.T) {
		res := run(t, testLog, "fields", "-")
		assert.ErrorIs(t, res.err, adif.ErrNoOperation)
	})

	t.Run("diff", func(t *testing.T) {
		res := run(t, testLog, "fields", "--delete", "N3FJP_*", "--diff", "-")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "--- stdin")
		assert.Contains(t, res.stdout, "+<CALL:4>W1AW <eor>")
	})
}

func TestConvertCommands(t *testing.T) {
	multi := "<EOH>\n<CALL:4>W1AW\n<BAND:3>20m\n<eor>\n\n"
	one := "<EOH>\n<CALL:4>W1AW <BAND:3>20m <eor>\n"

	t.Run("oneline", func(t *testing.T) {
		res := run(t, multi, "oneline", "-")
		require.NoError(t, res.err)
		assert.Equal(t, one, res.stdout)
	})

	t.Run("multiline", func(t *testing.T) {
		res := run(t, one, "multiline", "-")
		require.NoError(t, res.err)
		assert.Equal(t, "<EOH>\n<CALL:4>W1AW\n<BAND:3>20m\n<eor>\n\n", res.stdout)
	})

	t.Run("positional_output", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "one.adi")
		res := run(t, multi, "oneline", "-", output)
		require.NoError(t, res.err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, one, string(data))
	})

	t.Run("output_twice", func(t *testing.T) {
		res := run(t, multi, "oneline", "-", "a.adi", "-o", "b.adi")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "output given both")
	})
}

func TestRecipeRun(t *testing.T) {
	dir := t.TempDir()
	recipe := filepath.Join(dir, "recipe.yaml")
	require.NoError(t, os.WriteFile(recipe, []byte("delete:\n  - N3FJP%\nadd:\n  - name: OPERATOR\n    value: KN2D\n"), 0644))

	t.Run("root_runs_recipe", func(t *testing.T) {
		res := run(t, testLog, "--config", recipe, "-")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "<CALL:4>W1AW <OPERATOR:4>KN2D <eor>")
		assert.Contains(t, res.stderr, "using recipe")
	})

	t.Run("fields_appends_to_recipe", func(t *testing.T) {
		res := run(t, testLog, "fields", "--config", recipe, "--add", "MY_GRIDSQUARE=EL87", "-")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "<CALL:4>K1JT <OPERATOR:4>KN2D <MY_GRIDSQUARE:4>EL87 <eor>")
	})

	t.Run("bad_recipe", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("mode: sideways\n"), 0644))

		res := run(t, testLog, "--config", bad, "-")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "loading config")
	})

	t.Run("no_config_shows_help", func(t *testing.T) {
		res := run(t, "", "log.adi")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Usage:")
	})
}

func TestReportError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "conflict_names_record_and_field",
			err:  errors.Errorf("editing: %w", &adif.ConflictError{Record: 7, Field: "OPERATOR"}),
			want: "❌ record 7 already has <OPERATOR> with a different value; pass --override to replace it",
		},
		{
			name: "other_errors_print_message",
			err:  errors.WithStack(adif.ErrNoInput),
			want: "❌ no input specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			reportError(log.New(buf, zerolog.Nop()), tt.err)
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}
