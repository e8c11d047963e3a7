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

package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/adif/pkg/adif"
)

// 🎨 Display configuration
const (
	recordIndent = 4 // spaces to indent record entries
	recordWidth  = 8 // width for the record label
)

// 🎯 Logger writes user-facing progress to a console and mirrors every
// line to zerolog at debug level.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🔍 Lookup gets the logger from context, reporting whether one was set
func Lookup(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	return logger, ok && logger != nil
}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := Lookup(ctx)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatRecordChange formats one edited record for display
func (l *Logger) formatRecordChange(c adif.RecordChange) string {
	parts := make([]string, 0, len(c.Added)+len(c.Replaced)+len(c.Deleted))
	for _, name := range c.Deleted {
		parts = append(parts, color.New(color.FgRed).Sprint("✗ "+name))
	}
	for _, name := range c.Replaced {
		parts = append(parts, color.New(color.FgBlue).Sprint("⟳ "+name))
	}
	for _, name := range c.Added {
		parts = append(parts, color.New(color.FgGreen).Sprint("✓ "+name))
	}

	return fmt.Sprintf("%s%s %s",
		fmt.Sprintf("%*s", recordIndent, ""),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", recordWidth, "#"+strconv.Itoa(c.Record))),
		strings.Join(parts, "  "))
}

// 📝 LogRecordChange logs one edited record; unchanged records are skipped
func (l *Logger) LogRecordChange(ctx context.Context, c adif.RecordChange) {
	if !c.Modified() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatRecordChange(c))

	l.zlog.Debug().
		Int("record", c.Record).
		Strs("added", c.Added).
		Strs("replaced", c.Replaced).
		Strs("deleted", c.Deleted).
		Msg("record edited")
}

// 📊 Summary renders run counts as a table
func (l *Logger) Summary(stats adif.Stats) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{
		{"records", "modified", "added", "replaced", "deleted"},
		{
			strconv.Itoa(stats.Records),
			strconv.Itoa(stats.Modified),
			strconv.Itoa(stats.Added),
			strconv.Itoa(stats.Replaced),
			strconv.Itoa(stats.Deleted),
		},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		l.zlog.Debug().Err(err).Msg("rendering summary table")
		table = fmt.Sprintf("%d records, %d modified", stats.Records, stats.Modified)
	}
	fmt.Fprintln(l.console, table)

	l.zlog.Debug().
		Int("records", stats.Records).
		Int("modified", stats.Modified).
		Int("added", stats.Added).
		Int("replaced", stats.Replaced).
		Int("deleted", stats.Deleted).
		Msg("summary")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("adif")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
