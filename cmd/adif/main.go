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
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/walteh/adif/pkg/adif"
	"github.com/walteh/adif/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	console := log.New(os.Stderr, zerolog.Nop())
	ctx = log.NewContext(ctx, console)

	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))

	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(console, err)
		os.Exit(1)
	}
}

// reportError prints a terminal error; field conflicts get a hint
func reportError(console *log.Logger, err error) {
	var conflict *adif.ConflictError
	if errors.As(err, &conflict) {
		console.Errorf("record %d already has <%s> with a different value; pass --override to replace it",
			conflict.Record, conflict.Field)
		return
	}
	console.Error(err.Error())
}
