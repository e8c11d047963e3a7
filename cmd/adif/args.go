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
	"strings"
)

const (
	addPrefix    = "--add-"
	deletePrefix = "--delete-"
)

// normalizeArgs rewrites the per-field flag spellings into the flags cobra
// knows:
//
//	--add-NAME VALUE   -> --add NAME=VALUE
//	--add-NAME=VALUE   -> --add NAME=VALUE
//	--delete-PATTERN   -> --delete PATTERN
//
// Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args)+4)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, addPrefix) && len(arg) > len(addPrefix):
			name := arg[len(addPrefix):]
			if strings.Contains(name, "=") {
				out = append(out, "--add", name)
				continue
			}
			if i+1 < len(args) {
				out = append(out, "--add", name+"="+args[i+1])
				i++
				continue
			}
			out = append(out, arg)
		case strings.HasPrefix(arg, deletePrefix) && len(arg) > len(deletePrefix):
			out = append(out, "--delete", arg[len(deletePrefix):])
		default:
			out = append(out, arg)
		}
	}
	return out
}
