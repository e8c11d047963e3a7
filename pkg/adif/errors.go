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

package adif

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	ErrNoInput          = errors.Base("no input specified")
	ErrNoOperation      = errors.Base("no operation specified")
	ErrInvalidFieldName = errors.Base("invalid field name")
	ErrInvalidPattern   = errors.Base("invalid delete pattern")
	ErrUnknownMode      = errors.Base("unknown mode")
)

// ⚠️ ConflictError reports an add target that already holds another value
// while override is off.
type ConflictError struct {
	Record int    // 1-based record number
	Field  string // field name as requested
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("record %d already has field <%s> with a different value", e.Record, e.Field)
}
