// This file is part of bflamina - https://github.com/db47h/bflamina
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
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

package bf

import (
	"fmt"
	"text/scanner"

	"github.com/pkg/errors"
)

// Structural errors reported by Build and Parse. They are never returned
// as-is, but as the cause of a *SyntaxError.
var (
	ErrUnmatchedLoopEnd   = errors.New("unmatched ']'")
	ErrUnmatchedLoopStart = errors.New("unmatched '['")
)

// SyntaxError records a structural error and where it occurred in the source
// text. Pos.Offset is always set; Filename, Line and Column are only set by
// Parse, which has access to the source text.
type SyntaxError struct {
	Err error
	Pos scanner.Position
}

func (e *SyntaxError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("offset %d: %v", e.Pos.Offset, e.Err)
}

// Cause returns the underlying error, for use with errors.Cause.
func (e *SyntaxError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *SyntaxError) Unwrap() error { return e.Err }
