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

package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

// Runtime errors. They are returned as the cause of a *RuntimeError.
var (
	ErrPointerOutOfBounds = errors.New("pointer out of bounds")
	ErrStepBudgetExceeded = errors.New("step budget exceeded")
)

// RuntimeError records an error that occurred while running a program.
type RuntimeError struct {
	Err    error
	Offset int   // source offset of the failing instruction
	Step   int64 // step count when the error occurred
	Ptr    int   // tape pointer when the error occurred
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("offset %d, step %d, pointer %d: %v", e.Offset, e.Step, e.Ptr, e.Err)
}

// Cause returns the underlying error, for use with errors.Cause.
func (e *RuntimeError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *RuntimeError) Unwrap() error { return e.Err }

// IsRetryable reports whether running the same program again with a different
// configuration may succeed. This is only the case when the step budget was
// exhausted.
func IsRetryable(err error) bool {
	return errors.Cause(err) == ErrStepBudgetExceeded
}
