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
	"io"
	"strconv"

	"github.com/db47h/bflamina/internal/bfi"
	"github.com/pkg/errors"
)

// Default configuration values.
const (
	DefaultTapeLength = 30000
	DefaultStepBudget = 100000000
)

// Instance represents a Brainfuck tape machine.
type Instance struct {
	Tape       []byte // Memory tape
	Ptr        int    // Tape pointer
	tapeLen    int
	budget     int64
	steps      int64
	loopChecks int64
	loopIters  int64
	inBytes    []byte
	inputs     []io.Reader
	in         io.ByteReader
	output     []byte
}

// Option configures an Instance.
type Option func(*Instance) error

// TapeLength sets the number of cells on the tape. The default is
// DefaultTapeLength. The new length takes effect on the next call to Run.
func TapeLength(n int) Option {
	return func(i *Instance) error {
		if n <= 0 {
			return errors.Errorf("invalid tape length %d", n)
		}
		i.tapeLen = n
		return nil
	}
}

// StepBudget sets the maximum number of steps a single Run may execute. The
// default is DefaultStepBudget.
func StepBudget(n int64) Option {
	return func(i *Instance) error {
		if n <= 0 {
			return errors.Errorf("invalid step budget %d", n)
		}
		i.budget = n
		return nil
	}
}

// InputBytes sets the bytes consumed by Input instructions. Each call to Run
// starts reading from the beginning of b, before any reader set with Input.
func InputBytes(b []byte) Option {
	return func(i *Instance) error {
		i.inBytes = b
		return nil
	}
}

// Input appends r to the list of input readers. Readers are consumed in order
// of appearance and closed once exhausted if they implement io.Closer. Unlike
// InputBytes, data read from r is not available to subsequent runs.
func Input(r io.Reader) Option {
	return func(i *Instance) error {
		i.inputs = append(i.inputs, r)
		return nil
	}
}

// Small configures a short tape of 1000 cells, enough for most small
// programs.
func Small() Option { return TapeLength(1000) }

// Large configures a tape of 100000 cells.
func Large() Option { return TapeLength(100000) }

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new tape machine instance.
//
// Options will be set by calling SetOptions.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{
		tapeLen: DefaultTapeLength,
		budget:  DefaultStepBudget,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.Tape = make([]byte, i.tapeLen)
	return i, nil
}

// Budget returns the configured step budget.
func (i *Instance) Budget() int64 {
	return i.budget
}

// Stats holds execution counters for the last run.
type Stats struct {
	Steps          int64 // commands executed plus loop condition checks
	LoopChecks     int64 // loop condition checks
	LoopIterations int64 // loop body executions
	OutputBytes    int
}

// Stats returns execution counters for the last run.
func (i *Instance) Stats() Stats {
	return Stats{
		Steps:          i.steps,
		LoopChecks:     i.loopChecks,
		LoopIterations: i.loopIters,
		OutputBytes:    len(i.output),
	}
}

// Dump writes the tape pointer and the tape contents up to the last non-zero
// cell or the pointer, whichever is further, to w.
func (i *Instance) Dump(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	end := i.Ptr + 1
	for k := len(i.Tape) - 1; k >= end; k-- {
		if i.Tape[k] != 0 {
			end = k + 1
			break
		}
	}
	if end > len(i.Tape) {
		end = len(i.Tape)
	}
	ew.WriteString("ptr: ")
	ew.WriteString(strconv.Itoa(i.Ptr))
	ew.WriteString("\ntape:")
	for _, c := range i.Tape[:end] {
		ew.Write([]byte{' '})
		ew.WriteString(strconv.Itoa(int(c)))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
